package momentum

import (
	"math"
	"testing"

	"github.com/san-kum/rotorwake/internal/wake"
)

func TestLimitedHeckZeroLoading(t *testing.T) {
	sol := NewLimitedHeck().Solve(wake.Scalar(0), 0)

	if !sol.Converged {
		t.Fatal("closed form should always report converged")
	}
	if sol.Niter != 1 {
		t.Errorf("expected niter 1, got %d", sol.Niter)
	}
	if sol.An.At(0) != 0 || sol.U4.At(0) != 1 || sol.V4.At(0) != 0 || sol.Dp.At(0) != 0 {
		t.Errorf("expected freestream solution, got an=%f u4=%f v4=%f dp=%f",
			sol.An.At(0), sol.U4.At(0), sol.V4.At(0), sol.Dp.At(0))
	}
}

func TestLimitedHeckBetzPoint(t *testing.T) {
	// Ctprime=2, yaw=0 is the Betz optimum: an=1/3, Cp=16/27.
	sol := NewLimitedHeck().Solve(wake.Scalar(2), 0)

	if math.Abs(sol.An.At(0)-1.0/3.0) > 1e-12 {
		t.Errorf("expected an=1/3, got %f", sol.An.At(0))
	}
	if math.Abs(sol.Cp().At(0)-16.0/27.0) > 1e-12 {
		t.Errorf("expected Cp=16/27, got %f", sol.Cp().At(0))
	}
}

func TestLimitedHeckZeroYawSymmetry(t *testing.T) {
	sol := NewLimitedHeck().Solve(wake.Scalar(2), 0)

	if sol.V4.At(0) != 0 {
		t.Errorf("expected exactly zero lateral velocity, got %g", sol.V4.At(0))
	}
}

func TestLimitedHeckNegativeV4UnderYaw(t *testing.T) {
	sol := NewLimitedHeck().Solve(wake.Scalar(2), 0.3)

	if sol.V4.At(0) >= 0 {
		t.Errorf("closed form uses the negative v4 convention, got %f", sol.V4.At(0))
	}
}

// The closed form is the iterative model's initial guess and must satisfy its
// residual equations in the v4 << u4 limit.
func TestLimitedHeckSatisfiesHeckResidual(t *testing.T) {
	ctprime := wake.Scalar(0.1)
	yaw := 0.05

	sol := NewLimitedHeck().Solve(ctprime, yaw)
	res := NewHeck().residual(wake.State{sol.An, sol.U4, sol.V4}, ctprime, yaw)

	if m := res.MaxAbs(); m > 1e-5 {
		t.Errorf("closed form should satisfy the residual to within eps, max |r| = %g", m)
	}
}

// At zero yaw the limiting assumption is exact for any loading.
func TestLimitedHeckExactAtZeroYaw(t *testing.T) {
	for _, ct := range []float64{0.5, 2, 8} {
		ctprime := wake.Scalar(ct)
		sol := NewLimitedHeck().Solve(ctprime, 0)
		res := NewHeck().residual(wake.State{sol.An, sol.U4, sol.V4}, ctprime, 0)

		if m := res.MaxAbs(); m > 1e-12 {
			t.Errorf("Ctprime=%g: expected exact residual at zero yaw, max |r| = %g", ct, m)
		}
	}
}

func TestLimitedHeckArrayInput(t *testing.T) {
	sol := NewLimitedHeck().Solve(wake.Field{0, 1, 2, 4}, 0.1)

	if len(sol.An) != 4 {
		t.Fatalf("expected 4 annuli, got %d", len(sol.An))
	}
	scalar := NewLimitedHeck().Solve(wake.Scalar(2), 0.1)
	if math.Abs(sol.An.At(2)-scalar.An.At(0)) > 1e-15 {
		t.Errorf("array element should match scalar solve: %f vs %f", sol.An.At(2), scalar.An.At(0))
	}
}
