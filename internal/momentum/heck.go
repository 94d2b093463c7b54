package momentum

import (
	"math"

	"github.com/san-kum/rotorwake/internal/solver"
	"github.com/san-kum/rotorwake/internal/wake"
)

// Heck iterates the coupled-velocity momentum equations for a yawed actuator
// disk, solving (an, u4, v4) by relaxed fixed-point iteration seeded from the
// closed-form limit.
type Heck struct {
	Eps     float64
	MaxIter int
	Relax   solver.RelaxPolicy
}

func NewHeck() *Heck {
	return &Heck{
		Eps: solver.DefaultEps,
		// The damped nominal relaxation needs headroom at large yaw.
		MaxIter: 500,
		Relax:   solver.DefaultRelaxPolicy(),
	}
}

func (m *Heck) initialGuess(ctprime wake.Field, yaw float64) wake.State {
	sol := NewLimitedHeck().Solve(ctprime, yaw)
	return wake.State{sol.An, sol.U4, sol.V4}
}

func (m *Heck) Solve(ctprime wake.Field, yaw float64) Solution {
	return m.SolveFrom(nil, ctprime, yaw)
}

// SolveFrom runs the iteration from an explicit initial guess (an, u4, v4).
// A nil guess uses the closed-form limit.
func (m *Heck) SolveFrom(x0 wake.State, ctprime wake.Field, yaw float64) Solution {
	if x0 == nil {
		x0 = m.initialGuess(ctprime, yaw)
	}

	opts := solver.Options{
		Relax: m.Relax.Pick(ctprime),
		Eps:   m.Eps,
	}.WithMaxIter(m.MaxIter)

	res := solver.FixedPoint(func(x wake.State) wake.State {
		return m.residual(x, ctprime, yaw)
	}, x0, opts)

	n := wake.BroadcastLen(ctprime, x0[0])
	sol := Solution{
		Ctprime:   ctprime.Clone(),
		Yaw:       yaw,
		Niter:     res.Niter,
		Converged: res.Converged,
		DpNL:      wake.Zeros(n),
	}
	if res.Converged {
		sol.An, sol.U4, sol.V4 = res.X[0], res.X[1], res.X[2]
		sol.Dp = wake.Zeros(n)
	} else {
		// A divergent iterate is not a usable solution; callers check
		// Converged, the NaN fill makes accidental use loud.
		sol.An, sol.U4, sol.V4 = wake.NaNs(n), wake.NaNs(n), wake.NaNs(n)
		sol.Dp = wake.NaNs(n)
	}
	return sol
}

// residual of the coupled-velocity equations. Zero-loading annuli get a zero
// velocity-deficit term directly: the sqrt(Ctprime) denominator is singular
// there but the physical limit of the deficit ratio is one.
func (m *Heck) residual(x wake.State, ctprime wake.Field, yaw float64) wake.State {
	an, u4, v4 := x[0], x[1], x[2]
	n := wake.BroadcastLen(ctprime, an)

	eAn := make(wake.Field, n)
	eU4 := make(wake.Field, n)
	eV4 := make(wake.Field, n)

	cosy := math.Cos(yaw)
	siny := math.Sin(yaw)
	cos2 := cosy * cosy
	for i := 0; i < n; i++ {
		c := ctprime.At(i)
		a, u, v := an.At(i), u4.At(i), v4.At(i)

		if c == 0 {
			eAn[i] = -a
		} else {
			eAn[i] = 1 - math.Sqrt(1-u*u-v*v)/(math.Sqrt(c)*cosy) - a
		}
		eU4[i] = (1 - 0.5*c*(1-a)*cos2) - u
		eV4[i] = -0.25*c*(1-a)*(1-a)*siny*cos2 - v
	}
	return wake.State{eAn, eU4, eV4}
}
