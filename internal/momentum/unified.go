package momentum

import (
	"math"

	"github.com/san-kum/rotorwake/internal/pressure"
	"github.com/san-kum/rotorwake/internal/solver"
	"github.com/san-kum/rotorwake/internal/wake"
)

// DefaultBeta is the calibrated near-wake length parameter.
const DefaultBeta = 0.1403

// UnifiedMomentum extends the coupled-velocity model with the near-wake
// pressure drop dp as a fourth unknown, closing the system with a nonlinear
// pressure correction supplied by a [pressure.Model].
type UnifiedMomentum struct {
	Beta     float64
	Eps      float64
	MaxIter  int
	Relax    float64
	Pressure pressure.Model
}

func NewUnifiedMomentum() *UnifiedMomentum {
	return &UnifiedMomentum{
		Beta:     DefaultBeta,
		Eps:      solver.DefaultEps,
		MaxIter:  400,
		Relax:    0.25,
		Pressure: pressure.NewNonlinear(pressure.DefaultConfig()),
	}
}

// initialGuess seeds (an, u4, v4, dp) from the closed-form limit. The v4
// coefficient is positive here, opposite to [LimitedHeck]; both conventions
// trace back to the governing equations and are kept as published.
func (m *UnifiedMomentum) initialGuess(ctprime wake.Field, yaw float64) wake.State {
	n := len(ctprime)
	an := make(wake.Field, n)
	u4 := make(wake.Field, n)
	v4 := make(wake.Field, n)

	cosy := math.Cos(yaw)
	siny := math.Sin(yaw)
	cos2 := cosy * cosy
	for i := 0; i < n; i++ {
		c := ctprime[i] * cos2
		an[i] = c / (4 + c)
		u4[i] = (4 - c) / (4 + c)
		v4[i] = 4 * ctprime[i] * siny * cos2 / ((4 + c) * (4 + c))
	}
	return wake.State{an, u4, v4, wake.Zeros(n)}
}

func (m *UnifiedMomentum) Solve(ctprime wake.Field, yaw float64) Solution {
	return m.SolveFrom(nil, ctprime, yaw)
}

// SolveFrom runs the iteration from an explicit initial guess
// (an, u4, v4, dp). A nil guess uses the closed-form limit.
func (m *UnifiedMomentum) SolveFrom(x0 wake.State, ctprime wake.Field, yaw float64) Solution {
	if x0 == nil {
		x0 = m.initialGuess(ctprime, yaw)
	}

	opts := solver.Options{Relax: m.Relax, Eps: m.Eps}.WithMaxIter(m.MaxIter)
	res := solver.FixedPoint(func(x wake.State) wake.State {
		return m.residual(x, ctprime, yaw)
	}, x0, opts)

	n := wake.BroadcastLen(ctprime, x0[0])
	var an, u4, v4, dp wake.Field
	if res.Converged {
		an, u4, v4, dp = res.X[0], res.X[1], res.X[2], res.X[3]
	} else {
		an, u4, v4, dp = wake.NaNs(n), wake.NaNs(n), wake.NaNs(n), wake.NaNs(n)
	}

	// Diagnostic only: the converged residual already contains this term,
	// re-evaluating it at the final state exposes the correction magnitude.
	dpNL := m.pressureTerm(ctprime, yaw, an, u4)

	return Solution{
		Ctprime:   ctprime.Clone(),
		Yaw:       yaw,
		An:        an,
		U4:        u4,
		V4:        v4,
		Dp:        dp,
		DpNL:      dpNL,
		Niter:     res.Niter,
		Converged: res.Converged,
		Beta:      m.Beta,
	}
}

// residual of the unified system. One pressure-model query per evaluation.
func (m *UnifiedMomentum) residual(x wake.State, ctprime wake.Field, yaw float64) wake.State {
	an, u4, v4, dp := x[0], x[1], x[2], x[3]
	n := wake.BroadcastLen(ctprime, an)

	pg := m.pressureTerm(ctprime, yaw, an, u4)

	eAn := make(wake.Field, n)
	eU4 := make(wake.Field, n)
	eV4 := make(wake.Field, n)
	eDp := make(wake.Field, n)

	cosy := math.Cos(yaw)
	siny := math.Sin(yaw)
	cos2 := cosy * cosy
	for i := 0; i < n; i++ {
		c := ctprime.At(i)
		a, u, v, p := an.At(i), u4.At(i), v4.At(i), dp.At(i)

		x0 := nearWakeLength(a, u, yaw, m.Beta)

		if c == 0 {
			eAn[i] = -a
		} else {
			eAn[i] = 1 - math.Sqrt(-p/(0.5*c*cos2)+(1-u*u-v*v)/(c*cos2)) - a
		}

		half := 0.5*c*(1-a)*cos2 - 1
		eU4[i] = -0.25*c*(1-a)*cos2 + 0.5 + 0.5*math.Sqrt(half*half-4*p) - u

		eV4[i] = -0.25*c*(1-a)*(1-a)*siny*cos2 - v

		eDp[i] = -1/(2*math.Pi)*c*(1-a)*(1-a)*cos2*math.Atan(1/x0) + pg.At(i) - p
	}
	return wake.State{eAn, eU4, eV4, eDp}
}

// pressureTerm queries the pressure model with the half-disk thrust
// coefficient and the current near-wake length.
func (m *UnifiedMomentum) pressureTerm(ctprime wake.Field, yaw float64, an, u4 wake.Field) wake.Field {
	n := wake.BroadcastLen(ctprime, an, u4)
	ct2 := make(wake.Field, n)
	x0 := make(wake.Field, n)

	cos2 := math.Cos(yaw) * math.Cos(yaw)
	for i := 0; i < n; i++ {
		a := an.At(i)
		ct2[i] = ctprime.At(i) * (1 - a) * (1 - a) * cos2 / 2
		x0[i] = nearWakeLength(a, u4.At(i), yaw, m.Beta)
	}
	return m.Pressure.Pressure(ct2, x0)
}
