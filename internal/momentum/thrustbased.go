package momentum

import (
	"math"

	"github.com/san-kum/rotorwake/internal/solver"
	"github.com/san-kum/rotorwake/internal/wake"
)

// ThrustBasedUnified solves the unified model for callers that know the
// disk-averaged thrust coefficient Ct instead of the local loading Ctprime.
// Ctprime becomes a fifth unknown coupled to an, which converges slowly;
// hence the much larger default iteration budget.
//
// Unlike the other iterative models, a non-converged solve returns the raw
// final iterate without NaN substitution. The divergent iterate is often
// still informative for this parameterization and callers are expected to
// check Converged.
type ThrustBasedUnified struct {
	Eps     float64
	MaxIter int
	Relax   float64
	Unified *UnifiedMomentum
}

func NewThrustBasedUnified() *ThrustBasedUnified {
	return &ThrustBasedUnified{
		Eps:     solver.DefaultEps,
		MaxIter: 5000,
		Relax:   0.25,
		Unified: NewUnifiedMomentum(),
	}
}

func (m *ThrustBasedUnified) initialGuess(ct wake.Field) wake.State {
	n := len(ct)
	an := make(wake.Field, n)
	u4 := make(wake.Field, n)
	ctprime := make(wake.Field, n)
	for i := 0; i < n; i++ {
		an[i] = 0.5 * ct[i]
		u4[i] = 1 - ct[i]
		// sign(ct): math.Copysign(1, 0) is 1, but zero loading must seed
		// zero Ctprime or the fifth equation starts off-equilibrium.
		switch {
		case ct[i] > 0:
			ctprime[i] = 1
		case ct[i] < 0:
			ctprime[i] = -1
		}
	}
	return wake.State{an, u4, wake.Zeros(n), wake.Zeros(n), ctprime}
}

// Solve finds the equilibrium for a disk-averaged thrust coefficient ct.
func (m *ThrustBasedUnified) Solve(ct wake.Field, yaw float64) Solution {
	return m.SolveFrom(nil, ct, yaw)
}

// SolveFrom runs the iteration from an explicit initial guess
// (an, u4, v4, dp, Ctprime). A nil guess uses the thrust-based seed.
func (m *ThrustBasedUnified) SolveFrom(x0 wake.State, ct wake.Field, yaw float64) Solution {
	if x0 == nil {
		x0 = m.initialGuess(ct)
	}

	opts := solver.Options{Relax: m.Relax, Eps: m.Eps}.WithMaxIter(m.MaxIter)
	res := solver.FixedPoint(func(x wake.State) wake.State {
		return m.residual(x, ct, yaw)
	}, x0, opts)

	n := wake.BroadcastLen(ct, x0[0])
	return Solution{
		Ctprime:   res.X[4],
		Yaw:       yaw,
		An:        res.X[0],
		U4:        res.X[1],
		V4:        res.X[2],
		Dp:        res.X[3],
		DpNL:      wake.Zeros(n),
		Niter:     res.Niter,
		Converged: res.Converged,
		Beta:      m.Unified.Beta,
	}
}

// residual reuses the unified residual on the current Ctprime iterate and
// appends the loading/thrust consistency equation.
func (m *ThrustBasedUnified) residual(x wake.State, ct wake.Field, yaw float64) wake.State {
	an, ctprime := x[0], x[4]
	base := m.Unified.residual(wake.State{x[0], x[1], x[2], x[3]}, ctprime, yaw)

	n := wake.BroadcastLen(ct, an)
	eCtprime := make(wake.Field, n)
	cos2 := math.Cos(yaw) * math.Cos(yaw)
	for i := 0; i < n; i++ {
		oneMinusA := 1 - an.At(i)
		eCtprime[i] = ct.At(i)/(oneMinusA*oneMinusA*cos2) - ctprime.At(i)
	}
	return append(base, eCtprime)
}
