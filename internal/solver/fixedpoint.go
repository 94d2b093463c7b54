// Package solver implements the relaxed fixed-point iteration engine that
// drives every momentum model to its equilibrium state.
package solver

import (
	"math"

	"github.com/san-kum/rotorwake/internal/wake"
)

const (
	DefaultEps     = 1e-5
	DefaultMaxIter = 100
	DefaultRelax   = 1.0
)

// Residual evaluates the residual of the governing equations at x. A zero
// residual means x is the sought equilibrium. The returned state must have
// the same layout as x. Residuals are free to return NaN for iterates outside
// the physical domain; the engine propagates NaN and reports non-convergence
// rather than panicking.
type Residual func(x wake.State) wake.State

// Options tunes a fixed-point run. Zero values select the engine defaults,
// except MaxIter: a caller that explicitly sets MaxIter <= 0 gets no
// iterations and a non-converged result.
type Options struct {
	Relax   float64
	Eps     float64
	MaxIter int

	maxIterSet bool
}

// WithMaxIter marks MaxIter as explicitly chosen so that zero and negative
// values mean "do not iterate" instead of "use the default".
func (o Options) WithMaxIter(n int) Options {
	o.MaxIter = n
	o.maxIterSet = true
	return o
}

func (o Options) normalize() Options {
	if o.Relax == 0 {
		o.Relax = DefaultRelax
	}
	if o.Eps == 0 {
		o.Eps = DefaultEps
	}
	if o.MaxIter == 0 && !o.maxIterSet {
		o.MaxIter = DefaultMaxIter
	}
	return o
}

// Result holds the final iterate of a fixed-point run. On non-convergence X
// is the last iterate as-is; substituting NaN (or not) is the caller's policy.
type Result struct {
	X         wake.State
	Niter     int
	Converged bool
}

// FixedPoint iterates x <- x + relax*R(x) until the largest elementwise
// residual magnitude drops below eps, the iteration ceiling is hit, or NaN
// appears in the residual. NaN terminates the run immediately with
// Converged=false: once an iterate is NaN every subsequent one is too, so
// running on would only burn iterations.
func FixedPoint(r Residual, x0 wake.State, opts Options) Result {
	opts = opts.normalize()

	x := x0.Clone()
	for k := 1; k <= opts.MaxIter; k++ {
		res := r(x)

		m := res.MaxAbs()
		if math.IsNaN(m) {
			return Result{X: x, Niter: k, Converged: false}
		}
		if m < opts.Eps {
			return Result{X: x, Niter: k, Converged: true}
		}

		for i := range x {
			x[i] = x[i].Add(res[i].Scale(opts.Relax))
		}
	}
	return Result{X: x, Niter: opts.MaxIter, Converged: false}
}

// RelaxPolicy selects the relaxation factor from the loading magnitude. The
// equation system stiffens above the supercritical threshold and tolerates a
// much heavier update there; the split values are tuned empirically, not
// derived.
type RelaxPolicy struct {
	Threshold float64
	Low       float64
	High      float64
}

// DefaultRelaxPolicy is the tuning used by the coupled-velocity model.
func DefaultRelaxPolicy() RelaxPolicy {
	return RelaxPolicy{Threshold: 15, Low: 0.1, High: 0.9}
}

// Pick returns the relaxation factor for the given loading.
func (p RelaxPolicy) Pick(ctprime wake.Field) float64 {
	if p.Threshold != 0 && ctprime.Max() > p.Threshold {
		return p.High
	}
	return p.Low
}
