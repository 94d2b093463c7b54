package momentum

import (
	"math"

	"github.com/san-kum/rotorwake/internal/wake"
)

// Model is the capability shared by every momentum variant. The first
// argument is the local thrust loading Ctprime for all models except
// [ThrustBasedUnified], which takes the disk-averaged Ct instead.
type Model interface {
	Solve(loading wake.Field, yaw float64) Solution
}

// LimitedHeck solves the limiting case v4 << u4 in closed form. It is exact
// in that limit and doubles as the initial-guess generator for [Heck].
type LimitedHeck struct{}

func NewLimitedHeck() *LimitedHeck { return &LimitedHeck{} }

func (m *LimitedHeck) Solve(ctprime wake.Field, yaw float64) Solution {
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
		v4[i] = -4 * ctprime[i] * siny * cos2 / ((4 + c) * (4 + c))
	}

	return Solution{
		Ctprime:   ctprime.Clone(),
		Yaw:       yaw,
		An:        an,
		U4:        u4,
		V4:        v4,
		Dp:        wake.Zeros(n),
		DpNL:      wake.Zeros(n),
		Niter:     1,
		Converged: true,
	}
}
