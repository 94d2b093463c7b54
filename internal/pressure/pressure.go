// Package pressure models the near-wake pressure correction behind a yawed
// actuator disk. The unified momentum model queries it once per residual
// evaluation, so implementations must be cheap and safe for concurrent reads.
package pressure

import "github.com/san-kum/rotorwake/internal/wake"

// Model supplies the nonlinear pressure correction p_g for a given half-disk
// thrust coefficient ct2 = CT/2 and near-wake length x0. Fields broadcast
// elementwise per annulus.
type Model interface {
	Pressure(ct2, x0 wake.Field) wake.Field
}

// Zero is the null pressure model: no near-wake correction. Useful for
// decoupling tests and for recovering the uncorrected momentum solution.
type Zero struct{}

func NewZero() *Zero { return &Zero{} }

func (*Zero) Pressure(ct2, x0 wake.Field) wake.Field {
	return wake.Zeros(wake.BroadcastLen(ct2, x0))
}
