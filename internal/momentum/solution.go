package momentum

import (
	"math"

	"github.com/san-kum/rotorwake/internal/wake"
)

// Solution stores the equilibrium state of a momentum model solve. It is
// constructed once at the end of Solve and never mutated; the derived
// coefficients are computed on read from the stored fields.
//
// When Converged is false the state fields (An, U4, V4, Dp) hold NaN and the
// record is only useful for inspecting Ctprime, Yaw and Niter — except for
// [ThrustBasedUnified], which returns its raw final iterate (see that type's
// docs).
type Solution struct {
	Ctprime   wake.Field
	Yaw       float64
	An        wake.Field
	U4        wake.Field
	V4        wake.Field
	Dp        wake.Field
	DpNL      wake.Field
	Niter     int
	Converged bool
	Beta      float64
}

// Ct returns the thrust coefficient Ct' (1-an)^2 cos^2(yaw).
func (s Solution) Ct() wake.Field {
	n := wake.BroadcastLen(s.Ctprime, s.An)
	out := make(wake.Field, n)
	cos2 := math.Cos(s.Yaw) * math.Cos(s.Yaw)
	for i := 0; i < n; i++ {
		oneMinusA := 1 - s.An.At(i)
		out[i] = s.Ctprime.At(i) * oneMinusA * oneMinusA * cos2
	}
	return out
}

// Cp returns the power coefficient Ct' ((1-an) cos(yaw))^3.
func (s Solution) Cp() wake.Field {
	n := wake.BroadcastLen(s.Ctprime, s.An)
	out := make(wake.Field, n)
	cosy := math.Cos(s.Yaw)
	for i := 0; i < n; i++ {
		w := (1 - s.An.At(i)) * cosy
		out[i] = s.Ctprime.At(i) * w * w * w
	}
	return out
}

// X0 returns the near-wake length computed from the stored state and Beta.
func (s Solution) X0() wake.Field {
	n := wake.BroadcastLen(s.An, s.U4)
	out := make(wake.Field, n)
	for i := 0; i < n; i++ {
		out[i] = nearWakeLength(s.An.At(i), s.U4.At(i), s.Yaw, s.Beta)
	}
	return out
}

// nearWakeLength is the characteristic downstream recovery distance of the
// near wake. The denominator vanishes as u4 -> 1 (zero loading); the +Inf
// that falls out is intentional and collapses the pressure terms to zero.
func nearWakeLength(an, u4, yaw, beta float64) float64 {
	num := math.Cos(yaw) * math.Sqrt((1-an)*math.Cos(yaw)/(1+u4))
	den := 2 / (1 + u4) * (beta * (1 - u4) / 2)
	return num / den
}
