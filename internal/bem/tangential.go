package bem

import (
	"math"

	"github.com/san-kum/rotorwake/internal/wake"
)

// AeroProperties bundles the per-annulus aerodynamic state consumed by
// tangential induction: axial induction an, relative velocity W (normalized
// by freestream), tangential force coefficient Ctan, and local solidity.
type AeroProperties struct {
	An       wake.Field
	W        wake.Field
	Ctan     wake.Field
	Solidity wake.Field
}

// TangentialInduction computes the tangential induction factor a' for a
// solved radial distribution.
type TangentialInduction interface {
	Aprime(props AeroProperties, tsr, yaw float64, geom *Geometry) wake.Field
}

// NoTangentialInduction ignores wake rotation entirely.
type NoTangentialInduction struct{}

func NewNoTangentialInduction() *NoTangentialInduction { return &NoTangentialInduction{} }

func (*NoTangentialInduction) Aprime(props AeroProperties, tsr, yaw float64, geom *Geometry) wake.Field {
	return wake.Zeros(geom.Nr())
}

// DefaultTangentialInduction balances the tangential momentum integral
// against the blade torque loading. The radial position is clamped at
// mu = 0.1 to keep the hub annuli finite.
type DefaultTangentialInduction struct{}

func NewDefaultTangentialInduction() *DefaultTangentialInduction {
	return &DefaultTangentialInduction{}
}

func (*DefaultTangentialInduction) Aprime(props AeroProperties, tsr, yaw float64, geom *Geometry) wake.Field {
	n := geom.Nr()
	out := make(wake.Field, n)
	cosy := math.Cos(yaw)
	for i := 0; i < n; i++ {
		mu := math.Max(geom.Mu[i], 0.1)
		w := props.W.At(i)
		integral := w * w * props.Ctan.At(i)
		out[i] = props.Solidity.At(i) / (4 * mu * mu * tsr * (1 - props.An.At(i)) * cosy) * integral
	}
	return out
}
