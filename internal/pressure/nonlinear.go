package pressure

import (
	"math"

	"github.com/san-kum/rotorwake/internal/wake"
)

// Coefficient curve for the quadratic loading response of the actuator-disk
// pressure field, tabulated against near-wake length. Sampled from an offline
// axisymmetric pressure solve; intermediate lengths are linearly
// interpolated and the correction vanishes beyond the last breakpoint.
var (
	nlLengths = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 4.0, 6.0, 8.0, 12.0}
	nlCoeffs  = []float64{-0.620, -0.430, -0.318, -0.242, -0.146, -0.093, -0.044, -0.025, -0.011, -0.005, 0.0}
)

// Config tunes a Nonlinear pressure model. Each model instance owns its own
// copy; instances never share configuration.
type Config struct {
	// Gain scales the tabulated correction. 1 is the nominal calibration.
	Gain float64
}

func DefaultConfig() Config {
	return Config{Gain: 1.0}
}

// Nonlinear is the tabulated actuator-disk pressure field. The correction is
// quadratic in the half-disk thrust coefficient and decays with near-wake
// length. Read-only after construction, safe for concurrent solves.
type Nonlinear struct {
	cfg Config
}

func NewNonlinear(cfg Config) *Nonlinear {
	if cfg.Gain == 0 {
		cfg = DefaultConfig()
	}
	return &Nonlinear{cfg: cfg}
}

func (p *Nonlinear) Pressure(ct2, x0 wake.Field) wake.Field {
	n := wake.BroadcastLen(ct2, x0)
	out := make(wake.Field, n)
	for i := 0; i < n; i++ {
		out[i] = p.at(ct2.At(i), x0.At(i))
	}
	return out
}

func (p *Nonlinear) at(ct2, x0 float64) float64 {
	if math.IsNaN(ct2) || math.IsNaN(x0) {
		return math.NaN()
	}
	if ct2 == 0 {
		return 0
	}
	return p.cfg.Gain * coeffAt(x0) * ct2 * ct2
}

// coeffAt linearly interpolates the coefficient curve, clamping short wakes
// to the first breakpoint and treating everything past the last as fully
// recovered.
func coeffAt(x0 float64) float64 {
	if x0 <= nlLengths[0] {
		return nlCoeffs[0]
	}
	last := len(nlLengths) - 1
	if x0 >= nlLengths[last] {
		return 0
	}
	for i := 1; i <= last; i++ {
		if x0 <= nlLengths[i] {
			t := (x0 - nlLengths[i-1]) / (nlLengths[i] - nlLengths[i-1])
			return nlCoeffs[i-1] + t*(nlCoeffs[i]-nlCoeffs[i-1])
		}
	}
	return 0
}
