// Package bem carries the blade-element bookkeeping around the momentum
// solver: the radial annulus grid and the tangential induction models applied
// to a solved distribution.
package bem

import "github.com/san-kum/rotorwake/internal/wake"

// Geometry is the radial discretization of the rotor disk into annuli.
type Geometry struct {
	Mu  []float64 // annulus centers, r/R
	DMu []float64 // annulus widths
}

// NewGeometry builds a uniform grid of nr annuli spanning (0, 1).
func NewGeometry(nr int) *Geometry {
	if nr < 1 {
		nr = 1
	}
	mu := make([]float64, nr)
	dmu := make([]float64, nr)
	w := 1.0 / float64(nr)
	for i := 0; i < nr; i++ {
		mu[i] = (float64(i) + 0.5) * w
		dmu[i] = w
	}
	return &Geometry{Mu: mu, DMu: dmu}
}

func (g *Geometry) Nr() int { return len(g.Mu) }

// MuField returns the annulus centers as a Field.
func (g *Geometry) MuField() wake.Field {
	return wake.Field(g.Mu).Clone()
}

// Average returns the area-weighted disk average of a per-annulus field,
// weights proportional to 2 mu dmu.
func (g *Geometry) Average(f wake.Field) float64 {
	var sum, wsum float64
	for i := range g.Mu {
		w := 2 * g.Mu[i] * g.DMu[i]
		sum += w * f.At(i)
		wsum += w
	}
	if wsum == 0 {
		return 0
	}
	return sum / wsum
}
