package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// Plot renders a single series with a caption. NaN entries (non-converged
// points) are dropped so asciigraph keeps its scale.
func Plot(series []float64, caption string) string {
	clean := make([]float64, 0, len(series))
	for _, v := range series {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return "(no converged points)"
	}
	return asciigraph.Plot(clean,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
