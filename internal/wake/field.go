package wake

import "math"

// Field holds a scalar (length 1) or per-annulus array of values. Binary
// operations broadcast a length-1 Field against any other length.
type Field []float64

// Scalar wraps a single value as a Field.
func Scalar(v float64) Field {
	return Field{v}
}

// Zeros returns a Field of n zeros.
func Zeros(n int) Field {
	return make(Field, n)
}

// NaNs returns a Field of n NaN values.
func NaNs(n int) Field {
	f := make(Field, n)
	for i := range f {
		f[i] = math.NaN()
	}
	return f
}

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

// At returns element i, broadcasting a length-1 Field to any index.
func (f Field) At(i int) float64 {
	if len(f) == 1 {
		return f[0]
	}
	return f[i]
}

// BroadcastLen returns the common length of the given fields, treating
// length-1 fields as broadcastable. Mismatched lengths beyond that are the
// caller's bug; the longest length wins and At panics on out-of-range access.
func BroadcastLen(fields ...Field) int {
	n := 1
	for _, f := range fields {
		if len(f) > n {
			n = len(f)
		}
	}
	return n
}

// IsValid reports whether the field contains no NaN or Inf values.
func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Max returns the largest element. NaN elements are ignored unless the field
// is all-NaN, in which case NaN is returned.
func (f Field) Max() float64 {
	best := math.NaN()
	for _, v := range f {
		if math.IsNaN(best) || v > best {
			best = v
		}
	}
	return best
}

// MaxAbs returns the largest elementwise magnitude. A NaN element makes the
// result NaN so that divergence is visible to convergence checks.
func (f Field) MaxAbs() float64 {
	best := 0.0
	for _, v := range f {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if a := math.Abs(v); a > best {
			best = a
		}
	}
	return best
}

func (f Field) binary(o Field, op func(a, b float64) float64) Field {
	n := BroadcastLen(f, o)
	out := make(Field, n)
	for i := range out {
		out[i] = op(f.At(i), o.At(i))
	}
	return out
}

func (f Field) Add(o Field) Field { return f.binary(o, func(a, b float64) float64 { return a + b }) }
func (f Field) Sub(o Field) Field { return f.binary(o, func(a, b float64) float64 { return a - b }) }
func (f Field) Mul(o Field) Field { return f.binary(o, func(a, b float64) float64 { return a * b }) }
func (f Field) Div(o Field) Field { return f.binary(o, func(a, b float64) float64 { return a / b }) }

// Scale returns the field multiplied by a scalar factor.
func (f Field) Scale(k float64) Field {
	out := make(Field, len(f))
	for i, v := range f {
		out[i] = k * v
	}
	return out
}

// State is the stacked iteration vector of a momentum model: one Field per
// solved variable, each scalar or per-annulus shaped.
type State []Field

func (s State) Clone() State {
	c := make(State, len(s))
	for i, f := range s {
		c[i] = f.Clone()
	}
	return c
}

// MaxAbs returns the largest magnitude across all variables, NaN if any
// element is NaN.
func (s State) MaxAbs() float64 {
	best := 0.0
	for _, f := range s {
		m := f.MaxAbs()
		if math.IsNaN(m) {
			return math.NaN()
		}
		if m > best {
			best = m
		}
	}
	return best
}

func (s State) IsValid() bool {
	for _, f := range s {
		if !f.IsValid() {
			return false
		}
	}
	return true
}
