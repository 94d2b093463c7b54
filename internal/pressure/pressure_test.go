package pressure

import (
	"math"
	"testing"

	"github.com/san-kum/rotorwake/internal/wake"
)

func TestZeroModel(t *testing.T) {
	p := NewZero()
	got := p.Pressure(wake.Field{0.2, 0.4, 0.6}, wake.Scalar(1))

	if len(got) != 3 {
		t.Fatalf("expected length 3, got %d", len(got))
	}
	for i, v := range got {
		if v != 0 {
			t.Errorf("element %d: expected 0, got %f", i, v)
		}
	}
}

func TestNonlinearZeroLoading(t *testing.T) {
	p := NewNonlinear(DefaultConfig())

	if got := p.Pressure(wake.Scalar(0), wake.Scalar(1))[0]; got != 0 {
		t.Errorf("zero loading should give zero correction, got %f", got)
	}
}

func TestNonlinearFarWakeRecovers(t *testing.T) {
	p := NewNonlinear(DefaultConfig())

	if got := p.Pressure(wake.Scalar(0.4), wake.Scalar(20))[0]; got != 0 {
		t.Errorf("correction should vanish past the last breakpoint, got %f", got)
	}
	if got := p.Pressure(wake.Scalar(0.4), wake.Scalar(math.Inf(1)))[0]; got != 0 {
		t.Errorf("correction should vanish at infinite wake length, got %f", got)
	}
}

func TestNonlinearNearWakeNegative(t *testing.T) {
	p := NewNonlinear(DefaultConfig())

	got := p.Pressure(wake.Scalar(0.4), wake.Scalar(1))[0]
	if got >= 0 {
		t.Errorf("near-wake correction should be negative, got %f", got)
	}
}

func TestNonlinearInterpolation(t *testing.T) {
	p := NewNonlinear(DefaultConfig())

	// Midway between the 0.25 and 0.5 breakpoints.
	got := p.Pressure(wake.Scalar(1), wake.Scalar(0.375))[0]
	want := (nlCoeffs[0] + nlCoeffs[1]) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestNonlinearQuadraticInLoading(t *testing.T) {
	p := NewNonlinear(DefaultConfig())

	a := p.Pressure(wake.Scalar(0.2), wake.Scalar(1))[0]
	b := p.Pressure(wake.Scalar(0.4), wake.Scalar(1))[0]
	if math.Abs(b-4*a) > 1e-12 {
		t.Errorf("doubling loading should quadruple the correction: %f vs %f", a, b)
	}
}

func TestNonlinearNaNPropagates(t *testing.T) {
	p := NewNonlinear(DefaultConfig())

	if got := p.Pressure(wake.Scalar(math.NaN()), wake.Scalar(1))[0]; !math.IsNaN(got) {
		t.Errorf("expected NaN, got %f", got)
	}
	if got := p.Pressure(wake.Scalar(0.4), wake.Scalar(math.NaN()))[0]; !math.IsNaN(got) {
		t.Errorf("expected NaN, got %f", got)
	}
}

func TestNonlinearGain(t *testing.T) {
	base := NewNonlinear(DefaultConfig())
	double := NewNonlinear(Config{Gain: 2})

	a := base.Pressure(wake.Scalar(0.4), wake.Scalar(1))[0]
	b := double.Pressure(wake.Scalar(0.4), wake.Scalar(1))[0]
	if math.Abs(b-2*a) > 1e-12 {
		t.Errorf("gain 2 should double the correction: %f vs %f", a, b)
	}
}
