package bem

import (
	"math"
	"testing"

	"github.com/san-kum/rotorwake/internal/wake"
)

func uniformProps(n int, an, w, ctan, solidity float64) AeroProperties {
	fill := func(v float64) wake.Field {
		f := make(wake.Field, n)
		for i := range f {
			f[i] = v
		}
		return f
	}
	return AeroProperties{An: fill(an), W: fill(w), Ctan: fill(ctan), Solidity: fill(solidity)}
}

func TestNoTangentialInduction(t *testing.T) {
	g := NewGeometry(8)
	got := NewNoTangentialInduction().Aprime(uniformProps(8, 0.3, 1, 0.1, 0.05), 9, 0, g)

	if len(got) != 8 {
		t.Fatalf("expected 8 annuli, got %d", len(got))
	}
	for i, v := range got {
		if v != 0 {
			t.Errorf("annulus %d: expected 0, got %f", i, v)
		}
	}
}

func TestDefaultTangentialInduction(t *testing.T) {
	g := NewGeometry(1) // single annulus centered at mu=0.5
	props := uniformProps(1, 0.25, 1.2, 0.08, 0.04)
	tsr := 9.0

	got := NewDefaultTangentialInduction().Aprime(props, tsr, 0, g)[0]

	want := 0.04 / (4 * 0.25 * tsr * 0.75) * (1.2 * 1.2 * 0.08)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestDefaultTangentialHubClamp(t *testing.T) {
	g := NewGeometry(20) // first annulus center 0.025, clamped to 0.1
	props := uniformProps(20, 0.25, 1.2, 0.08, 0.04)

	got := NewDefaultTangentialInduction().Aprime(props, 9, 0, g)

	clamped := 0.04 / (4 * 0.01 * 9 * 0.75) * (1.2 * 1.2 * 0.08)
	if math.Abs(got[0]-clamped) > 1e-12 {
		t.Errorf("hub annulus should use mu=0.1, expected %g, got %g", clamped, got[0])
	}
	if got[0] <= got[19] {
		t.Error("tangential induction should decay toward the tip")
	}
}

func TestDefaultTangentialYawScaling(t *testing.T) {
	g := NewGeometry(4)
	props := uniformProps(4, 0.25, 1.2, 0.08, 0.04)

	straight := NewDefaultTangentialInduction().Aprime(props, 9, 0, g)
	yawed := NewDefaultTangentialInduction().Aprime(props, 9, 0.4, g)

	ratio := yawed[0] / straight[0]
	if math.Abs(ratio-1/math.Cos(0.4)) > 1e-12 {
		t.Errorf("a' should scale with 1/cos(yaw), got ratio %f", ratio)
	}
}
