package section

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (tol %g)", name, got, want, tol)
	}
}

func TestRectangularProperties(t *testing.T) {
	p := NewRectangular(0.2, 0.5).Properties()
	approx(t, "I", p.MomentOfInertia, 0.2*0.125/12, 1e-12)
	approx(t, "area", p.Area, 0.1, 1e-12)
}

func TestCircularProperties(t *testing.T) {
	p := NewCircular(0.1).Properties()
	approx(t, "I", p.MomentOfInertia, math.Pi*1e-4/64, 1e-12)
	approx(t, "area", p.Area, math.Pi*0.0025, 1e-12)
}

func TestIBeamProperties(t *testing.T) {
	// B=0.2, H=0.4, tf=0.02, tw=0.01 → inner box 0.19 × 0.36
	p := NewIBeam(0.2, 0.4, 0.02, 0.01).Properties()
	wantI := (0.2*math.Pow(0.4, 3) - 0.19*math.Pow(0.36, 3)) / 12
	approx(t, "I", p.MomentOfInertia, wantI, 1e-12)
	approx(t, "area", p.Area, 0.2*0.4-0.19*0.36, 1e-12)
}

func TestIBeamDegenerateFallsBackToSolid(t *testing.T) {
	// Flanges thicker than half the depth: the hollow cutout vanishes
	// and the section must come back as the solid outer rectangle,
	// never NaN or negative.
	p := NewIBeam(0.2, 0.4, 0.25, 0.01).Properties()
	approx(t, "I", p.MomentOfInertia, 0.2*math.Pow(0.4, 3)/12, 1e-12)
	approx(t, "area", p.Area, 0.08, 1e-12)
	if math.IsNaN(p.MomentOfInertia) || p.MomentOfInertia < 0 {
		t.Fatalf("degenerate I-beam produced invalid inertia %g", p.MomentOfInertia)
	}

	// Web as wide as the flange degenerates the same way
	p = NewIBeam(0.2, 0.4, 0.02, 0.2).Properties()
	approx(t, "I", p.MomentOfInertia, 0.2*math.Pow(0.4, 3)/12, 1e-12)
}

func TestScenarioASection(t *testing.T) {
	// b=0.2, h=0.5 → I ≈ 0.0020833 m⁴
	p := NewRectangular(0.2, 0.5).Properties()
	approx(t, "I", p.MomentOfInertia, 0.0020833, 1e-6)
}
