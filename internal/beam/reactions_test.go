package beam

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/section"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (tol %g)", name, got, want, tol)
	}
}

// simplySupported8m is the reference case: L=8 m simply supported,
// 0.2×0.5 rectangular section, E=200 GPa, 50 kN downward at midspan.
func simplySupported8m() (Config, []Load) {
	cfg := Config{
		Length:   8,
		Boundary: SimplySupported,
		Elastic:  200e9,
		Yield:    250e6,
		Section:  section.NewRectangular(0.2, 0.5),
	}
	return cfg, SingleLoad(-50000, 4).Resolve(cfg.Length)
}

// cantilever5m is the reference case: L=5 m cantilever with a 1 kN
// downward load at the free end.
func cantilever5m() (Config, []Load) {
	cfg := Config{
		Length:   5,
		Boundary: Cantilever,
		Elastic:  200e9,
		Yield:    250e6,
		Section:  section.NewRectangular(0.2, 0.5),
	}
	return cfg, SingleLoad(-1000, 5).Resolve(cfg.Length)
}

// mixedOverhanging is an overhanging beam exercising every load
// primitive at once.
func mixedOverhanging() (Config, []Load) {
	cfg := Config{
		Length:   10,
		Boundary: Overhanging,
		SupportA: 2,
		SupportB: 8,
		Elastic:  200e9,
		Yield:    250e6,
		Section:  section.NewRectangular(0.2, 0.5),
	}
	loads := ExplicitLoads([]Load{
		NewPointLoad(1, -1000),
		NewUniformLoad(3, 7, -500),
		NewTriangularLoad(6, 9, -800, PeakLeft),
		NewAppliedMoment(5, 2000),
	}).Resolve(cfg.Length)
	return cfg, loads
}

func TestSimplySupportedMidspanReactions(t *testing.T) {
	cfg, loads := simplySupported8m()
	r := SolveReactions(cfg, loads)
	approx(t, "Ra", r.A, 25000, 1e-6)
	approx(t, "Rb", r.B, 25000, 1e-6)
	if r.Degenerate {
		t.Error("well-formed configuration flagged degenerate")
	}
}

func TestCantileverTipLoadReactions(t *testing.T) {
	cfg, loads := cantilever5m()
	r := SolveReactions(cfg, loads)
	approx(t, "Ra", r.A, 1000, 1e-9)
	approx(t, "Ma", r.MomentA, 5000, 1e-9)
}

func TestTriangularLoadReactions(t *testing.T) {
	// Full-span triangular load, peak 600 N/m downward at the right
	// end of a 6 m simply supported beam: W = 1800 N at x = 4 m.
	cfg := Config{Length: 6, Boundary: SimplySupported, Elastic: 1, Section: section.NewRectangular(1, 1)}
	loads := ExplicitLoads([]Load{NewTriangularLoad(0, 6, -600, PeakRight)}).Resolve(6)
	r := SolveReactions(cfg, loads)
	approx(t, "Rb", r.B, 1200, 1e-9)
	approx(t, "Ra", r.A, 600, 1e-9)
}

func TestTriangularCentroid(t *testing.T) {
	left := NewTriangularLoad(2, 8, -300, PeakLeft)
	approx(t, "peak-left centroid", left.Centroid(), 4, 1e-12)
	right := NewTriangularLoad(2, 8, -300, PeakRight)
	approx(t, "peak-right centroid", right.Centroid(), 6, 1e-12)
	approx(t, "total force", left.Force(), -900, 1e-12)
}

func TestEquilibriumAboutArbitraryPivots(t *testing.T) {
	cfgSS, loadsSS := simplySupported8m()
	cfgC, loadsC := cantilever5m()
	cfgMix, loadsMix := mixedOverhanging()
	cases := []struct {
		name string
		cfg  Config
		lds  []Load
	}{
		{"simply supported", cfgSS, loadsSS},
		{"cantilever", cfgC, loadsC},
		{"mixed overhanging", cfgMix, loadsMix},
	}
	for _, tc := range cases {
		r := SolveReactions(tc.cfg, tc.lds)
		for _, pivot := range []float64{0, 3.7, tc.cfg.Length} {
			sumF, sumM := Residual(tc.cfg, tc.lds, r, pivot)
			if math.Abs(sumF) > 1e-6 {
				t.Errorf("%s: ΣFy = %g about pivot %g", tc.name, sumF, pivot)
			}
			if math.Abs(sumM) > 1e-6 {
				t.Errorf("%s: ΣM = %g about pivot %g", tc.name, sumM, pivot)
			}
		}
	}
}

func TestCoincidentSupportsFlaggedDegenerate(t *testing.T) {
	cfg := Config{
		Length:   10,
		Boundary: Overhanging,
		SupportA: 5,
		SupportB: 5,
		Elastic:  1,
		Section:  section.NewRectangular(1, 1),
	}
	loads := SingleLoad(-1000, 3).Resolve(cfg.Length)
	r := SolveReactions(cfg, loads)
	if !r.Degenerate {
		t.Fatal("coincident supports not flagged degenerate")
	}
	if math.IsNaN(r.A) || math.IsNaN(r.B) || math.IsInf(r.A, 0) || math.IsInf(r.B, 0) {
		t.Fatalf("degenerate reactions not finite: Ra=%g Rb=%g", r.A, r.B)
	}
}

func TestLoadPositionClamping(t *testing.T) {
	loads := SingleLoad(-1000, 12).Resolve(10)
	if loads[0].X != 10 {
		t.Errorf("out-of-range position not clamped: got %g", loads[0].X)
	}
	loads = ExplicitLoads([]Load{NewUniformLoad(-2, 15, -100)}).Resolve(10)
	if loads[0].X1 != 0 || loads[0].X2 != 10 {
		t.Errorf("distributed span not clamped: [%g, %g]", loads[0].X1, loads[0].X2)
	}
}
