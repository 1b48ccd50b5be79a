package beam

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/section"
)

func TestSweepSimplySupportedMidspan(t *testing.T) {
	cfg, loads := simplySupported8m()
	r := SolveReactions(cfg, loads)
	d := SweepDiagrams(cfg, loads, r, 800)

	if len(d.X) != 801 || len(d.V) != 801 || len(d.M) != 801 {
		t.Fatalf("expected 801 stations, got %d/%d/%d", len(d.X), len(d.V), len(d.M))
	}

	// Shear is +Ra left of the load and −Rb right of it
	approx(t, "V(2)", d.V[200], 25000, 1e-6)
	approx(t, "V(6)", d.V[600], -25000, 1e-6)

	// Peak moment 100 kN·m at midspan, zero at both ends
	maxM, at := 0.0, 0.0
	for i, m := range d.M {
		if math.Abs(m) > maxM {
			maxM, at = math.Abs(m), d.X[i]
		}
	}
	approx(t, "max |M|", maxM, 100000, 1)
	approx(t, "argmax M", at, 4, 0.02)
	approx(t, "M(0)", d.M[0], 0, 1e-9)
	approx(t, "M(L)", d.M[800], 0, 1e-6)
}

func TestSweepCantileverTipLoad(t *testing.T) {
	cfg, loads := cantilever5m()
	r := SolveReactions(cfg, loads)
	d := SweepDiagrams(cfg, loads, r, 500)

	// The wall station carries the reaction moment jump; the moment
	// relaxes linearly to zero at the tip.
	approx(t, "|M(0)|", math.Abs(d.M[0]), 5000, 1e-9)
	approx(t, "V(2.5)", d.V[250], 1000, 1e-9)
	approx(t, "M(2.5)", d.M[250], -2500, 1e-6)
	approx(t, "M(L)", d.M[500], 0, 1e-6)
	approx(t, "V(L)", d.V[500], 0, 1e-9)
}

func TestSweepDistributedLoadTotals(t *testing.T) {
	// Full-span UDL on a simply supported beam: V goes from +wL/2 to
	// −wL/2 and the peak moment is wL²/8 at midspan.
	cfg := Config{Length: 4, Boundary: SimplySupported, Elastic: 1,
		Section: section.NewRectangular(1, 1)}
	loads := ExplicitLoads([]Load{NewUniformLoad(0, 4, -1000)}).Resolve(4)
	r := SolveReactions(cfg, loads)
	d := SweepDiagrams(cfg, loads, r, 2000)

	n := len(d.V) - 1
	approx(t, "V(0)", d.V[0], 2000, 1e-9)
	// Station n carries the support B jump, closing the diagram
	approx(t, "V(L)", d.V[n], 0, 3)
	approx(t, "V(L-dx)", d.V[n-1], -2000, 3)
	approx(t, "M(mid)", d.M[n/2], 2000, 5) // wL²/8 = 2000
	approx(t, "M(L)", d.M[n], 0, 5)
}
