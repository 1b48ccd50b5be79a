package beam

import "math"

// Diagrams holds the rasterized shear and moment diagrams produced by
// the numeric sweep. The three slices are parallel, with n+1 stations.
//
// M follows the sagging-positive convention shared with BuildSegments:
// a cantilever wall station carries −MomentA and the moment relaxes to
// zero at the free end. SolveField reports the textbook closed form
// M = P·(x−a) instead; the two agree in magnitude.
type Diagrams struct {
	X []float64
	V []float64 // shear (N)
	M []float64 // bending moment (N·m)
}

// SweepDiagrams sweeps the beam in n equal steps, accumulating shear
// from reactions and loads and integrating moment by forward Euler.
// Jumps (reactions, point loads, applied moments) are applied at the
// nearest station before that station is recorded, so a recorded value
// at a discontinuity belongs to the interval to its right. Exactness
// at discontinuities is the segment builder's job; the sweep is a
// charting-grade approximation.
func SweepDiagrams(cfg Config, loads []Load, r Reactions, n int) Diagrams {
	if n < 2 {
		n = 2
	}
	dx := cfg.Length / float64(n)
	station := func(x float64) int { return int(math.Round(x / dx)) }

	supA, supB := cfg.Supports()
	aIdx, bIdx := station(supA), station(supB)

	pointIdx := make([]int, len(loads))
	for i, l := range loads {
		if l.Kind == PointLoad || l.Kind == AppliedMoment {
			pointIdx[i] = station(l.X)
		}
	}

	d := Diagrams{
		X: make([]float64, n+1),
		V: make([]float64, n+1),
		M: make([]float64, n+1),
	}

	var v, m float64
	for i := 0; i <= n; i++ {
		x := float64(i) * dx

		if i == aIdx {
			v += r.A
			if cfg.Boundary == Cantilever {
				// The internal sagging moment at the wall face is the
				// negative of the reaction moment.
				m -= r.MomentA
			}
		}
		if cfg.Boundary != Cantilever && i == bIdx {
			v += r.B
		}

		for li, l := range loads {
			switch l.Kind {
			case PointLoad:
				if i == pointIdx[li] {
					v += l.Magnitude
				}
			case AppliedMoment:
				if i == pointIdx[li] {
					m -= l.Magnitude
				}
			case UniformLoad:
				if x > l.X1 && x <= l.X2 {
					v += l.Magnitude * dx
				}
			case TriangularLoad:
				if x > l.X1 && x <= l.X2 {
					v += triangularIntensity(l, x) * dx
				}
			}
		}

		d.X[i] = x
		d.V[i] = v
		d.M[i] = m
		m += v * dx
	}

	return d
}

// triangularIntensity interpolates the local intensity of a triangular
// load at x, zero at the end opposite the peak.
func triangularIntensity(l Load, x float64) float64 {
	span := l.X2 - l.X1
	if span <= 0 {
		return 0
	}
	if l.Peak == PeakRight {
		return l.Magnitude * (x - l.X1) / span
	}
	return l.Magnitude * (l.X2 - x) / span
}
