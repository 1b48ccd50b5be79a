package beam

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Segment is one interval [X1, X2) of the beam over which shear and
// moment are each a single polynomial in x. Coefficients are ordered by
// ascending power: Shear has degree ≤ 2, Moment degree ≤ 3.
type Segment struct {
	X1, X2 float64
	Shear  []float64
	Moment []float64
}

// ShearAt evaluates the segment's shear polynomial at x
func (s Segment) ShearAt(x float64) float64 { return polyAt(s.Shear, x) }

// MomentAt evaluates the segment's moment polynomial at x
func (s Segment) MomentAt(x float64) float64 { return polyAt(s.Moment, x) }

func polyAt(coeffs []float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// DisplayThreshold is the coefficient magnitude below which a term is
// dropped from the human-readable polynomial. Display only; internal
// arithmetic always keeps full precision.
const DisplayThreshold = 0.001

const boundaryEps = 1e-9

// BuildSegments partitions [0, L] at every support position and load
// discontinuity and derives exact V(x) and M(x) polynomial coefficients
// for each segment. The segments are contiguous, non-overlapping and
// cover exactly [0, L].
//
// Convention shared with SweepDiagrams: V(x) is the sum of vertical
// forces at positions ≤ x, and M(x) = Σ F·(x − x_F) − Σ m₀ over
// everything to the left, sagging positive.
func BuildSegments(cfg Config, loads []Load, r Reactions) []Segment {
	supA, supB := cfg.Supports()

	bounds := []float64{0, cfg.Length, supA}
	if cfg.Boundary != Cantilever {
		bounds = append(bounds, supB)
	}
	for _, l := range loads {
		switch l.Kind {
		case PointLoad, AppliedMoment:
			bounds = append(bounds, l.X)
		default:
			bounds = append(bounds, l.X1, l.X2)
		}
	}
	for i, b := range bounds {
		bounds[i] = clamp(b, 0, cfg.Length)
	}
	sort.Float64s(bounds)

	// De-duplicate within tolerance
	uniq := bounds[:1]
	for _, b := range bounds[1:] {
		if b-uniq[len(uniq)-1] > boundaryEps {
			uniq = append(uniq, b)
		}
	}

	segments := make([]Segment, 0, len(uniq)-1)
	for i := 0; i+1 < len(uniq); i++ {
		segments = append(segments, buildSegment(cfg, loads, r, uniq[i], uniq[i+1]))
	}
	return segments
}

// buildSegment accumulates closed-form contributions of every reaction
// and load active over [xA, xB) into a fresh coefficient set.
func buildSegment(cfg Config, loads []Load, r Reactions, xA, xB float64) Segment {
	v := make([]float64, 3)
	m := make([]float64, 4)

	// A force F applied at position `at` to the left of the segment
	// contributes F to shear and F·(x − at) to moment.
	addForce := func(f, at float64) {
		v[0] += f
		m[1] += f
		m[0] -= f * at
	}

	supA, supB := cfg.Supports()
	if supA <= xA+boundaryEps {
		addForce(r.A, supA)
		if cfg.Boundary == Cantilever {
			m[0] -= r.MomentA
		}
	}
	if cfg.Boundary != Cantilever && supB <= xA+boundaryEps {
		addForce(r.B, supB)
	}

	for _, l := range loads {
		switch l.Kind {
		case PointLoad:
			if l.X <= xA+boundaryEps {
				addForce(l.Magnitude, l.X)
			}

		case AppliedMoment:
			if l.X <= xA+boundaryEps {
				m[0] -= l.Magnitude
			}

		case UniformLoad:
			if l.X2 <= xA+boundaryEps {
				// Fully left: equivalent point force at the centroid
				addForce(l.Force(), l.Centroid())
				break
			}
			if l.X1 <= xA+boundaryEps {
				// Spans the segment: V picks up w·(x − x1),
				// M picks up w·(x − x1)²/2
				w := l.Magnitude
				v[1] += w
				v[0] -= w * l.X1
				m[2] += w / 2
				m[1] -= w * l.X1
				m[0] += w * l.X1 * l.X1 / 2
			}

		case TriangularLoad:
			if l.X2 <= xA+boundaryEps {
				addForce(l.Force(), l.Centroid())
				break
			}
			if l.X1 <= xA+boundaryEps {
				addTriangular(v, m, l)
			}
		}
	}

	return Segment{X1: xA, X2: xB, Shear: v, Moment: m}
}

// addTriangular accumulates the partial-span contribution of a
// triangular load whose span covers the segment. The two peak-side
// cases integrate to algebraically distinct polynomials.
func addTriangular(v, m []float64, l Load) {
	q := l.Magnitude
	u1, u2 := l.X1, l.X2
	span := u2 - u1

	if l.Peak == PeakRight {
		// Intensity q·(x−u1)/span rising toward u2:
		// V += q·(x−u1)²/(2·span), M += q·(x−u1)³/(6·span)
		c := q / (2 * span)
		v[2] += c
		v[1] -= 2 * c * u1
		v[0] += c * u1 * u1

		d := q / (6 * span)
		m[3] += d
		m[2] -= 3 * d * u1
		m[1] += 3 * d * u1 * u1
		m[0] -= d * u1 * u1 * u1
		return
	}

	// Peak at u1, intensity q·(u2−x)/span falling toward u2
	c := q / span
	v[2] -= c / 2
	v[1] += c * u2
	v[0] += c * (u1*u1/2 - u2*u1)

	m[3] -= c / 6
	m[2] += c * u2 / 2
	m[1] += c * (u1*u1/2 - u2*u1)
	m[0] += c * (u2*u1*u1/2 - u1*u1*u1/3)
}

// FormatPolynomial renders ascending-power coefficients as a
// human-readable polynomial in the named variable, highest power first.
// Terms below DisplayThreshold are dropped; an empty result reads "0".
func FormatPolynomial(coeffs []float64, name string) string {
	var sb strings.Builder
	for i := len(coeffs) - 1; i >= 0; i-- {
		c := coeffs[i]
		if math.Abs(c) < DisplayThreshold {
			continue
		}
		if sb.Len() == 0 {
			if c < 0 {
				sb.WriteString("-")
			}
		} else {
			if c < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}
		abs := math.Abs(c)
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("%.6g", abs))
		case i == 1:
			sb.WriteString(fmt.Sprintf("%.6g·%s", abs, name))
		default:
			sb.WriteString(fmt.Sprintf("%.6g·%s^%d", abs, name, i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// String renders the segment interval with both polynomials
func (s Segment) String() string {
	return fmt.Sprintf("[%.6g, %.6g)  V(x) = %s   M(x) = %s",
		s.X1, s.X2, FormatPolynomial(s.Shear, "x"), FormatPolynomial(s.Moment, "x"))
}
