// Package beam implements the beam analysis engine: static equilibrium
// reactions for arbitrary mixed load sets, closed-form Euler–Bernoulli
// stress and deflection fields, numerically swept shear/moment diagrams,
// and exact per-segment polynomial expressions for V(x) and M(x).
//
// Sign convention: a negative force magnitude denotes a downward load.
// Solved reactions come out positive upward. Bending stress is
// σ = −M·y/I with y measured from the neutral axis; with downward loads
// the stress comes out positive on compressive fibers.
package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/section"
)

// BoundaryCondition identifies how the beam is supported
type BoundaryCondition string

const (
	Cantilever      BoundaryCondition = "cantilever"
	SimplySupported BoundaryCondition = "simply-supported"
	Overhanging     BoundaryCondition = "overhanging"
)

// Config describes a single beam case. All quantities are SI base
// units: m, N, Pa.
type Config struct {
	Length   float64
	Boundary BoundaryCondition

	// Support positions along the beam, used for overhanging beams.
	// Cantilevers are fixed at x=0; simply supported beams rest on
	// both ends.
	SupportA float64
	SupportB float64

	// Material
	Elastic float64 // E - Young's modulus (Pa)
	Yield   float64 // σy - yield strength (Pa)

	Section section.Descriptor
}

// Supports returns the resolved support positions for the boundary
// condition. For cantilevers both values are the fixed end at x=0.
func (c Config) Supports() (a, b float64) {
	switch c.Boundary {
	case Cantilever:
		return 0, 0
	case Overhanging:
		return c.SupportA, c.SupportB
	default:
		return 0, c.Length
	}
}

// Validate checks the configuration for physical plausibility
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("beam length must be positive, got %g", c.Length)
	}
	if c.Elastic <= 0 {
		return fmt.Errorf("elastic modulus must be positive, got %g", c.Elastic)
	}
	if c.Boundary == Overhanging {
		if c.SupportA < 0 || c.SupportB > c.Length || c.SupportA > c.SupportB {
			return fmt.Errorf("supports must satisfy 0 <= a <= b <= L, got a=%g b=%g L=%g",
				c.SupportA, c.SupportB, c.Length)
		}
	}
	return nil
}

// LoadKind identifies a load primitive
type LoadKind int

const (
	PointLoad LoadKind = iota
	UniformLoad
	TriangularLoad
	AppliedMoment
)

// PeakSide identifies which end of a triangular load carries the peak
type PeakSide string

const (
	PeakLeft  PeakSide = "left"
	PeakRight PeakSide = "right"
)

// Load is one load primitive. Point loads and applied moments act at X;
// distributed loads span [X1, X2]. Magnitude is N for point loads, N/m
// for uniform loads, the peak intensity in N/m for triangular loads,
// and N·m for applied moments.
type Load struct {
	Kind      LoadKind
	X         float64
	X1, X2    float64
	Magnitude float64
	Peak      PeakSide
}

// NewPointLoad creates a concentrated force at x
func NewPointLoad(x, magnitude float64) Load {
	return Load{Kind: PointLoad, X: x, Magnitude: magnitude}
}

// NewUniformLoad creates a constant distributed load over [x1, x2]
func NewUniformLoad(x1, x2, magnitude float64) Load {
	return Load{Kind: UniformLoad, X1: x1, X2: x2, Magnitude: magnitude}
}

// NewTriangularLoad creates a linearly varying load over [x1, x2] with
// the peak intensity at the given side and zero at the other end
func NewTriangularLoad(x1, x2, peak float64, side PeakSide) Load {
	return Load{Kind: TriangularLoad, X1: x1, X2: x2, Magnitude: peak, Peak: side}
}

// NewAppliedMoment creates a concentrated couple at x
func NewAppliedMoment(x, magnitude float64) Load {
	return Load{Kind: AppliedMoment, X: x, Magnitude: magnitude}
}

// Validate checks the load definition
func (l Load) Validate() error {
	switch l.Kind {
	case UniformLoad, TriangularLoad:
		if l.X1 >= l.X2 {
			return fmt.Errorf("distributed load requires x1 < x2, got x1=%g x2=%g", l.X1, l.X2)
		}
	}
	return nil
}

// Force returns the net vertical force of the load (N). Applied
// moments carry no vertical force.
func (l Load) Force() float64 {
	switch l.Kind {
	case PointLoad:
		return l.Magnitude
	case UniformLoad:
		return l.Magnitude * (l.X2 - l.X1)
	case TriangularLoad:
		return 0.5 * l.Magnitude * (l.X2 - l.X1)
	}
	return 0
}

// Centroid returns the position where the load's resultant acts. The
// centroid of a triangular load sits one third of the span away from
// the peak end.
func (l Load) Centroid() float64 {
	switch l.Kind {
	case UniformLoad:
		return (l.X1 + l.X2) / 2
	case TriangularLoad:
		span := l.X2 - l.X1
		if l.Peak == PeakRight {
			return l.X2 - span/3
		}
		return l.X1 + span/3
	}
	return l.X
}

// LoadCase is the resolved load list for one beam case. Construct it
// with ExplicitLoads or SingleLoad so that solver code never has to
// branch on an empty list.
type LoadCase struct {
	loads []Load
}

// ExplicitLoads builds a load case from a caller-supplied list
func ExplicitLoads(loads []Load) LoadCase {
	return LoadCase{loads: loads}
}

// SingleLoad builds a load case holding one synthesized point load
func SingleLoad(magnitude, position float64) LoadCase {
	return LoadCase{loads: []Load{NewPointLoad(position, magnitude)}}
}

// Resolve clamps every load position into [0, L] and returns the
// effective load list. Transiently out-of-range positions are clamped
// rather than rejected.
func (lc LoadCase) Resolve(length float64) []Load {
	out := make([]Load, 0, len(lc.loads))
	for _, l := range lc.loads {
		l.X = clamp(l.X, 0, length)
		l.X1 = clamp(l.X1, 0, length)
		l.X2 = clamp(l.X2, 0, length)
		out = append(out, l)
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
