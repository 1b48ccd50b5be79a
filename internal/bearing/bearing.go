// Package bearing distributes a radial load over the rolling elements
// of a ball bearing and derives approximate contact stresses.
//
// Load sharing follows the classical Stribeck approximation; the
// contact stress and deformation formulas are power-law scalings
// calibrated for relative comparison between elements, not certified
// Hertz contact values.
package bearing

import "math"

const (
	// StribeckFactor is the zero-clearance load-zone constant in
	// Qmax = StribeckFactor · Fr / Z.
	StribeckFactor = 5.0

	// StressScale calibrates the k·√(Q/d) contact stress.
	StressScale = 50.0

	// DeformationScale calibrates the k·Q^(2/3) compressive
	// deformation.
	DeformationScale = 0.001

	// loadAngle is the direction of the applied radial load vector,
	// fixed pointing downward.
	loadAngle = -math.Pi / 2
)

// Config describes a radial ball bearing and its load
type Config struct {
	OuterRadius float64 // raceway outer radius
	InnerRadius float64 // raceway inner radius
	BallCount   int     // number of rolling elements, ≥ 1
	RadialLoad  float64 // applied radial load (N), ≥ 0
}

// PitchRadius is the radius of the circle the ball centers ride on
func (c Config) PitchRadius() float64 { return (c.OuterRadius + c.InnerRadius) / 2 }

// BallRadius is the radius of each rolling element
func (c Config) BallRadius() float64 { return (c.OuterRadius - c.InnerRadius) / 2 }

// Element is one rolling element with its assigned share of the load
type Element struct {
	Angle float64 // angular position on the pitch circle (rad)

	Load          float64 // assigned normal load (N); zero outside the load zone
	ContactStress float64 // approximate Hertzian contact stress
	Deformation   float64 // approximate compressive deformation

	CX, CY     float64 // ball center on the pitch circle
	BallRadius float64
}

// Distribute assigns a load to every rolling element. Only the
// half-circle facing the load vector carries force; within it the share
// falls off as cos^1.5 of the angular distance ψ from the load vector.
func Distribute(cfg Config) []Element {
	n := cfg.BallCount
	if n < 1 {
		n = 1
	}

	qmax := StribeckFactor * cfg.RadialLoad / float64(n)
	pitch := cfg.PitchRadius()
	ballR := cfg.BallRadius()
	ballD := 2 * ballR

	elements := make([]Element, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		psi := angularDistance(theta, loadAngle)

		var load float64
		if psi < math.Pi/2 {
			load = qmax * math.Pow(math.Cos(psi), 1.5)
		}

		e := Element{
			Angle:      theta,
			Load:       load,
			CX:         pitch * math.Cos(theta),
			CY:         pitch * math.Sin(theta),
			BallRadius: ballR,
		}
		if load > 0 && ballD > 0 {
			e.ContactStress = StressScale * math.Sqrt(load/ballD)
			e.Deformation = DeformationScale * math.Pow(load, 2.0/3.0)
		}
		elements[k] = e
	}
	return elements
}

// angularDistance wraps the separation between two angles to [0, π]
func angularDistance(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
