package bearing

import "math"

// decayRate controls the exponential stress falloff away from the
// contact poles, normalized by ball radius.
const decayRate = 2.0

// StressPoint is one interior sample of a ball's visualization field
type StressPoint struct {
	X, Y   float64
	Stress float64
}

// StressField synthesizes a dense polar grid of points inside the ball
// with a stress value decaying exponentially with distance from the
// nearer of the two diametrically opposite contact poles (inner and
// outer raceway contacts). Purely a rendering aid; nothing feeds back
// into the load distribution.
func StressField(e Element, resolution int) []StressPoint {
	if resolution < 1 {
		resolution = 1
	}
	r := e.BallRadius

	// Contact poles sit on the radial line through the ball center.
	ux, uy := math.Cos(e.Angle), math.Sin(e.Angle)
	innerX, innerY := e.CX-r*ux, e.CY-r*uy
	outerX, outerY := e.CX+r*ux, e.CY+r*uy

	stressAt := func(x, y float64) float64 {
		di := math.Hypot(x-innerX, y-innerY)
		do := math.Hypot(x-outerX, y-outerY)
		return e.ContactStress * math.Exp(-decayRate*math.Min(di, do)/r)
	}

	rings := resolution
	spokes := 2 * resolution
	points := make([]StressPoint, 0, rings*spokes+1)
	points = append(points, StressPoint{X: e.CX, Y: e.CY, Stress: stressAt(e.CX, e.CY)})

	for i := 1; i <= rings; i++ {
		rad := r * float64(i) / float64(rings)
		for j := 0; j < spokes; j++ {
			phi := 2 * math.Pi * float64(j) / float64(spokes)
			x := e.CX + rad*math.Cos(phi)
			y := e.CY + rad*math.Sin(phi)
			points = append(points, StressPoint{X: x, Y: y, Stress: stressAt(x, y)})
		}
	}
	return points
}
