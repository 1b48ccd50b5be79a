package beam

import "math"

// FieldSample is one evaluation point of the closed-form beam field.
// X and Y are the undeformed coordinates, with Y measured from the
// neutral axis. DX and DY are the displaced coordinates at the
// requested exaggeration scale; the physics (moment, stress) always
// uses the undeformed geometry.
type FieldSample struct {
	X, Y       float64
	Deflection float64 // v (m)
	Slope      float64 // θ (rad)
	Moment     float64 // M (N·m)
	Stress     float64 // σ = −M·y/I (Pa)
	DX, DY     float64
}

// Cell is one quadrilateral of the visualization mesh. Stress is the
// average of the four corner stresses, used for flat shading.
type Cell struct {
	Corners [4]int // node indices, counter-clockwise
	Stress  float64
}

// Mesh is the evaluated field grid. Nodes are laid out row-major with
// (NX+1)·(NY+1) entries; node (i, j) lives at index i·(NY+1)+j.
type Mesh struct {
	Nodes  []FieldSample
	NX, NY int
	Cells  []Cell

	MaxStress     float64 // max |σ| over all nodes (Pa)
	MaxDeflection float64 // max |v| over all nodes (m)
}

// FieldRequest selects the single point load and discretization for the
// closed-form field solver.
type FieldRequest struct {
	Magnitude float64 // P (N, negative = downward)
	Position  float64 // a - load position, clamped into [0, L]
	NX, NY    int     // mesh density along the span and through the depth
	Scale     float64 // deformation exaggeration factor
}

// SolveField evaluates deflection, slope, bending moment and bending
// stress on a regular grid for the two canonical boundary conditions
// (cantilever, simply supported) under a single point load, using the
// standard Euler–Bernoulli closed forms.
func SolveField(cfg Config, req FieldRequest) Mesh {
	nx, ny := req.NX, req.NY
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	length := cfg.Length
	a := clamp(req.Position, 0, length)
	p := req.Magnitude
	props := cfg.Section.Properties()
	ei := cfg.Elastic * props.MomentOfInertia
	h := cfg.Section.Height

	mesh := Mesh{
		Nodes: make([]FieldSample, 0, (nx+1)*(ny+1)),
		NX:    nx,
		NY:    ny,
	}

	for i := 0; i <= nx; i++ {
		x := length * float64(i) / float64(nx)
		v, th, m := evaluateLine(cfg.Boundary, p, a, length, ei, x)
		for j := 0; j <= ny; j++ {
			y := -h/2 + h*float64(j)/float64(ny)
			s := FieldSample{
				X:          x,
				Y:          y,
				Deflection: v,
				Slope:      th,
				Moment:     m,
				Stress:     -m * y / props.MomentOfInertia,
				// Plane sections stay plane: u = −y·θ
				DX: x - y*th*req.Scale,
				DY: y + v*req.Scale,
			}
			mesh.Nodes = append(mesh.Nodes, s)
			if math.Abs(s.Stress) > mesh.MaxStress {
				mesh.MaxStress = math.Abs(s.Stress)
			}
			if math.Abs(v) > mesh.MaxDeflection {
				mesh.MaxDeflection = math.Abs(v)
			}
		}
	}

	node := func(i, j int) int { return i*(ny+1) + j }
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := Cell{Corners: [4]int{node(i, j), node(i+1, j), node(i+1, j+1), node(i, j+1)}}
			for _, idx := range c.Corners {
				c.Stress += mesh.Nodes[idx].Stress
			}
			c.Stress /= 4
			mesh.Cells = append(mesh.Cells, c)
		}
	}

	return mesh
}

// evaluateLine returns deflection, slope and bending moment on the
// neutral axis at position x for a single point load P at a.
func evaluateLine(bc BoundaryCondition, p, a, length, ei, x float64) (v, th, m float64) {
	switch bc {
	case Cantilever:
		if x <= a {
			v = p * x * x * (3*a - x) / (6 * ei)
			th = p * x * (2*a - x) / (2 * ei)
			m = p * (x - a)
			return v, th, m
		}
		// No load and no support beyond a: the tip continues as a
		// straight line at the slope reached under the load.
		va := p * a * a * a / (3 * ei)
		tha := p * a * a / (2 * ei)
		return va + tha*(x-a), tha, 0

	default:
		b := length - a
		if x <= a {
			v = p * b * x * (length*length - b*b - x*x) / (6 * length * ei)
			th = p * b * (length*length - b*b - 3*x*x) / (6 * length * ei)
			m = p * b * x / length
			return v, th, m
		}
		// Mirror the expressions, measuring from the right support.
		xm := length - x
		v = p * a * xm * (length*length - a*a - xm*xm) / (6 * length * ei)
		th = -p * a * (length*length - a*a - 3*xm*xm) / (6 * length * ei)
		m = p * a * xm / length
		return v, th, m
	}
}
