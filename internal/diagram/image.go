package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/bearing"
)

var (
	shearColor   = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	momentColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	loadedColor  = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	idleColor    = color.Gray{Y: 160}
	outlineColor = color.Black
)

// ExportShearMomentDiagram writes V(x) and M(x) to an image file.
// The format follows the file extension (png, svg, pdf; default png).
func ExportShearMomentDiagram(d beam.Diagrams, filename string) error {
	p := plot.New()
	p.Title.Text = "Shear and Bending Moment Diagrams"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "V (N) / M (N·m)"

	shear, err := plotter.NewLine(series(d.X, d.V))
	if err != nil {
		return err
	}
	shear.LineStyle.Width = vg.Points(1.5)
	shear.LineStyle.Color = shearColor

	moment, err := plotter.NewLine(series(d.X, d.M))
	if err != nil {
		return err
	}
	moment.LineStyle.Width = vg.Points(1.5)
	moment.LineStyle.Color = momentColor

	zero, err := plotter.NewLine(plotter.XYs{
		{X: d.X[0], Y: 0},
		{X: d.X[len(d.X)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(zero, shear, moment)
	p.Legend.Add("V(x)", shear)
	p.Legend.Add("M(x)", moment)
	p.Legend.Top = true

	return savePlot(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportDeflectedShape writes the exaggerated deflected shape of the
// field mesh's neutral axis together with the undeformed axis.
func ExportDeflectedShape(mesh beam.Mesh, filename string) error {
	p := plot.New()
	p.Title.Text = "Deflected Shape (exaggerated)"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	// Walk the mid row of the node grid (the neutral axis)
	mid := mesh.NY / 2
	deflected := make(plotter.XYs, 0, mesh.NX+1)
	axis := make(plotter.XYs, 0, mesh.NX+1)
	for i := 0; i <= mesh.NX; i++ {
		n := mesh.Nodes[i*(mesh.NY+1)+mid]
		deflected = append(deflected, plotter.XY{X: n.DX, Y: n.DY})
		axis = append(axis, plotter.XY{X: n.X, Y: 0})
	}

	axisLine, err := plotter.NewLine(axis)
	if err != nil {
		return err
	}
	axisLine.LineStyle.Color = color.Gray{Y: 128}
	axisLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	shape, err := plotter.NewLine(deflected)
	if err != nil {
		return err
	}
	shape.LineStyle.Width = vg.Points(2)
	shape.LineStyle.Color = momentColor

	p.Add(axisLine, shape)
	return savePlot(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// stressFieldResolution is the per-ball polar sampling density for the
// interior stress overlay.
const stressFieldResolution = 5

// ExportBearingDiagram writes the bearing layout with each ball drawn
// at its pitch-circle position, loaded balls highlighted, interior
// stress fields shaded toward the contact poles and load bars pointing
// outward in proportion to the assigned load.
func ExportBearingDiagram(elements []bearing.Element, filename string) error {
	p := plot.New()
	p.Title.Text = "Bearing Load Distribution"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var maxLoad float64
	for _, e := range elements {
		if e.Load > maxLoad {
			maxLoad = e.Load
		}
	}

	var loaded, idle plotter.XYs
	for _, e := range elements {
		pt := plotter.XY{X: e.CX, Y: e.CY}
		if e.Load > 0 {
			loaded = append(loaded, pt)
		} else {
			idle = append(idle, pt)
		}
	}

	if len(idle) > 0 {
		s, err := plotter.NewScatter(idle)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = idleColor
		s.GlyphStyle.Radius = vg.Points(5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}
	if len(loaded) > 0 {
		s, err := plotter.NewScatter(loaded)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = loadedColor
		s.GlyphStyle.Radius = vg.Points(5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}

	// Interior stress fields of the loaded balls, shaded by intensity
	field := bearingStressPoints(elements, stressFieldResolution)
	var maxStress float64
	for _, pt := range field {
		if pt.Z > maxStress {
			maxStress = pt.Z
		}
	}
	if maxStress > 0 {
		sc, err := plotter.NewScatter(plotter.XYValues{XYZer: field})
		if err != nil {
			return err
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			frac := field[i].Z / maxStress
			return draw.GlyphStyle{
				Color:  color.RGBA{R: 255, G: uint8(200 * (1 - frac)), A: 255},
				Radius: vg.Points(1.5),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)
	}

	// Load bars from each loaded ball outward
	for _, e := range elements {
		if e.Load <= 0 || maxLoad <= 0 {
			continue
		}
		scale := 1 + 0.5*e.Load/maxLoad
		bar, err := plotter.NewLine(plotter.XYs{
			{X: e.CX, Y: e.CY},
			{X: e.CX * scale, Y: e.CY * scale},
		})
		if err != nil {
			return err
		}
		bar.LineStyle.Width = vg.Points(1.5)
		bar.LineStyle.Color = loadedColor
		p.Add(bar)
	}

	// Pitch circle outline
	circle := make(plotter.XYs, 0, len(elements)+1)
	for _, e := range elements {
		circle = append(circle, plotter.XY{X: e.CX, Y: e.CY})
	}
	if len(circle) > 0 {
		circle = append(circle, circle[0])
		outline, err := plotter.NewLine(circle)
		if err != nil {
			return err
		}
		outline.LineStyle.Color = outlineColor
		outline.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(outline)
	}

	return savePlot(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// bearingStressPoints flattens the interior stress fields of the loaded
// balls into one XYZ series, stress in Z.
func bearingStressPoints(elements []bearing.Element, resolution int) plotter.XYZs {
	var pts plotter.XYZs
	for _, e := range elements {
		if e.Load <= 0 {
			continue
		}
		for _, sp := range bearing.StressField(e, resolution) {
			pts = append(pts, plotter.XYZ{X: sp.X, Y: sp.Y, Z: sp.Stress})
		}
	}
	return pts
}

func series(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

func savePlot(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
