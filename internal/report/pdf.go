// Package report exports beam and bearing analysis results as PDF
// calculation sheets and XLSX workbooks.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/section"
)

// BeamReport holds everything the PDF calculation sheet prints
type BeamReport struct {
	Title     string
	Config    beam.Config
	Loads     []beam.Load
	Reactions beam.Reactions
	Summary   beam.Summary
	Segments  []beam.Segment
}

// WritePDF writes the calculation sheet to path
func WritePDF(r BeamReport, path string) error {
	if r.Title == "" {
		r.Title = "Beam Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	heading("Configuration")
	row("Length", fmt.Sprintf("%g m", r.Config.Length))
	row("Boundary condition", string(r.Config.Boundary))
	if r.Config.Boundary == beam.Overhanging {
		row("Supports", fmt.Sprintf("A = %g m, B = %g m", r.Config.SupportA, r.Config.SupportB))
	}
	row("Elastic modulus", fmt.Sprintf("%.4g Pa", r.Config.Elastic))
	row("Yield strength", fmt.Sprintf("%.4g Pa", r.Config.Yield))
	props := r.Config.Section.Properties()
	row("Section", sectionLabel(r.Config.Section))
	row("Moment of inertia", fmt.Sprintf("%.6g m^4", props.MomentOfInertia))
	row("Area", fmt.Sprintf("%.6g m^2", props.Area))
	pdf.Ln(4)

	heading("Loads")
	for i, l := range r.Loads {
		row(fmt.Sprintf("Load %d", i+1), describeLoad(l))
	}
	pdf.Ln(4)

	heading("Support Reactions")
	row("Ra", fmt.Sprintf("%.4f N", r.Reactions.A))
	if r.Config.Boundary == beam.Cantilever {
		row("Ma", fmt.Sprintf("%.4f N-m", r.Reactions.MomentA))
	} else {
		row("Rb", fmt.Sprintf("%.4f N", r.Reactions.B))
	}
	if r.Reactions.Degenerate {
		row("Warning", "coincident supports; results are not physical")
	}
	pdf.Ln(4)

	heading("Results")
	row("Max bending stress", fmt.Sprintf("%.6g Pa", r.Summary.MaxStress))
	row("Max deflection", fmt.Sprintf("%.6g m", r.Summary.MaxDeflection))
	row("Safety factor", fmt.Sprintf("%.3f", r.Summary.SafetyFactor))
	deflStatus := "OK"
	if !r.Summary.DeflectionOK {
		deflStatus = "EXCEEDED"
	}
	row("Deflection limit (L/360)", fmt.Sprintf("%.6g m  [%s]", r.Summary.DeflectionLimit, deflStatus))
	pdf.Ln(4)

	if len(r.Segments) > 0 {
		heading("Piecewise Shear and Moment Expressions")
		pdf.SetFont("Courier", "", 8)
		for _, s := range r.Segments {
			pdf.MultiCell(0, 5, fmt.Sprintf("x in [%.4g, %.4g)", s.X1, s.X2), "", "L", false)
			pdf.MultiCell(0, 5, "  V(x) = "+beam.FormatPolynomial(s.Shear, "x"), "", "L", false)
			pdf.MultiCell(0, 5, "  M(x) = "+beam.FormatPolynomial(s.Moment, "x"), "", "L", false)
			pdf.Ln(2)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func describeLoad(l beam.Load) string {
	switch l.Kind {
	case beam.PointLoad:
		return fmt.Sprintf("point %g N at x = %g m", l.Magnitude, l.X)
	case beam.UniformLoad:
		return fmt.Sprintf("uniform %g N/m over [%g, %g] m", l.Magnitude, l.X1, l.X2)
	case beam.TriangularLoad:
		return fmt.Sprintf("triangular peak %g N/m (%s) over [%g, %g] m", l.Magnitude, l.Peak, l.X1, l.X2)
	case beam.AppliedMoment:
		return fmt.Sprintf("moment %g N-m at x = %g m", l.Magnitude, l.X)
	}
	return "unknown"
}

func sectionLabel(d section.Descriptor) string {
	switch d.Shape {
	case section.Circular:
		return fmt.Sprintf("circular d = %g m", d.Height)
	case section.IBeam:
		return fmt.Sprintf("I-beam B = %g m, H = %g m, tf = %g m, tw = %g m",
			d.FlangeWidth, d.Height, d.FlangeThickness, d.WebThickness)
	default:
		return fmt.Sprintf("rectangular b = %g m, h = %g m", d.Width, d.Height)
	}
}
