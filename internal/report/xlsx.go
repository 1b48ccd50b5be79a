package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/bearing"
)

// WriteDiagramsXLSX writes the swept diagram arrays and the exact
// per-segment polynomials to an XLSX workbook at path.
func WriteDiagramsXLSX(d beam.Diagrams, segments []beam.Segment, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const diagrams = "Diagrams"
	if err := f.SetSheetName("Sheet1", diagrams); err != nil {
		return err
	}

	headers := []string{"x (m)", "V (N)", "M (N·m)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(diagrams, cell, h); err != nil {
			return err
		}
	}
	for i := range d.X {
		values := []float64{d.X[i], d.V[i], d.M[i]}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(diagrams, cell, v); err != nil {
				return err
			}
		}
	}

	if len(segments) > 0 {
		const sheet = "Segments"
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		segHeaders := []string{"x1 (m)", "x2 (m)", "V(x)", "M(x)"}
		for col, h := range segHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
		}
		for i, s := range segments {
			values := []interface{}{
				s.X1, s.X2,
				beam.FormatPolynomial(s.Shear, "x"),
				beam.FormatPolynomial(s.Moment, "x"),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
	}

	return f.SaveAs(path)
}

// WriteBearingXLSX writes the per-ball load table to an XLSX workbook
// at path.
func WriteBearingXLSX(elements []bearing.Element, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Elements"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Ball", "Angle (rad)", "Load (N)", "Contact Stress", "Deformation"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, e := range elements {
		values := []interface{}{
			fmt.Sprintf("%d", i+1),
			e.Angle, e.Load, e.ContactStress, e.Deformation,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
