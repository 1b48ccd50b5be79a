package section

import "math"

// Shape identifies the cross-section type
type Shape string

const (
	Rectangular Shape = "rectangular"
	Circular    Shape = "circular"
	IBeam       Shape = "ibeam"
)

// Descriptor describes a beam cross section.
// For circular sections, Height is interpreted as the diameter.
type Descriptor struct {
	Shape Shape `json:"shape"`

	// Dimensions (m)
	Height          float64 `json:"height"`                     // h - total depth (diameter for circular)
	Width           float64 `json:"width,omitempty"`            // b - width (rectangular)
	FlangeWidth     float64 `json:"flange_width,omitempty"`     // B - flange width (I-beam)
	FlangeThickness float64 `json:"flange_thickness,omitempty"` // tf
	WebThickness    float64 `json:"web_thickness,omitempty"`    // tw
}

// Properties holds the derived elastic section properties
type Properties struct {
	MomentOfInertia float64 // I - second moment of area about the neutral axis (m⁴)
	Area            float64 // gross cross-sectional area (m²)
}

// NewRectangular creates a rectangular section descriptor
func NewRectangular(width, height float64) Descriptor {
	return Descriptor{Shape: Rectangular, Width: width, Height: height}
}

// NewCircular creates a circular section descriptor with the given diameter
func NewCircular(diameter float64) Descriptor {
	return Descriptor{Shape: Circular, Height: diameter}
}

// NewIBeam creates an I-beam section descriptor
func NewIBeam(flangeWidth, height, flangeThickness, webThickness float64) Descriptor {
	return Descriptor{
		Shape:           IBeam,
		Height:          height,
		FlangeWidth:     flangeWidth,
		FlangeThickness: flangeThickness,
		WebThickness:    webThickness,
	}
}

// Properties computes the second moment of area and cross-sectional
// area for the section. The function is total: an I-beam whose hollow
// cutout would exceed the outer box is treated as a solid rectangle of
// the outer dimensions instead of producing a negative inertia.
func (d Descriptor) Properties() Properties {
	switch d.Shape {
	case Circular:
		dia := d.Height
		return Properties{
			MomentOfInertia: math.Pi * math.Pow(dia, 4) / 64,
			Area:            math.Pi * math.Pow(dia/2, 2),
		}
	case IBeam:
		outerI := d.FlangeWidth * math.Pow(d.Height, 3) / 12
		hInner := d.Height - 2*d.FlangeThickness
		bInner := d.FlangeWidth - d.WebThickness
		if hInner <= 0 || bInner <= 0 {
			// Hollow cutout larger than the outer box: solid fallback
			return Properties{
				MomentOfInertia: outerI,
				Area:            d.FlangeWidth * d.Height,
			}
		}
		return Properties{
			MomentOfInertia: outerI - bInner*math.Pow(hInner, 3)/12,
			Area:            d.FlangeWidth*d.Height - bInner*hInner,
		}
	default:
		return Properties{
			MomentOfInertia: d.Width * math.Pow(d.Height, 3) / 12,
			Area:            d.Width * d.Height,
		}
	}
}
