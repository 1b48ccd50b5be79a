package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/section"
)

// parseBoundary maps a flag value to a boundary condition tag
func parseBoundary(s string) (beam.BoundaryCondition, error) {
	switch strings.ToLower(s) {
	case "cantilever":
		return beam.Cantilever, nil
	case "simply", "simply-supported", "simplysupported":
		return beam.SimplySupported, nil
	case "overhanging":
		return beam.Overhanging, nil
	}
	return "", fmt.Errorf("unknown boundary condition %q (want cantilever, simply-supported or overhanging)", s)
}

// parseSection builds a section descriptor from the shared section flags
func parseSection(shape string, width, height, flangeWidth, flangeThickness, webThickness float64) (section.Descriptor, error) {
	switch strings.ToLower(shape) {
	case "rectangular", "rect":
		return section.NewRectangular(width, height), nil
	case "circular", "circle":
		return section.NewCircular(height), nil
	case "ibeam", "i-beam":
		return section.NewIBeam(flangeWidth, height, flangeThickness, webThickness), nil
	}
	return section.Descriptor{}, fmt.Errorf("unknown section shape %q (want rectangular, circular or ibeam)", shape)
}

// parseLoads turns the repeated load flags into a load list
func parseLoads(points, udls, tris, moments []string) ([]beam.Load, error) {
	var loads []beam.Load

	for _, s := range points {
		f, err := splitFloats(s, 2, "--point x:P")
		if err != nil {
			return nil, err
		}
		loads = append(loads, beam.NewPointLoad(f[0], f[1]))
	}
	for _, s := range udls {
		f, err := splitFloats(s, 3, "--udl x1:x2:w")
		if err != nil {
			return nil, err
		}
		loads = append(loads, beam.NewUniformLoad(f[0], f[1], f[2]))
	}
	for _, s := range tris {
		parts := strings.Split(s, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid --tri %q (want x1:x2:q:side)", s)
		}
		f, err := splitFloats(strings.Join(parts[:3], ":"), 3, "--tri x1:x2:q:side")
		if err != nil {
			return nil, err
		}
		var side beam.PeakSide
		switch strings.ToLower(parts[3]) {
		case "left":
			side = beam.PeakLeft
		case "right":
			side = beam.PeakRight
		default:
			return nil, fmt.Errorf("invalid --tri peak side %q (want left or right)", parts[3])
		}
		loads = append(loads, beam.NewTriangularLoad(f[0], f[1], f[2], side))
	}
	for _, s := range moments {
		f, err := splitFloats(s, 2, "--moment x:M")
		if err != nil {
			return nil, err
		}
		loads = append(loads, beam.NewAppliedMoment(f[0], f[1]))
	}

	for _, l := range loads {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return loads, nil
}

func splitFloats(s string, n int, usage string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid load flag %q (want %s)", s, usage)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %s: %v", p, usage, err)
		}
		out[i] = v
	}
	return out, nil
}
