package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// ShearDiagram renders V(x) as a terminal chart
func ShearDiagram(d beam.Diagrams, width, height int) string {
	return asciigraph.Plot(downsample(d.V, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("Shear V(x), N"))
}

// MomentDiagram renders M(x) as a terminal chart
func MomentDiagram(d beam.Diagrams, width, height int) string {
	return asciigraph.Plot(downsample(d.M, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("Bending Moment M(x), N·m"))
}

// downsample thins a series to roughly the chart width so long sweeps
// stay readable in a terminal
func downsample(data []float64, width int) []float64 {
	if width < 2 || len(data) <= width {
		return data
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		out[i] = data[i*(len(data)-1)/(width-1)]
	}
	return out
}

// BeamSketch draws an ASCII elevation of the beam with its supports and
// load positions marked.
func BeamSketch(cfg beam.Config, loads []beam.Load) string {
	const widthChars = 61
	pos := func(x float64) int {
		p := int(x / cfg.Length * float64(widthChars-1))
		if p < 0 {
			p = 0
		}
		if p > widthChars-1 {
			p = widthChars - 1
		}
		return p
	}

	arrows := []rune(strings.Repeat(" ", widthChars))
	spans := []rune(strings.Repeat(" ", widthChars))
	for _, l := range loads {
		switch l.Kind {
		case beam.PointLoad:
			arrows[pos(l.X)] = '▼'
		case beam.AppliedMoment:
			arrows[pos(l.X)] = '↻'
		default:
			for i := pos(l.X1); i <= pos(l.X2); i++ {
				spans[i] = '▒'
			}
		}
	}

	supports := []rune(strings.Repeat(" ", widthChars))
	supA, supB := cfg.Supports()
	if cfg.Boundary == beam.Cantilever {
		supports[0] = '█'
	} else {
		supports[pos(supA)] = '△'
		supports[pos(supB)] = '△'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  " + string(spans) + "\n")
	sb.WriteString("  " + string(arrows) + "\n")
	sb.WriteString("  " + strings.Repeat("═", widthChars) + "\n")
	sb.WriteString("  " + string(supports) + "\n")
	sb.WriteString(fmt.Sprintf("  0%*s\n", widthChars-1, fmt.Sprintf("L = %g m", cfg.Length)))
	return sb.String()
}

// DrawSummaryBox frames a titled list of result lines
func DrawSummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}
