package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/bearing"
	"github.com/alexiusacademia/gobeam/internal/section"
)

func solvedBeam() (beam.Config, []beam.Load, beam.Reactions) {
	cfg := beam.Config{
		Length:   8,
		Boundary: beam.SimplySupported,
		Elastic:  200e9,
		Yield:    250e6,
		Section:  section.NewRectangular(0.2, 0.5),
	}
	loads := beam.SingleLoad(-50000, 4).Resolve(cfg.Length)
	return cfg, loads, beam.SolveReactions(cfg, loads)
}

func TestAsciiDiagramsCarryCaptions(t *testing.T) {
	cfg, loads, r := solvedBeam()
	d := beam.SweepDiagrams(cfg, loads, r, 400)

	shear := ShearDiagram(d, 60, 10)
	if !strings.Contains(shear, "Shear V(x)") {
		t.Error("shear chart missing its caption")
	}
	moment := MomentDiagram(d, 60, 10)
	if !strings.Contains(moment, "Bending Moment M(x)") {
		t.Error("moment chart missing its caption")
	}
}

func TestDownsample(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i)
	}
	out := downsample(data, 60)
	if len(out) != 60 {
		t.Fatalf("downsampled length = %d, want 60", len(out))
	}
	if out[0] != 0 || out[59] != 999 {
		t.Errorf("endpoints not preserved: %g, %g", out[0], out[59])
	}

	short := []float64{1, 2, 3}
	if got := downsample(short, 60); len(got) != 3 {
		t.Errorf("short series resampled to %d points", len(got))
	}
}

func TestBeamSketchMarkers(t *testing.T) {
	cfg, loads, _ := solvedBeam()
	sketch := BeamSketch(cfg, loads)
	if !strings.Contains(sketch, "▼") {
		t.Error("point load marker missing")
	}
	if strings.Count(sketch, "△") != 2 {
		t.Error("expected two support markers")
	}
	if !strings.Contains(sketch, "L = 8 m") {
		t.Error("span label missing")
	}

	cant := beam.Config{Length: 5, Boundary: beam.Cantilever, Elastic: 1,
		Section: section.NewRectangular(1, 1)}
	cantLoads := beam.ExplicitLoads([]beam.Load{
		beam.NewUniformLoad(1, 4, -200),
		beam.NewAppliedMoment(2, 500),
	}).Resolve(cant.Length)
	sketch = BeamSketch(cant, cantLoads)
	if !strings.Contains(sketch, "█") {
		t.Error("cantilever wall marker missing")
	}
	if !strings.Contains(sketch, "▒") {
		t.Error("distributed load span missing")
	}
	if !strings.Contains(sketch, "↻") {
		t.Error("applied moment marker missing")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULTS", []string{"Max stress: 12 MPa", "SF: 20.8"})
	for _, want := range []string{"RESULTS", "Max stress: 12 MPa", "╔", "╚"} {
		if !strings.Contains(box, want) {
			t.Errorf("summary box missing %q", want)
		}
	}
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	for i := 1; i < len(lines); i++ {
		if len([]rune(lines[i])) != len([]rune(lines[0])) {
			t.Errorf("ragged box: line %d width %d, want %d",
				i, len([]rune(lines[i])), len([]rune(lines[0])))
		}
	}
}

func TestBearingStressPointsCoverLoadedBalls(t *testing.T) {
	elements := bearing.Distribute(bearing.Config{
		OuterRadius: 100, InnerRadius: 60, BallCount: 12, RadialLoad: 5000,
	})
	pts := bearingStressPoints(elements, 4)

	loaded := 0
	var maxContact float64
	for _, e := range elements {
		if e.Load > 0 {
			loaded++
			if e.ContactStress > maxContact {
				maxContact = e.ContactStress
			}
		}
	}
	perBall := 1 + 4*8 // center plus rings×spokes at resolution 4
	if len(pts) != loaded*perBall {
		t.Fatalf("stress point count = %d, want %d loaded balls × %d points",
			len(pts), loaded, perBall)
	}
	for _, p := range pts {
		if p.Z <= 0 || p.Z > maxContact+1e-9 {
			t.Errorf("stress %g outside (0, %g]", p.Z, maxContact)
		}
		// Every sample stays inside the raceway annulus
		if d := math.Hypot(p.X, p.Y); d < 60-1e-9 || d > 100+1e-9 {
			t.Errorf("point (%g, %g) outside the raceway annulus", p.X, p.Y)
		}
	}
}

func TestImageExports(t *testing.T) {
	cfg, loads, r := solvedBeam()
	d := beam.SweepDiagrams(cfg, loads, r, 100)
	dir := t.TempDir()

	checks := []struct {
		name string
		run  func(path string) error
	}{
		{"diagram.png", func(p string) error { return ExportShearMomentDiagram(d, p) }},
		{"diagram.svg", func(p string) error { return ExportShearMomentDiagram(d, p) }},
		{"shape.png", func(p string) error {
			mesh := beam.SolveField(cfg, beam.FieldRequest{Magnitude: -50000, Position: 4, NX: 40, NY: 4, Scale: 500})
			return ExportDeflectedShape(mesh, p)
		}},
		{"bearing.png", func(p string) error {
			elements := bearing.Distribute(bearing.Config{
				OuterRadius: 100, InnerRadius: 60, BallCount: 12, RadialLoad: 5000,
			})
			return ExportBearingDiagram(elements, p)
		}},
	}
	for _, c := range checks {
		path := filepath.Join(dir, c.name)
		if err := c.run(path); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s not written: %v", c.name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", c.name)
		}
	}
}
