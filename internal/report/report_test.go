package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/bearing"
	"github.com/alexiusacademia/gobeam/internal/section"
)

func solvedBeam() (beam.Config, []beam.Load, beam.Reactions, []beam.Segment, beam.Summary) {
	cfg := beam.Config{
		Length:   8,
		Boundary: beam.SimplySupported,
		Elastic:  200e9,
		Yield:    250e6,
		Section:  section.NewRectangular(0.2, 0.5),
	}
	loads := beam.SingleLoad(-50000, 4).Resolve(cfg.Length)
	r := beam.SolveReactions(cfg, loads)
	segs := beam.BuildSegments(cfg, loads, r)
	mesh := beam.SolveField(cfg, beam.FieldRequest{Magnitude: -50000, Position: 4, NX: 40, NY: 4, Scale: 1})
	return cfg, loads, r, segs, beam.Summarize(cfg, mesh)
}

func assertWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file %s is empty", path)
	}
}

func TestWritePDF(t *testing.T) {
	cfg, loads, r, segs, summary := solvedBeam()
	path := filepath.Join(t.TempDir(), "beam.pdf")
	err := WritePDF(BeamReport{
		Config:    cfg,
		Loads:     loads,
		Reactions: r,
		Summary:   summary,
		Segments:  segs,
	}, path)
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	assertWritten(t, path)
}

func TestWriteDiagramsXLSX(t *testing.T) {
	cfg, loads, r, segs, _ := solvedBeam()
	d := beam.SweepDiagrams(cfg, loads, r, 50)
	path := filepath.Join(t.TempDir(), "diagrams.xlsx")
	if err := WriteDiagramsXLSX(d, segs, path); err != nil {
		t.Fatalf("WriteDiagramsXLSX: %v", err)
	}
	assertWritten(t, path)
}

func TestWriteBearingXLSX(t *testing.T) {
	elements := bearing.Distribute(bearing.Config{
		OuterRadius: 100, InnerRadius: 60, BallCount: 12, RadialLoad: 5000,
	})
	path := filepath.Join(t.TempDir(), "bearing.xlsx")
	if err := WriteBearingXLSX(elements, path); err != nil {
		t.Fatalf("WriteBearingXLSX: %v", err)
	}
	assertWritten(t, path)
}

func TestDescribeLoad(t *testing.T) {
	cases := []struct {
		load beam.Load
		want string
	}{
		{beam.NewPointLoad(4, -50000), "point -50000 N at x = 4 m"},
		{beam.NewUniformLoad(3, 7, -500), "uniform -500 N/m over [3, 7] m"},
		{beam.NewAppliedMoment(5, 2000), "moment 2000 N-m at x = 5 m"},
	}
	for _, tc := range cases {
		if got := describeLoad(tc.load); got != tc.want {
			t.Errorf("describeLoad = %q, want %q", got, tc.want)
		}
	}
}
