package cmd

import (
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/section"
)

func TestParseBoundary(t *testing.T) {
	cases := []struct {
		in   string
		want beam.BoundaryCondition
	}{
		{"cantilever", beam.Cantilever},
		{"simply", beam.SimplySupported},
		{"Simply-Supported", beam.SimplySupported},
		{"overhanging", beam.Overhanging},
	}
	for _, tc := range cases {
		got, err := parseBoundary(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("parseBoundary(%q) = %q, %v", tc.in, got, err)
		}
	}
	if _, err := parseBoundary("fixed-fixed"); err == nil {
		t.Error("unknown boundary condition accepted")
	}
}

func TestParseSection(t *testing.T) {
	sec, err := parseSection("rect", 0.2, 0.5, 0, 0, 0)
	if err != nil || sec.Shape != section.Rectangular {
		t.Fatalf("parseSection(rect) = %v, %v", sec.Shape, err)
	}
	sec, err = parseSection("circle", 0, 0.1, 0, 0, 0)
	if err != nil || sec.Shape != section.Circular {
		t.Fatalf("parseSection(circle) = %v, %v", sec.Shape, err)
	}
	sec, err = parseSection("i-beam", 0, 0.4, 0.2, 0.02, 0.01)
	if err != nil || sec.Shape != section.IBeam {
		t.Fatalf("parseSection(i-beam) = %v, %v", sec.Shape, err)
	}
	if _, err = parseSection("tee", 0, 0.4, 0, 0, 0); err == nil {
		t.Error("unknown shape accepted")
	}
}

func TestParseLoads(t *testing.T) {
	loads, err := parseLoads(
		[]string{"4:-50000"},
		[]string{"3:7:-500"},
		[]string{"6:9:-800:left"},
		[]string{"5:2000"},
	)
	if err != nil {
		t.Fatalf("parseLoads: %v", err)
	}
	if len(loads) != 4 {
		t.Fatalf("load count = %d, want 4", len(loads))
	}
	if loads[0].Kind != beam.PointLoad || loads[0].X != 4 || loads[0].Magnitude != -50000 {
		t.Errorf("point load parsed as %+v", loads[0])
	}
	if loads[1].Kind != beam.UniformLoad || loads[1].X1 != 3 || loads[1].X2 != 7 {
		t.Errorf("uniform load parsed as %+v", loads[1])
	}
	if loads[2].Kind != beam.TriangularLoad || loads[2].Peak != beam.PeakLeft {
		t.Errorf("triangular load parsed as %+v", loads[2])
	}
	if loads[3].Kind != beam.AppliedMoment || loads[3].Magnitude != 2000 {
		t.Errorf("applied moment parsed as %+v", loads[3])
	}
}

func TestParseLoadsRejectsMalformed(t *testing.T) {
	cases := []struct {
		points, udls, tris []string
	}{
		{points: []string{"4"}},
		{points: []string{"4:abc"}},
		{udls: []string{"3:7"}},
		{udls: []string{"7:3:-500"}}, // x1 >= x2
		{tris: []string{"6:9:-800"}},
		{tris: []string{"6:9:-800:middle"}},
	}
	for _, tc := range cases {
		if _, err := parseLoads(tc.points, tc.udls, tc.tris, nil); err == nil {
			t.Errorf("malformed flags %v/%v/%v accepted", tc.points, tc.udls, tc.tris)
		}
	}
}
