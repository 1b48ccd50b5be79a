package beam

// Reactions is the support reaction set balancing a load case.
type Reactions struct {
	A float64 // vertical reaction at support A (N, positive up)
	B float64 // vertical reaction at support B (N); zero for cantilevers

	// MomentA is the fixed-end reaction moment (N·m), cantilever only
	MomentA float64

	// Degenerate marks a configuration with coincident supports that
	// was solved with a substituted unit span. The numbers are defined
	// but physically meaningless.
	Degenerate bool
}

// SolveReactions solves static equilibrium (ΣFy=0, ΣM=0) for the beam
// under the given resolved load list. Moments are taken about support A.
func SolveReactions(cfg Config, loads []Load) Reactions {
	supA, supB := cfg.Supports()

	var sumF, sumM float64
	for _, l := range loads {
		f := l.Force()
		sumF += f
		sumM += f * (l.Centroid() - supA)
		if l.Kind == AppliedMoment {
			sumM += l.Magnitude
		}
	}

	if cfg.Boundary == Cantilever {
		// Statically determinate by inspection: the wall carries
		// everything.
		return Reactions{A: -sumF, MomentA: -sumM}
	}

	span := supB - supA
	degenerate := false
	if span == 0 {
		span = 1
		degenerate = true
	}
	rb := -sumM / span
	ra := -sumF - rb
	return Reactions{A: ra, B: rb, Degenerate: degenerate}
}

// Residual sums vertical forces and moments about an arbitrary pivot
// for the load set together with the solved reactions. Both sums vanish
// (to floating point) for a valid solution, regardless of pivot.
func Residual(cfg Config, loads []Load, r Reactions, pivot float64) (sumF, sumM float64) {
	supA, supB := cfg.Supports()

	for _, l := range loads {
		f := l.Force()
		sumF += f
		sumM += f * (l.Centroid() - pivot)
		if l.Kind == AppliedMoment {
			sumM += l.Magnitude
		}
	}

	sumF += r.A
	sumM += r.A * (supA - pivot)
	sumM += r.MomentA
	if cfg.Boundary != Cantilever {
		sumF += r.B
		sumM += r.B * (supB - pivot)
	}
	return sumF, sumM
}
