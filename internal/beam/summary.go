package beam

import "math"

// ServiceabilityRatio is the span fraction used as the deflection
// serviceability limit (span/360).
const ServiceabilityRatio = 360.0

// Summary aggregates the global statistics consumed by reporting:
// stress and deflection extrema, the yield safety factor, and the
// span/360 serviceability check.
type Summary struct {
	MaxStress       float64 // max |σ| (Pa)
	MaxDeflection   float64 // max |v| (m)
	SafetyFactor    float64 // σy / max(1, |σ|max)
	DeflectionLimit float64 // span/ServiceabilityRatio (m)
	DeflectionOK    bool
}

// Summarize derives the reporting statistics for a solved field mesh.
// The safety-factor denominator is clamped to 1 so the ratio stays
// defined for unloaded configurations; this is a display convention,
// not a physical claim.
func Summarize(cfg Config, mesh Mesh) Summary {
	limit := cfg.Length / ServiceabilityRatio
	return Summary{
		MaxStress:       mesh.MaxStress,
		MaxDeflection:   mesh.MaxDeflection,
		SafetyFactor:    cfg.Yield / math.Max(1, mesh.MaxStress),
		DeflectionLimit: limit,
		DeflectionOK:    mesh.MaxDeflection <= limit,
	}
}
