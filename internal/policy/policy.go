// Package policy holds the per-metric threshold descriptors and the
// Formatter that turns a raw telemetry sample into a classified record.
package policy

import "github.com/aymanrg/telemetrylogd/internal/record"

// Tag names the metric kind a Policy classifies. It is the textual form
// rendered into a Record's app_name and context fields.
type Tag string

const (
	CPU Tag = "CPU"
	RAM Tag = "RAM"
	GPU Tag = "GPU"
)

// Policy is a static, value-typed descriptor: one instance per metric kind
// is known at startup, never constructed with runtime identity.
type Policy struct {
	Context Tag
	Unit    string
	Warn    float64
	Crit    float64
}

// Infer classifies value against the policy's thresholds. Thresholds are
// inclusive on the high side, half-open below:
//
//	Critical ↔ value >= Crit
//	Warning  ↔ Warn <= value < Crit
//	Info     ↔ value < Warn
func (p Policy) Infer(value float64) record.Severity {
	switch {
	case value >= p.Crit:
		return record.Critical
	case value >= p.Warn:
		return record.Warning
	default:
		return record.Info
	}
}

// CPUPolicy, RAMPolicy and GPUPolicy are the three metric kinds the system
// ships with. GPU mirrors the original implementation's third policy, which
// spec.md's concrete scenarios omit but the config's policy enum names.
var (
	CPUPolicy = Policy{Context: CPU, Unit: "%", Warn: 70, Crit: 85}
	RAMPolicy = Policy{Context: RAM, Unit: "%", Warn: 75.5, Crit: 90.0}
	GPUPolicy = Policy{Context: GPU, Unit: "%", Warn: 80, Crit: 95}
)

// ByName resolves a config policy tag ("cpu", "ram", "gpu") to its static
// Policy value. An unrecognized name reports ok=false, mirroring the
// original's behavior where an unmatched policy string produces no
// formatter at all for that source.
func ByName(name string) (Policy, bool) {
	switch name {
	case "cpu":
		return CPUPolicy, true
	case "ram":
		return RAMPolicy, true
	case "gpu":
		return GPUPolicy, true
	default:
		return Policy{}, false
	}
}
