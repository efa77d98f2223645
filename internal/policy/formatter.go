package policy

import (
	"fmt"
	"strconv"

	"github.com/aymanrg/telemetrylogd/internal/record"
)

// Format parses raw as a float and classifies it against p, returning a
// Record and ok=true. A sample that does not parse as a float is discarded
// silently (ok=false) — malformed input is not an error worth reporting
// upstream, by design.
func Format(p Policy, raw string) (record.Record, bool) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return record.Record{}, false
	}

	sev := p.Infer(value)
	appName := string(p.Context)
	return record.New(appName, appName, describe(value, p.Unit, sev), sev), true
}

// describe renders the classification message using the mandated template:
//
//	Critical: <value><unit>
//	Warning: <value><unit>
//	Normal: <value><unit>
func describe(value float64, unit string, sev record.Severity) string {
	valueStr := fmt.Sprintf("%g", value)
	switch sev {
	case record.Critical:
		return "Critical: " + valueStr + unit
	case record.Warning:
		return "Warning: " + valueStr + unit
	default:
		return "Normal: " + valueStr + unit
	}
}
