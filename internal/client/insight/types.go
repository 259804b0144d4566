package insight

import (
	"cmp"
	"maps"
	"slices"
)

// Snapshot is one reading of the precomputed metrics. A nil field means the server
// did not report it and must be shown as unknown, never as zero.
type Snapshot struct {
	FocusQuality      *float64 // percent, 0-100
	ContextSwitchCost *float64 // seconds per hour
	SwitchingRate     *float64 // switches per hour
	BurnoutScore      *float64 // 0-10
	BurnoutLevel      *string
	TotalHours        *float64
	HealthReport      map[string]any

	// Degraded is set when the server answered with an error payload instead of metrics.
	Degraded bool
	Reason   string
}

// Usable reports whether s holds real metrics.
func (s *Snapshot) Usable() bool {
	return s != nil && !s.Degraded
}

// Recommendations returns the string entries of the health report, sorted by key.
func (s *Snapshot) Recommendations() []Recommendation {
	if !s.Usable() {
		return nil
	}
	var out []Recommendation
	for _, key := range slices.Sorted(maps.Keys(s.HealthReport)) {
		if text, ok := s.HealthReport[key].(string); ok && text != "" {
			out = append(out, Recommendation{Key: key, Text: text})
		}
	}
	return out
}

type Recommendation struct {
	Key  string
	Text string
}

// SuccessMarker is embedded by the service in the status of a pipeline run that succeeded.
const SuccessMarker = "✅"

type PipelineOutcome struct {
	Succeeded bool
	Status    string
	Timestamp string
	Output    string
	Error     string
}

type HealthStatus struct {
	Status string `json:"status"`
}

type Breakdown struct {
	Categories   map[string]int
	Hourly       map[int]int
	TotalEntries int
	// Reason is set when the service had no classified data to break down.
	Reason string
}

type CategoryCount struct {
	Category string
	Count    int
}

// Ranked returns categories by descending count, ties broken by name.
func (b *Breakdown) Ranked() []CategoryCount {
	out := make([]CategoryCount, 0, len(b.Categories))
	for category, count := range b.Categories {
		out = append(out, CategoryCount{Category: category, Count: count})
	}
	slices.SortFunc(out, func(x, y CategoryCount) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Category, y.Category)
	})
	return out
}

type BurnoutFlag struct {
	Category     string `json:"category"`
	Severity     int    `json:"severity"`
	Message      string `json:"message"`
	Prescription string `json:"prescription"`
}
