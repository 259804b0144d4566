// Package history keeps a bounded trail of metric snapshots so the dashboard can
// show how the scores move between refreshes.
package history

import (
	"context"
	"time"

	"github.com/garrettladley/cogdash/internal/client/insight"
)

// Entry is the persisted subset of a usable snapshot. Nil fields were unknown.
type Entry struct {
	RecordedAt        time.Time `json:"recorded_at"`
	FocusQuality      *float64  `json:"fqs,omitempty"`
	ContextSwitchCost *float64  `json:"csc,omitempty"`
	SwitchingRate     *float64  `json:"switching_rate,omitempty"`
	BurnoutScore      *float64  `json:"burnout_score,omitempty"`
	BurnoutLevel      string    `json:"burnout_level,omitempty"`
	TotalHours        *float64  `json:"total_hours,omitempty"`
}

type Store interface {
	Append(ctx context.Context, e Entry) error
	// Recent returns up to limit entries, oldest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

func FromSnapshot(s *insight.Snapshot, at time.Time) Entry {
	e := Entry{
		RecordedAt:        at.UTC(),
		FocusQuality:      clone(s.FocusQuality),
		ContextSwitchCost: clone(s.ContextSwitchCost),
		SwitchingRate:     clone(s.SwitchingRate),
		BurnoutScore:      clone(s.BurnoutScore),
		TotalHours:        clone(s.TotalHours),
	}
	if s.BurnoutLevel != nil {
		e.BurnoutLevel = *s.BurnoutLevel
	}
	return e
}

// FocusSeries extracts the known focus-quality values in order.
func FocusSeries(entries []Entry) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.FocusQuality != nil {
			out = append(out, *e.FocusQuality)
		}
	}
	return out
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
