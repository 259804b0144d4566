package dashboard

import (
	"slices"
	"time"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/history"
)

type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityDanger
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Message is the single user-facing notice. A new one always replaces the old.
type Message struct {
	Severity Severity
	Text     string
}

// State is a read-only copy of the dashboard as seen by the view.
type State struct {
	// Metrics is nil until the first successful fetch.
	Metrics         *insight.Snapshot
	FetchingMetrics bool
	PipelineRunning bool
	Message         *Message
	AutoRefresh     bool
	LastUpdated     time.Time
	// Trend holds recent usable snapshots, oldest first.
	Trend []history.Entry
}

// HasUsableData is false when nothing was fetched yet or the server reported an error
// instead of metrics.
func (s State) HasUsableData() bool {
	return s.Metrics.Usable()
}

// Busy reports whether any remote operation is in flight.
func (s State) Busy() bool {
	return s.FetchingMetrics || s.PipelineRunning
}

func (s State) clone() State {
	c := s
	if s.Message != nil {
		m := *s.Message
		c.Message = &m
	}
	c.Trend = slices.Clone(s.Trend)
	return c
}
