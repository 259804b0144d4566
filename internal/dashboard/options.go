package dashboard

import (
	"log/slog"
	"time"

	"github.com/garrettladley/cogdash/internal/history"
)

type Option func(*Manager)

// WithTimer replaces the auto-refresh timer. Defaults to a fresh poll.Timer.
func WithTimer(t Timer) Option {
	return func(m *Manager) { m.timer = t }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithHistory records every usable snapshot in store and keeps the newest size
// entries in State.Trend.
func WithHistory(store history.Store, size int) Option {
	return func(m *Manager) {
		m.history = store
		if size > 0 {
			m.trendSize = size
		}
	}
}

// WithOnChange registers fn to receive a copy of the state after every change.
// Calls are serialized and arrive in the order the changes were made.
func WithOnChange(fn func(State)) Option {
	return func(m *Manager) { m.onChange = fn }
}

// WithRequestTimeout bounds each metrics fetch. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(m *Manager) { m.requestTimeout = d }
}

// WithPipelineTimeout bounds a pipeline run separately from fetches. Zero
// disables the bound.
func WithPipelineTimeout(d time.Duration) Option {
	return func(m *Manager) { m.pipelineTimeout = d }
}
