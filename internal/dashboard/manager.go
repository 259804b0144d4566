// Package dashboard sequences metric fetches, pipeline runs and auto-refresh into a
// single state that a view can render.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/history"
	"github.com/garrettladley/cogdash/internal/poll"
	"github.com/garrettladley/cogdash/internal/xslog"
)

const (
	AutoRefreshInterval   = 60 * time.Second
	RefetchDelay          = time.Second
	DefaultRequestTimeout = 30 * time.Second
	// DefaultPipelineTimeout is generous: the service runs every pipeline step
	// before it answers.
	DefaultPipelineTimeout = 10 * time.Minute
	defaultTrendSize       = 30
)

const (
	opFetch = "fetch"
	opRun   = "run"
)

// Client is the subset of insight.Client the manager drives.
type Client interface {
	Metrics(ctx context.Context) (*insight.Snapshot, error)
	RunPipeline(ctx context.Context) (*insight.PipelineOutcome, error)
}

type Timer interface {
	Start(interval time.Duration, fn func()) (poll.Handle, error)
	Stop(h poll.Handle)
}

// Manager owns the dashboard state. All methods are safe for concurrent use.
// Concurrent calls of the same operation share one remote call; fetch and run
// are independent and the last to finish wins.
type Manager struct {
	client          Client
	timer           Timer
	history         history.Store
	trendSize       int
	logger          *slog.Logger
	onChange        func(State)
	requestTimeout  time.Duration
	pipelineTimeout time.Duration
	refetchDelay    time.Duration
	now             func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	state   State
	handle  poll.Handle
	alive   bool
	mounted bool

	// notifyMu keeps change notifications in mutation order.
	notifyMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(client Client, opts ...Option) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		client:          client,
		timer:           poll.New(),
		trendSize:       defaultTrendSize,
		logger:          slog.Default(),
		requestTimeout:  DefaultRequestTimeout,
		pipelineTimeout: DefaultPipelineTimeout,
		refetchDelay:    RefetchDelay,
		now:             time.Now,
		alive:           true,
		ctx:             ctx,
		cancel:          cancel,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Mount loads the stored trend and issues the initial fetch in the background.
// Only the first call has any effect.
func (m *Manager) Mount() {
	if !m.track(func() bool {
		if m.mounted {
			return false
		}
		m.mounted = true
		return true
	}) {
		return
	}

	go func() {
		defer m.wg.Done()
		if trend := m.loadTrend(m.ctx); trend != nil {
			m.update(func(s *State) { s.Trend = trend })
		}
		m.FetchMetrics(m.ctx)
	}()
}

// FetchMetrics refreshes the snapshot. A failure keeps the previous snapshot.
func (m *Manager) FetchMetrics(ctx context.Context) {
	_, _, _ = m.group.Do(opFetch, func() (any, error) {
		m.fetchMetrics(xslog.WithAttrs(ctx, m.logger, xslog.Operation(opFetch)))
		return nil, nil
	})
}

func (m *Manager) fetchMetrics(ctx context.Context) {
	if !m.update(func(s *State) { s.FetchingMetrics = true }) {
		return
	}
	defer m.update(func(s *State) { s.FetchingMetrics = false })

	rctx, cancel := m.requestContext(ctx, m.requestTimeout)
	defer cancel()

	start := time.Now()
	snapshot, err := m.client.Metrics(rctx)
	if err != nil {
		m.log(ctx).WarnContext(ctx, "fetching metrics failed", xslog.Error(err), xslog.Duration(time.Since(start)))
		m.update(func(s *State) {
			s.Message = &Message{Severity: SeverityDanger, Text: "Failed to fetch metrics: " + err.Error()}
		})
		return
	}

	trend := m.record(rctx, snapshot)

	m.update(func(s *State) {
		s.Metrics = snapshot
		s.LastUpdated = m.now()
		if trend != nil {
			s.Trend = trend
		}
		s.Message = &Message{Severity: SeveritySuccess, Text: "Metrics refreshed"}
	})
	m.log(ctx).DebugContext(ctx, "metrics fetched", xslog.Duration(time.Since(start)))
}

// RunPipeline triggers the server-side pipeline. A successful run schedules one
// metrics fetch after a short quiet period so the server can publish its output.
func (m *Manager) RunPipeline(ctx context.Context) {
	_, _, _ = m.group.Do(opRun, func() (any, error) {
		m.runPipeline(xslog.WithAttrs(ctx, m.logger, xslog.Operation(opRun)))
		return nil, nil
	})
}

func (m *Manager) runPipeline(ctx context.Context) {
	if !m.update(func(s *State) {
		s.PipelineRunning = true
		s.Message = &Message{Severity: SeverityInfo, Text: "Running analysis pipeline..."}
	}) {
		return
	}
	defer m.update(func(s *State) { s.PipelineRunning = false })

	rctx, cancel := m.requestContext(ctx, m.pipelineTimeout)
	defer cancel()

	start := time.Now()
	outcome, err := m.client.RunPipeline(rctx)
	switch {
	case err != nil:
		m.log(ctx).WarnContext(ctx, "pipeline request failed", xslog.Error(err), xslog.Duration(time.Since(start)))
		m.update(func(s *State) {
			s.Message = &Message{Severity: SeverityDanger, Text: "Pipeline failed: " + err.Error()}
		})
	case !outcome.Succeeded:
		m.log(ctx).WarnContext(ctx, "pipeline did not succeed", xslog.PipelineStatus(outcome.Status), xslog.Duration(time.Since(start)))
		text := outcome.Status
		if text == "" {
			text = "pipeline returned no status"
		}
		m.update(func(s *State) {
			s.Message = &Message{Severity: SeverityWarning, Text: text}
		})
	default:
		m.log(ctx).InfoContext(ctx, "pipeline succeeded", xslog.PipelineStatus(outcome.Status), xslog.Duration(time.Since(start)))
		if m.update(func(s *State) {
			s.Message = &Message{Severity: SeveritySuccess, Text: outcome.Status}
		}) {
			m.scheduleRefetch()
		}
	}
}

func (m *Manager) scheduleRefetch() {
	if !m.track(func() bool { return true }) {
		return
	}

	go func() {
		defer m.wg.Done()

		t := time.NewTimer(m.refetchDelay)
		defer t.Stop()

		select {
		case <-m.ctx.Done():
			return
		case <-t.C:
		}
		if !m.isAlive() {
			return
		}
		m.FetchMetrics(m.ctx)
	}()
}

// ToggleAutoRefresh flips auto-refresh. While enabled, the pipeline runs every
// AutoRefreshInterval. Callers should not toggle while a run is in flight.
func (m *Manager) ToggleAutoRefresh() {
	m.update(func(s *State) {
		if s.AutoRefresh {
			m.timer.Stop(m.handle)
			m.handle = 0
			s.AutoRefresh = false
			s.Message = &Message{Severity: SeverityInfo, Text: "Auto-refresh disabled"}
			m.logger.Info("auto-refresh disabled")
			return
		}

		h, err := m.timer.Start(AutoRefreshInterval, m.tick)
		if err != nil {
			m.logger.Error("starting auto-refresh failed", xslog.Error(err))
			s.Message = &Message{Severity: SeverityDanger, Text: "Could not enable auto-refresh: " + err.Error()}
			return
		}
		m.handle = h
		s.AutoRefresh = true
		s.Message = &Message{Severity: SeverityInfo, Text: "Auto-refresh enabled (every 60s)"}
		m.logger.Info("auto-refresh enabled", xslog.Interval(AutoRefreshInterval))
	})
}

func (m *Manager) tick() {
	if !m.isAlive() {
		return
	}
	m.RunPipeline(m.ctx)
}

func (m *Manager) DismissMessage() {
	m.update(func(s *State) {
		if s.Message != nil {
			m.logger.Debug("message dismissed", xslog.Severity(s.Message.Severity))
		}
		s.Message = nil
	})
}

// Teardown stops auto-refresh, cancels in-flight work and waits for background
// tasks. After it returns the manager ignores every call. Repeated calls are no-ops.
// The history store is left open for its owner to close.
func (m *Manager) Teardown() {
	m.mu.Lock()
	if !m.alive {
		m.mu.Unlock()
		return
	}
	m.alive = false
	if m.handle != 0 {
		m.timer.Stop(m.handle)
		m.handle = 0
	}
	m.state.AutoRefresh = false
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()

	m.logger.Debug("dashboard torn down")
}

// update applies fn under the lock and publishes the result. It reports false
// without calling fn once the manager is torn down.
func (m *Manager) update(fn func(*State)) bool {
	m.mu.Lock()
	if !m.alive {
		m.mu.Unlock()
		return false
	}
	fn(&m.state)
	if m.onChange == nil {
		m.mu.Unlock()
		return true
	}
	s := m.state.clone()
	m.notifyMu.Lock()
	m.mu.Unlock()

	defer m.notifyMu.Unlock()
	m.onChange(s)
	return true
}

// track registers a background task if the manager is alive and cond holds.
func (m *Manager) track(cond func() bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.alive || !cond() {
		return false
	}
	m.wg.Add(1)
	return true
}

func (m *Manager) isAlive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alive
}

// requestContext bounds one remote call by timeout and by the manager's lifetime.
func (m *Manager) requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	stop := context.AfterFunc(m.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (m *Manager) record(ctx context.Context, snapshot *insight.Snapshot) []history.Entry {
	if m.history == nil || !snapshot.Usable() {
		return nil
	}
	if err := m.history.Append(ctx, history.FromSnapshot(snapshot, m.now())); err != nil {
		m.log(ctx).ErrorContext(ctx, "recording snapshot failed", xslog.Error(err))
		return nil
	}
	return m.loadTrend(ctx)
}

func (m *Manager) loadTrend(ctx context.Context) []history.Entry {
	if m.history == nil {
		return nil
	}
	trend, err := m.history.Recent(ctx, m.trendSize)
	if err != nil {
		m.log(ctx).ErrorContext(ctx, "loading trend failed", xslog.Error(err))
		return nil
	}
	m.log(ctx).DebugContext(ctx, "trend loaded", xslog.Count(len(trend)))
	return trend
}

// log returns the logger carried by ctx, falling back to the manager's own.
func (m *Manager) log(ctx context.Context) *slog.Logger {
	return xslog.FromContext(ctx, m.logger)
}
