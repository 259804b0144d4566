// Package dashboardtest provides fakes for driving a dashboard.Manager in tests.
package dashboardtest

import (
	"context"
	"sync"
	"time"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/poll"
)

// FakeClient counts calls and delegates to the configured funcs. A nil func
// answers with an empty snapshot or a successful run.
type FakeClient struct {
	mu            sync.Mutex
	metrics       func(context.Context) (*insight.Snapshot, error)
	pipeline      func(context.Context) (*insight.PipelineOutcome, error)
	metricsCalls  int
	pipelineCalls int
}

func (f *FakeClient) OnMetrics(fn func(context.Context) (*insight.Snapshot, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metrics = fn
}

func (f *FakeClient) OnPipeline(fn func(context.Context) (*insight.PipelineOutcome, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pipeline = fn
}

// ReturnSnapshot makes every Metrics call return s.
func (f *FakeClient) ReturnSnapshot(s *insight.Snapshot) {
	f.OnMetrics(func(context.Context) (*insight.Snapshot, error) { return s, nil })
}

// ReturnStatus makes every RunPipeline call report status.
func (f *FakeClient) ReturnStatus(status string) {
	f.OnPipeline(func(context.Context) (*insight.PipelineOutcome, error) {
		return &insight.PipelineOutcome{Succeeded: insight.IsSuccessStatus(status), Status: status}, nil
	})
}

func (f *FakeClient) Metrics(ctx context.Context) (*insight.Snapshot, error) {
	f.mu.Lock()
	f.metricsCalls++
	fn := f.metrics
	f.mu.Unlock()

	if fn == nil {
		return &insight.Snapshot{}, nil
	}
	return fn(ctx)
}

func (f *FakeClient) RunPipeline(ctx context.Context) (*insight.PipelineOutcome, error) {
	f.mu.Lock()
	f.pipelineCalls++
	fn := f.pipeline
	f.mu.Unlock()

	if fn == nil {
		return &insight.PipelineOutcome{Succeeded: true, Status: insight.SuccessMarker}, nil
	}
	return fn(ctx)
}

func (f *FakeClient) MetricsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metricsCalls
}

func (f *FakeClient) PipelineCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pipelineCalls
}

// FakeTimer never ticks on its own. Fire invokes the active callback.
type FakeTimer struct {
	mu       sync.Mutex
	last     poll.Handle
	active   poll.Handle
	fn       func()
	interval time.Duration
	stops    int
}

func (t *FakeTimer) Start(interval time.Duration, fn func()) (poll.Handle, error) {
	if interval <= 0 {
		return 0, poll.ErrInterval
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != 0 {
		return 0, poll.ErrRunning
	}
	t.last++
	t.active = t.last
	t.fn = fn
	t.interval = interval
	return t.active, nil
}

func (t *FakeTimer) Stop(h poll.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h == 0 || h != t.active {
		return
	}
	t.active = 0
	t.fn = nil
	t.stops++
}

// Fire runs the active callback on the calling goroutine. It reports false when
// no timer is active.
func (t *FakeTimer) Fire() bool {
	t.mu.Lock()
	fn := t.fn
	t.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

func (t *FakeTimer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active != 0
}

func (t *FakeTimer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

func (t *FakeTimer) Stops() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stops
}
