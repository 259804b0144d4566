package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/dashboard"
	"github.com/garrettladley/cogdash/internal/tui/components/gauge"
	"github.com/garrettladley/cogdash/internal/tui/page/splash"
	"github.com/garrettladley/cogdash/internal/xslog"
)

type fakeController struct {
	mu    sync.Mutex
	state dashboard.State
	calls []string
}

func (f *fakeController) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeController) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeController) State() dashboard.State       { return f.state }
func (f *fakeController) Mount()                       { f.record("mount") }
func (f *fakeController) FetchMetrics(context.Context) { f.record("fetch") }
func (f *fakeController) RunPipeline(context.Context)  { f.record("run") }
func (f *fakeController) ToggleAutoRefresh()           { f.record("toggle") }
func (f *fakeController) DismissMessage()              { f.record("dismiss") }

type fakeReader struct {
	health      error
	flags       []insight.BurnoutFlag
	breakdown   *insight.Breakdown
	settings    *insight.Settings
	settingsErr error
	err         error
}

func (f *fakeReader) Health(context.Context) (*insight.HealthStatus, error) {
	if f.health != nil {
		return nil, f.health
	}
	return &insight.HealthStatus{Status: "ok"}, nil
}

func (f *fakeReader) Breakdown(context.Context) (*insight.Breakdown, error) {
	return f.breakdown, f.err
}

func (f *fakeReader) BurnoutFlags(context.Context) ([]insight.BurnoutFlag, error) {
	return f.flags, f.err
}

func (f *fakeReader) Settings(context.Context) (*insight.Settings, error) {
	return f.settings, f.settingsErr
}

func newTestModel(c *fakeController, r *fakeReader) *Model {
	m := New(Deps{Ctx: context.Background(), Logger: xslog.Discard(), Dashboard: c, Insight: r})
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	m.Update(splash.TickMsg{})
	return &m
}

func press(key string) tea.KeyPressMsg {
	switch key {
	case keyEscape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keyCtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

// run executes cmd and any commands it batches.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		state     dashboard.State
		keys      []string
		wantCalls []string
	}{
		{
			name:      "refresh",
			keys:      []string{"r"},
			wantCalls: []string{"fetch"},
		},
		{
			name:      "run pipeline",
			keys:      []string{"p"},
			wantCalls: []string{"run"},
		},
		{
			name:      "run ignored while running",
			state:     dashboard.State{PipelineRunning: true},
			keys:      []string{"p"},
			wantCalls: nil,
		},
		{
			name:      "toggle auto-refresh",
			keys:      []string{"a"},
			wantCalls: []string{"toggle"},
		},
		{
			name:      "toggle ignored while running",
			state:     dashboard.State{PipelineRunning: true},
			keys:      []string{"a"},
			wantCalls: nil,
		},
		{
			name:      "refresh allowed while running",
			state:     dashboard.State{PipelineRunning: true},
			keys:      []string{"r"},
			wantCalls: []string{"fetch"},
		},
		{
			name:      "dismiss with message",
			state:     dashboard.State{Message: &dashboard.Message{Text: "hi"}},
			keys:      []string{"x", "esc"},
			wantCalls: []string{"dismiss", "dismiss"},
		},
		{
			name:      "dismiss without message",
			keys:      []string{"x"},
			wantCalls: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &fakeController{}
			m := newTestModel(c, &fakeReader{})
			m.Update(StateMsg{State: tt.state})

			for _, k := range tt.keys {
				_, cmd := m.Update(press(k))
				run(cmd)
			}

			if diff := cmp.Diff(tt.wantCalls, c.Calls()); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(&fakeController{}, &fakeReader{})
		_, cmd := m.Update(press(k))
		msgs := run(cmd)
		if len(msgs) != 1 {
			t.Fatalf("%s: got %d messages, want 1", k, len(msgs))
		}
		if _, ok := msgs[0].(tea.QuitMsg); !ok {
			t.Errorf("%s: got %T, want tea.QuitMsg", k, msgs[0])
		}
	}
}

func TestModel_InitMountsAndChecksHealth(t *testing.T) {
	t.Parallel()

	c := &fakeController{}
	m := New(Deps{Dashboard: c, Insight: &fakeReader{}, Logger: xslog.Discard()})

	// the splash tick sleeps; run only the immediate commands
	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init() did not return a batch")
	}
	var health *HealthMsg
	for _, cmd := range batch[1:] {
		if msg, ok := cmd().(HealthMsg); ok {
			health = &msg
		}
	}

	if diff := cmp.Diff([]string{"mount"}, c.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if health == nil || health.Err != nil {
		t.Fatalf("health = %+v, want a successful check", health)
	}

	m.Update(*health)
	if !m.state.connection.Online {
		t.Error("connection indicator should be online")
	}
}

func TestModel_HealthFailureShowsOffline(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeController{}, &fakeReader{})
	_, cmd := m.Update(HealthMsg{Err: errors.New("connection refused")})

	if !m.state.connection.Checked || m.state.connection.Online {
		t.Errorf("connection = %+v, want checked and offline", m.state.connection)
	}
	if cmd == nil {
		t.Error("expected the next health check to be scheduled")
	}
	if out := ansi.Strip(m.render()); !strings.Contains(out, "offline") {
		t.Error("view does not show the offline indicator")
	}
}

func TestModel_DetailsPage(t *testing.T) {
	t.Parallel()

	r := &fakeReader{
		flags: []insight.BurnoutFlag{{Category: "Overwork", Severity: 8, Message: "11h sessions"}},
		breakdown: &insight.Breakdown{
			Categories:   map[string]int{"Deep Work": 3},
			TotalEntries: 3,
		},
	}
	c := &fakeController{}
	m := newTestModel(c, r)

	_, cmd := m.Update(press("d"))
	if m.page != detailsPage || !m.state.details.Loading {
		t.Fatalf("page = %v loading = %v, want details loading", m.page, m.state.details.Loading)
	}

	for _, msg := range run(cmd) {
		m.Update(msg)
	}
	out := ansi.Strip(m.render())
	for _, want := range []string{"Overwork", "Deep Work", "3 entries"} {
		if !strings.Contains(out, want) {
			t.Errorf("details view is missing %q", want)
		}
	}

	// manager intents are not reachable from the details page
	_, cmd = m.Update(press("p"))
	run(cmd)
	if len(c.Calls()) != 0 {
		t.Errorf("calls = %v, want none", c.Calls())
	}

	m.Update(press("esc"))
	if m.page != overviewPage {
		t.Errorf("page = %v after esc, want overview", m.page)
	}
}

func TestModel_DetailsError(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeController{}, &fakeReader{err: errors.New("boom")})

	_, cmd := m.Update(press("d"))
	for _, msg := range run(cmd) {
		m.Update(msg)
	}

	if m.state.details.Err == nil {
		t.Fatal("details error not recorded")
	}
	if out := ansi.Strip(m.render()); !strings.Contains(out, "Failed to load details: boom") {
		t.Error("details view does not show the failure")
	}
}

func TestModel_StateMsgRendersUnknown(t *testing.T) {
	t.Parallel()

	m := newTestModel(&fakeController{}, &fakeReader{})
	m.Update(StateMsg{State: dashboard.State{
		Metrics: &insight.Snapshot{BurnoutScore: new(float64)},
		Message: &dashboard.Message{Severity: dashboard.SeverityDanger, Text: "Failed to fetch metrics: boom"},
	}})

	out := ansi.Strip(m.render())
	for _, want := range []string{gauge.Unknown, "0.0/10", "Failed to fetch metrics: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestModel_AnyKeySkipsSplash(t *testing.T) {
	t.Parallel()

	c := &fakeController{}
	m := New(Deps{Dashboard: c, Insight: &fakeReader{}})
	m.Update(press("r"))

	if m.page != overviewPage {
		t.Errorf("page = %v, want overview", m.page)
	}
	if len(c.Calls()) != 0 {
		t.Errorf("splash key triggered %v", c.Calls())
	}
}

func TestModel_DetailsGoals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reader   *fakeReader
		wantGoal bool
	}{
		{
			name:     "settings shown",
			reader:   &fakeReader{settings: &insight.Settings{DailyGoalHours: 6, FocusGoalPercent: 80}},
			wantGoal: true,
		},
		{
			name:     "settings failure keeps the page",
			reader:   &fakeReader{settingsErr: errors.New("404 Not Found")},
			wantGoal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestModel(&fakeController{}, tt.reader)
			_, cmd := m.Update(press("d"))
			for _, msg := range run(cmd) {
				m.Update(msg)
			}

			if m.state.details.Err != nil {
				t.Fatalf("details error = %v, want none", m.state.details.Err)
			}
			out := ansi.Strip(m.render())
			if got := strings.Contains(out, "Goals"); got != tt.wantGoal {
				t.Errorf("goals shown = %v, want %v", got, tt.wantGoal)
			}
			if !strings.Contains(out, "Burnout flags") {
				t.Error("details view is missing the flags section")
			}
		})
	}
}
