package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/dashboard"
	"github.com/garrettladley/cogdash/internal/tui/components/footer"
	"github.com/garrettladley/cogdash/internal/tui/components/status"
	"github.com/garrettladley/cogdash/internal/tui/page/details"
	"github.com/garrettladley/cogdash/internal/tui/page/overview"
	"github.com/garrettladley/cogdash/internal/tui/page/splash"
	"github.com/garrettladley/cogdash/internal/tui/theme"
	"github.com/garrettladley/cogdash/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	overviewPage
	detailsPage
)

type state struct {
	dashboard  dashboard.State
	details    details.State
	connection status.Indicator
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		state: state{
			dashboard: deps.Dashboard.State(),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splash.Duration, func(time.Time) tea.Msg {
			return splash.TickMsg{}
		}),
		mountCmd(m.deps.Dashboard),
		healthCmd(m.deps.Ctx, m.deps.Insight),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())

	case splash.TickMsg:
		if m.page == splashPage {
			m.page = overviewPage
		}

	case StateMsg:
		m.state.dashboard = msg.State

	case HealthMsg:
		m.state.connection.Checked = true
		m.state.connection.Online = msg.Err == nil
		m.state.connection.Detail = ""
		if msg.Err != nil {
			m.deps.Logger.DebugContext(m.deps.Ctx, "health check failed", xslog.Error(msg.Err))
		} else if msg.Status != nil {
			m.state.connection.Detail = msg.Status.Status
		}
		return m, healthTickCmd()

	case healthTickMsg:
		return m, healthCmd(m.deps.Ctx, m.deps.Insight)

	case DetailsMsg:
		m.state.details = details.State{
			Flags:     msg.Flags,
			Breakdown: msg.Breakdown,
			Settings:  msg.Settings,
			Err:       msg.Err,
		}
		if msg.Err != nil {
			m.deps.Logger.WarnContext(m.deps.Ctx, "loading details failed", xslog.Error(msg.Err))
		}
		if msg.SettingsErr != nil {
			m.deps.Logger.DebugContext(m.deps.Ctx, "loading settings failed", xslog.Error(msg.SettingsErr))
		}
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	if key == keyQuit || key == keyCtrlC {
		return tea.Quit
	}

	// any key skips the splash
	if m.page == splashPage {
		m.page = overviewPage
		return nil
	}

	if m.page == detailsPage {
		switch key {
		case keyEscape, keyDetails:
			m.page = overviewPage
		case keyRefresh:
			return m.loadDetails()
		}
		return nil
	}

	busy := m.state.dashboard.PipelineRunning
	switch key {
	case keyRefresh:
		return fetchMetricsCmd(m.deps.Ctx, m.deps.Dashboard)
	case keyRun:
		if busy {
			return nil
		}
		return runPipelineCmd(m.deps.Ctx, m.deps.Dashboard)
	case keyAuto:
		// toggling during a run would change the schedule under it
		if busy {
			return nil
		}
		return toggleAutoRefreshCmd(m.deps.Dashboard)
	case keyDismiss, keyEscape:
		if m.state.dashboard.Message == nil {
			return nil
		}
		return dismissCmd(m.deps.Dashboard)
	case keyDetails:
		m.page = detailsPage
		return m.loadDetails()
	}
	return nil
}

func (m *Model) loadDetails() tea.Cmd {
	m.state.details = details.State{Loading: true}
	return detailsCmd(m.deps.Ctx, m.deps.Insight)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	view.SetContent(m.render())
	return view
}

func (m *Model) render() string {
	switch m.page {
	case splashPage:
		return splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case overviewPage:
		return m.withFooter(overviewBindings, func(height int) string {
			return overview.View(overview.Props{
				State:  m.state.dashboard,
				Theme:  m.theme,
				Width:  m.viewportWidth,
				Height: height,
			})
		})
	case detailsPage:
		return m.withFooter(detailsBindings, func(height int) string {
			return details.View(m.state.details, m.theme, m.viewportWidth, height)
		})
	}
	return ""
}

// withFooter renders body in the space left above the footer.
func (m *Model) withFooter(bindings []footer.Binding, body func(height int) string) string {
	f := footer.New(bindings, m.state.connection.Render(), m.viewportWidth).Render()
	height := max(m.viewportHeight-lipgloss.Height(f), 0)
	return lipgloss.JoinVertical(lipgloss.Left, body(height), f)
}
