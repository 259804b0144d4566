package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/cogdash/internal/client/insight"
)

// Manager intents run as commands so the event loop never waits on the manager
// while the manager is delivering a StateMsg.

func mountCmd(c Controller) tea.Cmd {
	return func() tea.Msg {
		c.Mount()
		return nil
	}
}

func fetchMetricsCmd(ctx context.Context, c Controller) tea.Cmd {
	return func() tea.Msg {
		c.FetchMetrics(ctx)
		return nil
	}
}

func runPipelineCmd(ctx context.Context, c Controller) tea.Cmd {
	return func() tea.Msg {
		c.RunPipeline(ctx)
		return nil
	}
}

func toggleAutoRefreshCmd(c Controller) tea.Cmd {
	return func() tea.Msg {
		c.ToggleAutoRefresh()
		return nil
	}
}

func dismissCmd(c Controller) tea.Cmd {
	return func() tea.Msg {
		c.DismissMessage()
		return nil
	}
}

func healthCmd(ctx context.Context, r Reader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		status, err := r.Health(ctx)
		return HealthMsg{Status: status, Err: err}
	}
}

func healthTickCmd() tea.Cmd {
	return tea.Tick(healthInterval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

// detailsCmd fetches flags, breakdown and settings concurrently. The first flags or
// breakdown failure wins; a settings failure only drops the goals.
func detailsCmd(ctx context.Context, r Reader) tea.Cmd {
	return func() tea.Msg {
		var (
			flags       []insight.BurnoutFlag
			breakdown   *insight.Breakdown
			settings    *insight.Settings
			settingsErr error
		)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			flags, err = r.BurnoutFlags(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			breakdown, err = r.Breakdown(ctx)
			return err
		})
		g.Go(func() error {
			settings, settingsErr = r.Settings(ctx)
			return nil
		})
		if err := g.Wait(); err != nil {
			return DetailsMsg{Err: err}
		}
		return DetailsMsg{Flags: flags, Breakdown: breakdown, Settings: settings, SettingsErr: settingsErr}
	}
}
