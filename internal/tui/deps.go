package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/dashboard"
)

// Controller is the dashboard manager as seen by the view.
type Controller interface {
	State() dashboard.State
	Mount()
	FetchMetrics(ctx context.Context)
	RunPipeline(ctx context.Context)
	ToggleAutoRefresh()
	DismissMessage()
}

// Reader serves the supplementary reads the details page and indicator use.
type Reader interface {
	Health(ctx context.Context) (*insight.HealthStatus, error)
	Breakdown(ctx context.Context) (*insight.Breakdown, error)
	BurnoutFlags(ctx context.Context) ([]insight.BurnoutFlag, error)
	Settings(ctx context.Context) (*insight.Settings, error)
}

type Deps struct {
	Ctx       context.Context
	Logger    *slog.Logger
	Dashboard Controller
	Insight   Reader
}

var (
	_ Controller = (*dashboard.Manager)(nil)
	_ Reader     = (*insight.Client)(nil)
)
