package tui

import (
	"time"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/dashboard"
)

const healthInterval = 30 * time.Second

// StateMsg carries a dashboard state change into the program.
type StateMsg struct {
	State dashboard.State
}

type HealthMsg struct {
	Status *insight.HealthStatus
	Err    error
}

type healthTickMsg struct{}

type DetailsMsg struct {
	Flags     []insight.BurnoutFlag
	Breakdown *insight.Breakdown
	Settings  *insight.Settings
	Err       error
	// SettingsErr does not fail the page; goals are left out.
	SettingsErr error
}
