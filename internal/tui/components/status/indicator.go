// Package status renders the connection indicator for the analytics service.
package status

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Checked bool
	Online  bool
	// Detail is the server's health status when online.
	Detail string
}

func (i Indicator) Render() string {
	if !i.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	if i.Online {
		text := statusDot + " connected"
		if i.Detail != "" && i.Detail != "ok" {
			text += " (" + i.Detail + ")"
		}
		return lipgloss.NewStyle().
			Foreground(theme.ColorHealthy).
			Render(text)
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorHigh).
		Render(statusDot + " offline")
}
