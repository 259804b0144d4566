// Package banner renders the single dismissable dashboard message.
package banner

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/dashboard"
	"github.com/garrettladley/cogdash/internal/tui/theme"
)

var icons = map[dashboard.Severity]string{
	dashboard.SeverityInfo:    "ℹ",
	dashboard.SeveritySuccess: "✓",
	dashboard.SeverityWarning: "!",
	dashboard.SeverityDanger:  "✗",
}

func Color(s dashboard.Severity) color.Color {
	switch s {
	case dashboard.SeveritySuccess:
		return theme.ColorSuccess
	case dashboard.SeverityWarning:
		return theme.ColorWarning
	case dashboard.SeverityDanger:
		return theme.ColorDanger
	default:
		return theme.ColorInfo
	}
}

// Render returns an empty string when there is no message.
func Render(msg *dashboard.Message, width int) string {
	if msg == nil {
		return ""
	}

	c := Color(msg.Severity)
	text := lipgloss.NewStyle().Foreground(c).Render(icons[msg.Severity] + " " + msg.Text)
	hint := lipgloss.NewStyle().Foreground(theme.ColorDim).Render("  [x] dismiss")

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(c).
		PaddingLeft(1).
		MaxWidth(width).
		Render(text + hint)
}
