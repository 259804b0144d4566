// Package overview is the main dashboard page: gauges, metric cards, trend and
// recommendations for the latest snapshot.
package overview

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/dashboard"
	"github.com/garrettladley/cogdash/internal/history"
	"github.com/garrettladley/cogdash/internal/tui/components/banner"
	"github.com/garrettladley/cogdash/internal/tui/components/card"
	"github.com/garrettladley/cogdash/internal/tui/components/gauge"
	"github.com/garrettladley/cogdash/internal/tui/components/sparkline"
	"github.com/garrettladley/cogdash/internal/tui/theme"
)

const (
	focusMax   = 100
	burnoutMax = 10

	// lower is better for both
	burnoutHealthyBelow  = 3
	burnoutModerateBelow = 6
	cscHealthyBelow      = 1.5
	cscModerateBelow     = 3

	trendWidth         = 30
	maxRecommendations = 3
)

type Props struct {
	State  dashboard.State
	Theme  theme.Theme
	Width  int
	Height int
}

func View(p Props) string {
	s := p.State

	var metrics insight.Snapshot
	if s.HasUsableData() {
		metrics = *s.Metrics
	}

	rows := []string{
		header(p.Theme),
		"",
		gauges(metrics),
		cards(metrics),
	}

	if !s.HasUsableData() {
		rows = append(rows, "", noData(p.Theme, s))
	} else {
		rows = append(rows, "", trend(p.Theme, s.Trend))
		if recs := recommendations(p.Theme, metrics.Recommendations()); recs != "" {
			rows = append(rows, "", recs)
		}
	}

	if b := banner.Render(s.Message, p.Width-4); b != "" {
		rows = append(rows, "", b)
	}
	rows = append(rows, "", StatusLine(p.Theme, s))

	return lipgloss.Place(
		p.Width,
		p.Height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, rows...),
	)
}

func header(t theme.Theme) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title().Render("Cognitive Health Dashboard"),
		t.TextDim().Render("focus quality, context switching and burnout risk"),
	)
}

func gauges(m insight.Snapshot) string {
	focus := gauge.New(m.FocusQuality, focusMax, "FOCUS QUALITY", theme.ColorAccent,
		gauge.WithFormat(gauge.Percent))
	burnout := gauge.New(m.BurnoutScore, burnoutMax, "BURNOUT RISK",
		theme.Band(m.BurnoutScore, burnoutHealthyBelow, burnoutModerateBelow),
		gauge.WithFormat(gauge.OutOf(burnoutMax)))

	return lipgloss.JoinHorizontal(lipgloss.Top, focus.Render(), "      ", burnout.Render())
}

func cards(m insight.Snapshot) string {
	level := gauge.Unknown
	if m.BurnoutLevel != nil && *m.BurnoutLevel != "" {
		level = *m.BurnoutLevel
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		card.New("CONTEXT SWITCH COST", Format(m.ContextSwitchCost, "%.2f s/h"), cscCaption(m.ContextSwitchCost),
			theme.Band(m.ContextSwitchCost, cscHealthyBelow, cscModerateBelow)).Render(),
		card.New("SWITCHING RATE", Format(m.SwitchingRate, "%.1f /h"), "", theme.ColorNeutral).Render(),
		card.New("TOTAL HOURS", Format(m.TotalHours, "%.1f h"), "logged", theme.ColorNeutral).Render(),
		card.New("BURNOUT LEVEL", level, "", theme.Band(m.BurnoutScore, burnoutHealthyBelow, burnoutModerateBelow)).Render(),
	)
}

func cscCaption(v *float64) string {
	switch {
	case v == nil:
		return ""
	case *v < cscHealthyBelow:
		return "healthy"
	case *v < cscModerateBelow:
		return "moderate"
	default:
		return "high"
	}
}

// Format renders v with format, or the unknown placeholder when v is nil.
func Format(v *float64, format string) string {
	if v == nil {
		return gauge.Unknown
	}
	return fmt.Sprintf(format, *v)
}

func noData(t theme.Theme, s dashboard.State) string {
	if s.Metrics == nil && s.FetchingMetrics {
		return t.TextDim().Render("Loading metrics...")
	}

	lines := []string{lipgloss.NewStyle().Foreground(theme.ColorWarning).Bold(true).Render("No data available")}
	if s.Metrics != nil && s.Metrics.Reason != "" {
		lines = append(lines, t.TextDim().Render(s.Metrics.Reason))
	}
	lines = append(lines, t.TextDim().Render("press p to run the analysis pipeline"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func trend(t theme.Theme, entries []history.Entry) string {
	series := history.FocusSeries(entries)
	label := t.TextDim().Render("focus trend ")
	if len(series) < 2 {
		return label + t.TextDim().Render("not enough history yet")
	}
	return label + sparkline.Render(series, trendWidth, theme.ColorAccent)
}

func recommendations(t theme.Theme, recs []insight.Recommendation) string {
	if len(recs) == 0 {
		return ""
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	lines := []string{t.Title().Render("Recommendations")}
	for _, r := range recs {
		lines = append(lines, t.Base().Render("• "+r.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// StatusLine summarises busy flags, auto-refresh and freshness.
func StatusLine(t theme.Theme, s dashboard.State) string {
	var parts []string
	if s.FetchingMetrics {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ColorInfo).Render("⟳ fetching metrics"))
	}
	if s.PipelineRunning {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ColorInfo).Render("▶ pipeline running"))
	}
	if s.AutoRefresh {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ColorHealthy).
			Render(fmt.Sprintf("auto-refresh every %.0fs", dashboard.AutoRefreshInterval.Seconds())))
	} else {
		parts = append(parts, t.TextDim().Render("auto-refresh off"))
	}
	if !s.LastUpdated.IsZero() {
		parts = append(parts, t.TextDim().Render("updated "+s.LastUpdated.Local().Format(time.Kitchen)))
	}
	return strings.Join(parts, t.TextDim().Render("  │  "))
}
