// Package details shows the burnout flags and the activity breakdown behind the
// headline metrics.
package details

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/tui/components/sparkline"
	"github.com/garrettladley/cogdash/internal/tui/theme"
)

const (
	barWidth      = 28
	categoryWidth = 18
	maxCategories = 8
	maxSeverity   = 10
)

type State struct {
	Loading   bool
	Flags     []insight.BurnoutFlag
	Breakdown *insight.Breakdown
	// Settings is nil when the service does not report goals.
	Settings *insight.Settings
	Err      error
}

func View(s State, t theme.Theme, width, height int) string {
	var body string
	switch {
	case s.Loading:
		body = t.TextDim().Render("Loading details...")
	case s.Err != nil:
		body = lipgloss.NewStyle().Foreground(theme.ColorDanger).Render("Failed to load details: " + s.Err.Error())
	default:
		var sections []string
		if s.Settings != nil {
			sections = append(sections, goals(t, s.Settings), "")
		}
		sections = append(sections, flags(t, s.Flags), "", breakdown(t, s.Breakdown))
		body = lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, t.Title().Render("Details"), "", body),
	)
}

func goals(t theme.Theme, s *insight.Settings) string {
	item := func(label, value string) string {
		return t.TextDim().Render(label+" ") + t.Base().Render(value)
	}
	peak := s.PeakHours
	if peak == "" {
		peak = "not set"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title().Render("Goals"),
		strings.Join([]string{
			item("daily", fmt.Sprintf("%g h", s.DailyGoalHours)),
			item("focus", fmt.Sprintf("%g%%", s.FocusGoalPercent)),
			item("peak hours", peak),
		}, "   "),
	)
}

func flags(t theme.Theme, fs []insight.BurnoutFlag) string {
	lines := []string{t.Title().Render("Burnout flags")}
	if len(fs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, t.TextDim().Render("no risk flags detected"))...)
	}

	for _, f := range fs {
		sev := float64(f.Severity)
		marker := lipgloss.NewStyle().
			Foreground(theme.Band(&sev, 4, 7)).
			Render(fmt.Sprintf("■ %2d/%d", f.Severity, maxSeverity))
		lines = append(lines,
			marker+" "+t.Base().Bold(true).Render(f.Category)+"  "+t.Base().Render(f.Message),
		)
		if f.Prescription != "" {
			lines = append(lines, t.TextDim().Render("        → "+f.Prescription))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func breakdown(t theme.Theme, b *insight.Breakdown) string {
	lines := []string{t.Title().Render("Activity by category")}
	if b == nil || len(b.Categories) == 0 {
		reason := "no classified activity yet"
		if b != nil && b.Reason != "" {
			reason = b.Reason
		}
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, t.TextDim().Render(reason))...)
	}

	ranked := b.Ranked()
	if len(ranked) > maxCategories {
		ranked = ranked[:maxCategories]
	}
	top := ranked[0].Count
	for _, c := range ranked {
		lines = append(lines, Bar(c.Category, c.Count, top))
	}

	if hours := HourlySeries(b.Hourly); hours != nil {
		lines = append(lines, "",
			t.TextDim().Render("by hour  ")+sparkline.Render(hours, len(hours), theme.ColorAccent)+t.TextDim().Render("  0h → 23h"))
	}
	lines = append(lines, t.TextDim().Render(fmt.Sprintf("%d entries", b.TotalEntries)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Bar renders one category row with a bar scaled against top.
func Bar(category string, count, top int) string {
	filled := 0
	if top > 0 {
		filled = max(count*barWidth/top, 1)
	}
	name := category
	if r := []rune(name); len(r) > categoryWidth {
		name = string(r[:categoryWidth-1]) + "…"
	}
	return fmt.Sprintf("%-*s %s%s %d",
		categoryWidth, name,
		lipgloss.NewStyle().Foreground(theme.ColorAccent).Render(strings.Repeat("█", filled)),
		strings.Repeat(" ", barWidth-filled),
		count,
	)
}

// HourlySeries expands the sparse hour map into 24 slots. It returns nil when
// there is no activity at all.
func HourlySeries(hourly map[int]int) []float64 {
	if len(hourly) == 0 {
		return nil
	}
	out := make([]float64, 24)
	for h, n := range hourly {
		if h >= 0 && h < 24 {
			out[h] = float64(n)
		}
	}
	return out
}
