package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent)
}

func (t Theme) TextDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.foreground).Bold(true)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}

// Band picks the colour for a score where lower is better: healthy below
// healthyBelow, moderate below moderateBelow, high otherwise. A nil score is neutral.
func Band(score *float64, healthyBelow, moderateBelow float64) color.Color {
	if score == nil {
		return ColorNeutral
	}
	switch s := *score; {
	case s < healthyBelow:
		return ColorHealthy
	case s < moderateBelow:
		return ColorModerate
	default:
		return ColorHigh
	}
}
