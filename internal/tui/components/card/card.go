// Package card renders a small bordered metric tile.
package card

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/tui/theme"
)

const defaultWidth = 22

type Card struct {
	Title   string
	Value   string
	Caption string
	Color   color.Color
	Width   int
}

func New(title, value, caption string, c color.Color) Card {
	return Card{
		Title:   title,
		Value:   value,
		Caption: caption,
		Color:   c,
		Width:   defaultWidth,
	}
}

func (c Card) Render() string {
	title := lipgloss.NewStyle().Foreground(theme.ColorDim).Render(c.Title)
	value := lipgloss.NewStyle().Foreground(c.Color).Bold(true).Render(c.Value)

	rows := []string{title, value}
	if c.Caption != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.ColorDim).Italic(true).Render(c.Caption))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 1).
		Width(c.Width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
