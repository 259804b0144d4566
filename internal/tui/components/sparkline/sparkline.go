// Package sparkline draws a one-line block chart of recent values.
package sparkline

import (
	"image/color"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
)

// eight levels, lowest first
var blocks = []rune("▁▂▃▄▅▆▇█")

// Levels maps the newest width values to block indexes, scaled between the
// series' min and max. A flat series sits in the middle.
func Levels(data []float64, width int) []int {
	if len(data) == 0 || width <= 0 {
		return nil
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	lo, hi := slices.Min(data), slices.Max(data)
	span := hi - lo

	out := make([]int, len(data))
	for i, v := range data {
		if span == 0 {
			out[i] = len(blocks) / 2
			continue
		}
		level := int((v - lo) / span * float64(len(blocks)-1))
		out[i] = min(max(level, 0), len(blocks)-1)
	}
	return out
}

// Render returns the sparkline coloured with c, or an empty string for no data.
func Render(data []float64, width int, c color.Color) string {
	levels := Levels(data, width)
	if levels == nil {
		return ""
	}

	var b strings.Builder
	for _, l := range levels {
		b.WriteRune(blocks[l])
	}
	return lipgloss.NewStyle().Foreground(c).Render(b.String())
}
