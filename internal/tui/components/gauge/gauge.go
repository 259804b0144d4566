// Package gauge renders a braille arc gauge with the value in its centre.
package gauge

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/cogdash/internal/tui/theme"
)

// Unknown is shown in place of a value the server did not report.
const Unknown = "—"

// default size in braille dots; each cell is 2 dots wide and 4 tall
const defaultDots = 40

type Gauge struct {
	Value     *float64 // nil = unknown
	Max       float64
	Label     string
	Color     color.Color
	BgColor   color.Color
	TextColor color.Color
	Format    func(float64) string
	dots      int
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

func WithFormat(fn func(float64) string) Option {
	return func(g *Gauge) { g.Format = fn }
}

// WithSize sets the diameter in braille dots, rounded down to a multiple of 4.
func WithSize(dots int) Option {
	return func(g *Gauge) { g.dots = max(dots-dots%4, 8) }
}

func Percent(v float64) string { return fmt.Sprintf("%.0f%%", v) }

// OutOf formats v as "v/max" with one decimal.
func OutOf(maximum float64) func(float64) string {
	return func(v float64) string { return fmt.Sprintf("%.1f/%.0f", v, maximum) }
}

func New(value *float64, maximum float64, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Value:     value,
		Max:       maximum,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
		Format:    func(v float64) string { return fmt.Sprintf("%.1f", v) },
		dots:      defaultDots,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Fraction is the filled share of the arc, clamped to [0,1]. Unknown is 0.
func (g Gauge) Fraction() float64 {
	if g.Value == nil || g.Max <= 0 {
		return 0
	}
	return min(max(*g.Value/g.Max, 0), 1)
}

// Text is the centre label.
func (g Gauge) Text() string {
	if g.Value == nil {
		return Unknown
	}
	return g.Format(*g.Value)
}

func (g Gauge) Render() string {
	var (
		canvas  = drawille.NewCanvas()
		centerX = float64(g.dots) / 2
		centerY = float64(g.dots) / 2
		radius  = float64(g.dots)/2 - 1
	)

	drawFullArc(&canvas, centerX, centerY, radius)
	track := canvasString(&canvas, g.dots, g.dots)

	canvas.Clear()
	drawFilledArc(&canvas, centerX, centerY, radius, g.Fraction())
	fill := canvasString(&canvas, g.dots, g.dots)

	arc := colorArcs(track, fill, g.BgColor, g.Color)

	var (
		arcWidth  = lipgloss.Width(arc)
		arcHeight = lipgloss.Height(arc)
	)

	value := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Render(g.Text())
	centered := lipgloss.Place(arcWidth, arcHeight, lipgloss.Center, lipgloss.Center, value)

	label := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(arcWidth).
		Align(lipgloss.Center).
		Render(g.Label)

	return lipgloss.JoinVertical(lipgloss.Center, overlay(arc, centered), label)
}

// canvasString renders the canvas at a fixed size so both arc layers line up.
func canvasString(canvas *drawille.Canvas, width, height int) string {
	var (
		cols  = width / 2
		lines = height / 4
		rows  = canvas.Rows(0, 0, width, height)
		out   = make([]string, lines)
	)

	for i := range lines {
		var line string
		if i < len(rows) {
			line = rows[i]
		}
		runes := []rune(line)
		if len(runes) > cols {
			runes = runes[:cols]
		}
		out[i] = string(runes) + strings.Repeat(" ", cols-len(runes))
	}
	return strings.Join(out, "\n")
}

const emptyBraille rune = '\u2800'

// colorArcs merges the track and fill layers cell by cell. Cells where both have
// dots are OR-ed together and take the fill colour.
func colorArcs(track, fill string, trackColor, fillColor color.Color) string {
	var (
		trackLines = strings.Split(track, "\n")
		fillLines  = strings.Split(fill, "\n")
		trackStyle = lipgloss.NewStyle().Foreground(trackColor)
		fillStyle  = lipgloss.NewStyle().Foreground(fillColor)
		out        = make([]string, len(trackLines))
	)

	for i, line := range trackLines {
		var fillRunes []rune
		if i < len(fillLines) {
			fillRunes = []rune(fillLines[i])
		}

		var b strings.Builder
		for j, t := range []rune(line) {
			f := ' '
			if j < len(fillRunes) {
				f = fillRunes[j]
			}

			switch filled := isBraille(f) && f != emptyBraille; {
			case filled && isBraille(t):
				b.WriteString(fillStyle.Render(string(emptyBraille + ((t - emptyBraille) | (f - emptyBraille)))))
			case filled:
				b.WriteString(fillStyle.Render(string(f)))
			case isBraille(t):
				b.WriteString(trackStyle.Render(string(t)))
			default:
				b.WriteRune(' ')
			}
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// overlay draws the visible span of each foreground line over the background,
// keeping the background's styled cells on either side.
func overlay(background, foreground string) string {
	var (
		bgLines = strings.Split(background, "\n")
		fgLines = strings.Split(foreground, "\n")
		out     = make([]string, max(len(bgLines), len(fgLines)))
	)

	for i := range out {
		var bg, fg string
		if i < len(bgLines) {
			bg = bgLines[i]
		}
		if i < len(fgLines) {
			fg = fgLines[i]
		}

		visible := ansi.Strip(fg)
		trimmed := strings.TrimLeft(visible, " ")
		if strings.TrimSpace(trimmed) == "" {
			out[i] = bg
			continue
		}

		start := ansi.StringWidth(visible) - ansi.StringWidth(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))
		bgWidth := ansi.StringWidth(bg)

		var b strings.Builder
		b.WriteString(ansi.Cut(bg, 0, min(start, bgWidth)))
		if pad := start - bgWidth; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(ansi.Cut(fg, start, end))
		if end < bgWidth {
			b.WriteString(ansi.Cut(bg, end, bgWidth))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
