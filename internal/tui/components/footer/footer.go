// Package footer renders the bottom bar: key hints on the left, status on the right.
package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/tui/theme"
)

type Binding struct {
	Key  string
	Help string
}

type Footer struct {
	hints        string
	rightContent string
	width        int
	padding      int
}

func New(bindings []Binding, rightContent string, width int) Footer {
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(theme.ColorDim)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, keyStyle.Render(b.Key)+" "+helpStyle.Render(b.Help))
	}

	return Footer{
		hints:        strings.Join(parts, helpStyle.Render(" • ")),
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	left := f.leftContent()

	spacer := max(f.width-lipgloss.Width(left)-lipgloss.Width(f.rightContent)-f.padding*2, 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + strings.Repeat(" ", spacer) + f.rightContent)
}
