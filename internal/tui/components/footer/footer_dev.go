//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/tui/theme"
	"github.com/garrettladley/cogdash/internal/version"
)

var devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	if f.hints == "" {
		return devVersionStyle.Render(version.Get())
	}
	return devVersionStyle.Render(version.Get()) + "  " + f.hints
}
