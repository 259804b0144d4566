package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/cogdash/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
 ▄▄▄▄▄   ▄▄▄▄    ▄▄▄▄▄  ▄▄▄▄▄     ▄▄     ▄▄▄▄▄  ▄▄   ▄▄
██▀▀▀▀  ██▀▀██  ██▀▀▀▀  ██▀▀██   ████   ██▀▀▀▀  ██   ██
██      ██  ██  ██ ▄▄▄  ██  ██  ██  ██  ▀████▄  ███████
██      ██  ██  ██  ██  ██  ██  ██████      ▀██ ██   ██
▀█▄▄▄▄  ▀█▄▄█▀  ▀█▄▄██  ██▄▄█▀  ██  ██  ▄▄▄▄██  ██   ██
  ▀▀▀▀    ▀▀      ▀▀▀▀  ▀▀▀▀    ▀▀  ▀▀  ▀▀▀▀▀   ▀▀   ▀▀`

const tagline = "focus • context switching • burnout"

type TickMsg struct{}

func LogoView(t theme.Theme) string {
	return t.TextAccent().Render(Logo)
}

func View(t theme.Theme, width, height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		LogoView(t),
		"",
		t.TextDim().Render(tagline),
	)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
