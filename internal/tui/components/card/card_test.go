package card

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/cogdash/internal/tui/theme"
)

func TestCard_Render(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(New("CONTEXT SWITCH", "1.2s/h", "healthy", theme.ColorHealthy).Render())

	for _, want := range []string{"CONTEXT SWITCH", "1.2s/h", "healthy", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("card is missing %q:\n%s", want, out)
		}
	}

	noCaption := ansi.Strip(New("HOURS", "—", "", theme.ColorNeutral).Render())
	if got := strings.Count(noCaption, "\n") + 1; got != 4 {
		t.Errorf("card without caption has %d lines, want 4", got)
	}
}
