package gauge

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func ptr(v float64) *float64 { return &v }

func TestGauge_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		gauge Gauge
		want  string
	}{
		{"unknown", New(nil, 100, "FOCUS", nil, WithFormat(Percent)), Unknown},
		{"zero is not unknown", New(ptr(0), 100, "FOCUS", nil, WithFormat(Percent)), "0%"},
		{"percent", New(ptr(72.4), 100, "FOCUS", nil, WithFormat(Percent)), "72%"},
		{"out of ten", New(ptr(4.3), 10, "BURNOUT", nil, WithFormat(OutOf(10))), "4.3/10"},
		{"default format", New(ptr(3), 21, "X", nil), "3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.gauge.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGauge_Fraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value *float64
		max   float64
		want  float64
	}{
		{"unknown", nil, 100, 0},
		{"half", ptr(5), 10, 0.5},
		{"clamped high", ptr(140), 100, 1},
		{"clamped low", ptr(-3), 100, 0},
		{"zero max", ptr(3), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(tt.value, tt.max, "", nil).Fraction(); got != tt.want {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGauge_Render(t *testing.T) {
	t.Parallel()

	red := color.RGBA{R: 255, A: 255}

	unknown := ansi.Strip(New(nil, 100, "FOCUS", red, WithSize(32)).Render())
	if !strings.Contains(unknown, Unknown) {
		t.Errorf("unknown gauge does not show %q:\n%s", Unknown, unknown)
	}
	if !strings.Contains(unknown, "FOCUS") {
		t.Errorf("gauge is missing its label:\n%s", unknown)
	}
	// 32 dots tall = 8 rows of arc plus the label
	if lines := strings.Count(unknown, "\n") + 1; lines != 9 {
		t.Errorf("rendered %d lines, want 9", lines)
	}

	full := ansi.Strip(New(ptr(100), 100, "FOCUS", red, WithSize(32), WithFormat(Percent)).Render())
	if !strings.Contains(full, "100%") {
		t.Errorf("full gauge does not show its value:\n%s", full)
	}
}

func TestInArc(t *testing.T) {
	t.Parallel()

	const cx, cy = 10, 10
	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"top", 10, 0, true},
		{"left", 0, 10, true},
		{"right", 20, 10, true},
		{"bottom gap", 10, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := inArc(cx, cy, tt.px, tt.py, arcStartAngle, arcStartAngle+arcSweep); got != tt.want {
				t.Errorf("inArc(%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestColorArcs(t *testing.T) {
	t.Parallel()

	track := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	fill := color.RGBA{R: 255, A: 255}

	tests := []struct {
		name      string
		track     string
		fill      string
		wantPlain string
	}{
		{"fill merges into track", "⠁⠁", "⠈ ", "⠉⠁"},
		{"empty braille fill keeps track", "⠁", "⠀", "⠁"},
		{"blank cells stay blank", " ⠁", "  ", " ⠁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ansi.Strip(colorArcs(tt.track, tt.fill, track, fill))
			if got != tt.wantPlain {
				t.Errorf("colorArcs() = %q, want %q", got, tt.wantPlain)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		background string
		foreground string
		want       string
	}{
		{
			name:       "centre replaced",
			background: "AAAAA\nBBBBB\nCCCCC",
			foreground: "     \n  X  \n     ",
			want:       "AAAAA\nBBXBB\nCCCCC",
		},
		{
			name:       "styled background",
			background: "\x1b[31mAAAAA\x1b[0m",
			foreground: " \x1b[1mXY\x1b[0m  ",
			want:       "AXYAA",
		},
		{
			name:       "empty foreground keeps background",
			background: "AAA",
			foreground: "   ",
			want:       "AAA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ansi.Strip(overlay(tt.background, tt.foreground)); got != tt.want {
				t.Errorf("overlay() = %q, want %q", got, tt.want)
			}
		})
	}
}
