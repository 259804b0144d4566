package xslog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	stored := Discard()
	fallback := Discard()

	tests := []struct {
		name     string
		store    *slog.Logger
		fallback *slog.Logger
		want     *slog.Logger
	}{
		{name: "stored logger wins", store: stored, fallback: fallback, want: stored},
		{name: "fallback without a stored logger", fallback: fallback, want: fallback},
		{name: "default without either", want: slog.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			if tt.store != nil {
				ctx = WithLogger(ctx, tt.store)
			}
			if got := FromContext(ctx, tt.fallback); got != tt.want {
				t.Errorf("FromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}

func TestWithAttrs_TagsTheFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewLogger(&buf, LevelInfo)

	ctx := WithAttrs(t.Context(), base, Operation("run"))
	FromContext(ctx, nil).Info("pipeline succeeded")

	if out := buf.String(); !strings.Contains(out, `"op":"run"`) {
		t.Errorf("record = %s, want the op attribute", out)
	}
}
