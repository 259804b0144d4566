package insight

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClient_Settings(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		respond(http.StatusOK, `{"break_notifications":true,"focus_reminders":false,"daily_goal_hours":6,"focus_goal_percent":80,"peak_hours":"9-12, 14-17"}`)(w, r)
	})

	got, err := c.Settings(t.Context())
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}

	want := &Settings{
		BreakNotifications: true,
		DailyGoalHours:     6,
		FocusGoalPercent:   80,
		PeakHours:          "9-12, 14-17",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/settings" {
		t.Errorf("request = %s %s, want GET /api/settings", gotMethod, gotPath)
	}
}

func TestClient_SettingsNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, respond(http.StatusNotFound, `{"detail":"Not Found"}`))

	_, err := c.Settings(t.Context())
	if e := AsError(err); e == nil || e.Kind != KindStatus || e.StatusCode != http.StatusNotFound {
		t.Errorf("Settings() error = %v, want a 404 status error", err)
	}
}
