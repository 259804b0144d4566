package insight

import (
	"context"
	"net/http"
)

// Settings are the user's goals as the service reports them. The service owns them;
// the dashboard only reads.
type Settings struct {
	BreakNotifications bool    `json:"break_notifications"`
	FocusReminders     bool    `json:"focus_reminders"`
	DailyGoalHours     float64 `json:"daily_goal_hours"`
	FocusGoalPercent   float64 `json:"focus_goal_percent"`
	PeakHours          string  `json:"peak_hours"`
}

func (c *Client) Settings(ctx context.Context) (*Settings, error) {
	const route = "/api/settings"

	var s Settings
	if err := c.do(ctx, http.MethodGet, route, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
