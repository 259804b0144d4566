package insight

import (
	"bytes"
	"context"
	"net/http"

	go_json "github.com/goccy/go-json"
)

type metricsPayload struct {
	FQS           *float64           `json:"fqs"`
	CSC           *float64           `json:"csc"`
	SwitchingRate *float64           `json:"switching_rate"`
	BurnoutScore  *float64           `json:"burnout_score"`
	BurnoutLevel  *string            `json:"burnout_level"`
	TotalHours    *float64           `json:"total_hours"`
	HealthReport  map[string]any     `json:"health_report"`
	Error         go_json.RawMessage `json:"error"`
}

// Metrics fetches the latest metrics snapshot.
func (c *Client) Metrics(ctx context.Context) (*Snapshot, error) {
	const route = "/api/metrics"

	var p metricsPayload
	if err := c.do(ctx, http.MethodGet, route, nil, &p); err != nil {
		return nil, err
	}

	degraded, reason := parseErrorField(p.Error)
	return &Snapshot{
		FocusQuality:      p.FQS,
		ContextSwitchCost: p.CSC,
		SwitchingRate:     p.SwitchingRate,
		BurnoutScore:      p.BurnoutScore,
		BurnoutLevel:      p.BurnoutLevel,
		TotalHours:        p.TotalHours,
		HealthReport:      p.HealthReport,
		Degraded:          degraded,
		Reason:            reason,
	}, nil
}

// parseErrorField treats any present value other than null or false as degraded.
func parseErrorField(raw go_json.RawMessage) (bool, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
		return false, ""
	}
	var reason string
	if err := go_json.Unmarshal(raw, &reason); err == nil {
		return true, reason
	}
	return true, ""
}
