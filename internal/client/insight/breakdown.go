package insight

import (
	"context"
	"net/http"
	"strconv"
)

type breakdownPayload struct {
	CategoryBreakdown map[string]int `json:"category_breakdown"`
	TimeDistribution  map[string]int `json:"time_distribution"`
	TotalEntries      int            `json:"total_entries"`
	Error             string         `json:"error"`
}

// Breakdown fetches activity counts per category and per hour of day.
func (c *Client) Breakdown(ctx context.Context) (*Breakdown, error) {
	const route = "/api/dashboard"

	var p breakdownPayload
	if err := c.do(ctx, http.MethodGet, route, nil, &p); err != nil {
		return nil, err
	}

	b := &Breakdown{
		Categories:   p.CategoryBreakdown,
		Hourly:       make(map[int]int, len(p.TimeDistribution)),
		TotalEntries: p.TotalEntries,
		Reason:       p.Error,
	}
	if b.Categories == nil {
		b.Categories = map[string]int{}
	}
	for hour, count := range p.TimeDistribution {
		h, err := strconv.Atoi(hour)
		if err != nil || h < 0 || h > 23 {
			continue
		}
		b.Hourly[h] = count
	}
	return b, nil
}
