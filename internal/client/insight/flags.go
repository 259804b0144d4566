package insight

import (
	"cmp"
	"context"
	"net/http"
	"slices"
)

// BurnoutFlags fetches the detected burnout risk flags, most severe first.
func (c *Client) BurnoutFlags(ctx context.Context) ([]BurnoutFlag, error) {
	const route = "/api/burnout-flags"

	var p struct {
		Flags []BurnoutFlag `json:"flags"`
	}
	if err := c.do(ctx, http.MethodGet, route, nil, &p); err != nil {
		return nil, err
	}

	slices.SortStableFunc(p.Flags, func(a, b BurnoutFlag) int {
		return cmp.Compare(b.Severity, a.Severity)
	})
	return p.Flags, nil
}
