package insight

import (
	"context"
	"net/http"
)

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	const route = "/api/health"

	var h HealthStatus
	if err := c.do(ctx, http.MethodGet, route, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
