package insight

import (
	"context"
	"net/http"
	"strings"
)

type pipelinePayload struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Output    string `json:"output"`
	Error     string `json:"error"`
}

// RunPipeline triggers the server-side analysis pipeline and waits for it to finish.
// A 200 response may still describe a failed run; check Succeeded.
func (c *Client) RunPipeline(ctx context.Context) (*PipelineOutcome, error) {
	const route = "/api/run-pipeline"

	var p pipelinePayload
	if err := c.do(ctx, http.MethodPost, route, struct{}{}, &p); err != nil {
		return nil, err
	}

	return &PipelineOutcome{
		Succeeded: IsSuccessStatus(p.Status),
		Status:    p.Status,
		Timestamp: p.Timestamp,
		Output:    p.Output,
		Error:     p.Error,
	}, nil
}

func IsSuccessStatus(status string) bool {
	return strings.Contains(status, SuccessMarker)
}
