package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/cogdash/internal/version"
)

type cogdashTransport struct {
	base      http.RoundTripper
	sessionID string
}

var _ http.RoundTripper = (*cogdashTransport)(nil)

func (t *cogdashTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, "cogdash/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	if t.sessionID != "" {
		SetRequestHeaderSessionID(req, t.sessionID)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

type TransportOption func(*cogdashTransport)

// WithBase replaces http.DefaultTransport as the underlying round tripper.
func WithBase(rt http.RoundTripper) TransportOption {
	return func(t *cogdashTransport) { t.base = rt }
}

func WithSessionID(id string) TransportOption {
	return func(t *cogdashTransport) { t.sessionID = id }
}

// NewTransport returns an http.RoundTripper with standard cogdash headers.
func NewTransport(opts ...TransportOption) http.RoundTripper {
	t := &cogdashTransport{base: http.DefaultTransport}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
