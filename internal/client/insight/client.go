package insight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/cogdash/internal/xhttp"
	"github.com/garrettladley/cogdash/internal/xslog"
)

// Client talks to the analytics service that computes the dashboard metrics and
// runs the analysis pipeline. It holds no state between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	sessionID  string
	token      string
}

type Option func(*clientConfig)

// WithHTTPClient replaces the default client entirely; session and token options are ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithSessionID(sessionID string) Option {
	return func(cfg *clientConfig) { cfg.sessionID = sessionID }
}

// WithToken sends the token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(cfg *clientConfig) { cfg.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		var transport http.RoundTripper = xhttp.NewTransport(xhttp.WithSessionID(cfg.sessionID))
		if cfg.token != "" {
			transport = &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.token, TokenType: "Bearer"}),
				Base:   transport,
			}
		}
		// deadlines come from each caller's context; a pipeline run can take minutes
		httpClient = xhttp.NewHTTPClient(xhttp.WithTransport(transport))
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.logger,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(ctx context.Context, method string, path string, body any, result any) error {
	op := method + " " + path
	logger := xslog.FromContext(ctx, c.logger)

	var reqBody io.Reader
	if body != nil {
		b, err := go_json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Op: op, Message: "encoding request", Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Message: "creating request", Err: err}
	}
	xhttp.SetRequestHeaderAcceptJSON(req)
	if body != nil {
		xhttp.SetRequestHeaderContentTypeJSON(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.DebugContext(ctx, "request failed",
			xslog.Method(method), xslog.Path(path), xslog.Duration(time.Since(start)), xslog.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			return &Error{Kind: KindTimeout, Op: op, Message: "request timed out", Err: err}
		}
		return &Error{Kind: KindNetwork, Op: op, Message: "service unreachable", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.DebugContext(ctx, "request completed",
		xslog.Method(method), xslog.Path(path), xslog.HTTPStatus(resp.StatusCode), xslog.Duration(time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseStatusError(op, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Message: "reading response", Err: err}
	}
	if err := go_json.Unmarshal(raw, result); err != nil {
		return &Error{Kind: KindDecode, Op: op, Message: "invalid response body", Err: fmt.Errorf("%w: %s", err, truncate(raw, 200))}
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
