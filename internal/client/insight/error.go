package insight

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"
)

type Kind uint8

const (
	// KindNetwork covers unreachable hosts and cancelled requests.
	KindNetwork Kind = iota + 1
	// KindStatus is a non-2xx HTTP response.
	KindStatus
	// KindDecode is a 2xx response whose body could not be decoded.
	KindDecode
	// KindTimeout is a request that outlived its context deadline.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is the single failure type returned by Client. Its message is meant to be
// shown to the user as-is.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// parseStatusError never treats the body as a payload; it only mines it for a message.
func parseStatusError(op string, resp *http.Response) error {
	e := &Error{Kind: KindStatus, Op: op, StatusCode: resp.StatusCode, Message: resp.Status}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil || len(body) == 0 {
		return e
	}

	var errResp struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := go_json.Unmarshal(body, &errResp); err != nil {
		e.Message = strings.TrimSpace(string(body))
		return e
	}

	switch {
	case errResp.Message != "":
		e.Message = errResp.Message
	case errResp.Error != "":
		e.Message = errResp.Error
	case errResp.Detail != nil:
		if s, ok := errResp.Detail.(string); ok {
			e.Message = s
		} else {
			e.Message = fmt.Sprint(errResp.Detail)
		}
	}
	return e
}
