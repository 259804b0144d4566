package xslog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/garrettladley/cogdash/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Interval(d time.Duration) slog.Attr {
	const intervalKey = "interval"
	return slog.Duration(intervalKey, d)
}

func Severity(severity fmt.Stringer) slog.Attr {
	const severityKey = "severity"
	return slog.String(severityKey, severity.String())
}

func PipelineStatus(status string) slog.Attr {
	const pipelineStatusKey = "pipeline_status"
	return slog.String(pipelineStatusKey, status)
}

func Backend(name string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, name)
}

// Operation names the dashboard operation or CLI command a record belongs to.
func Operation(op string) slog.Attr {
	const operationKey = "op"
	return slog.String(operationKey, op)
}
