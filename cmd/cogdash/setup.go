package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/config"
	"github.com/garrettladley/cogdash/internal/history"
	"github.com/garrettladley/cogdash/internal/paths"
	"github.com/garrettladley/cogdash/internal/session"
	"github.com/garrettladley/cogdash/internal/xslog"
)

// logSink is the per-process log file and the session-tagged logger writing to it.
type logSink struct {
	logger    *slog.Logger
	sessionID string
	close     func() error
}

// openLog opens the log file and stores the logger in cmd's context, tagged with
// the command name, so every call site below the command can find it.
func openLog(cmd *cobra.Command) (*logSink, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	logPath, err := paths.Log()
	if err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	sessionID := session.NewID()
	logger := xslog.NewLoggerFromEnv(logFile).With(xslog.SessionID(sessionID))
	cmd.SetContext(xslog.WithAttrs(cmd.Context(), logger, xslog.Operation(cmd.Name())))

	return &logSink{logger: logger, sessionID: sessionID, close: logFile.Close}, nil
}

// log returns the logger stored in ctx by openLog.
func (l *logSink) log(ctx context.Context) *slog.Logger {
	return xslog.FromContext(ctx, l.logger)
}

// app holds what every command that talks to the analytics service needs.
type app struct {
	*logSink
	cfg     config.Config
	insight *insight.Client
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	sink, err := openLog(cmd)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	sink.log(ctx).InfoContext(ctx, "starting", slog.String("api_url", cfg.APIURL))

	opts := []insight.Option{
		insight.WithLogger(sink.logger),
		insight.WithSessionID(sink.sessionID),
	}
	if cfg.APIToken != "" {
		opts = append(opts, insight.WithToken(cfg.APIToken))
	}

	return &app{
		logSink: sink,
		cfg:     cfg,
		insight: insight.New(cfg.APIURL, opts...),
	}, nil
}

// withTimeout bounds ctx by d; zero leaves it unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// openHistory opens the configured store. A nil store means history is disabled.
func (a *app) openHistory(ctx context.Context) (history.Store, error) {
	store, err := history.Open(ctx, a.cfg.History, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}
