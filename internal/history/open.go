package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/garrettladley/cogdash/internal/config"
	"github.com/garrettladley/cogdash/internal/paths"
	xredis "github.com/garrettladley/cogdash/internal/redis"
	"github.com/garrettladley/cogdash/internal/xslog"
)

const DefaultCapacity = config.DefaultHistorySize

// Open returns the store selected by cfg. It returns a nil Store for the none backend.
func Open(ctx context.Context, cfg config.History, logger *slog.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case config.HistoryNone:
		logger.InfoContext(ctx, "history disabled")
		return nil, nil
	case config.HistoryMemory:
		store = NewMemoryStore(cfg.Size)
	case config.HistorySQLite:
		var path string
		if path, err = paths.DB(); err != nil {
			return nil, err
		}
		store, err = OpenSQLite(ctx, path, cfg.Size)
	case config.HistoryRedis:
		client, rerr := xredis.New(ctx, xredis.Config{URL: cfg.RedisURL})
		if rerr != nil {
			return nil, rerr
		}
		store = NewRedisStore(client, DefaultRedisKey, cfg.Size)
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "history opened", xslog.Backend(string(cfg.Backend)))
	return store, nil
}
