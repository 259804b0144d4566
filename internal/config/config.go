package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/cogdash/internal/paths"
	"github.com/garrettladley/cogdash/internal/validator"
)

const (
	DefaultAPIURL          = "http://localhost:8000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultPipelineTimeout = 10 * time.Minute
	DefaultHistorySize     = 30
)

type HistoryBackend string

const (
	HistorySQLite HistoryBackend = "sqlite"
	HistoryRedis  HistoryBackend = "redis"
	HistoryMemory HistoryBackend = "memory"
	HistoryNone   HistoryBackend = "none"
)

type Config struct {
	APIURL         string        `env:"COGDASH_API_URL"`
	APIToken       string        `env:"COGDASH_API_TOKEN"`
	RequestTimeout time.Duration `env:"COGDASH_REQUEST_TIMEOUT"`
	// PipelineTimeout bounds a pipeline run, which the service answers only once
	// every step has finished. Zero means no bound.
	PipelineTimeout time.Duration `env:"COGDASH_PIPELINE_TIMEOUT"`
	History         History
}

type History struct {
	Backend  HistoryBackend `env:"COGDASH_HISTORY"`
	RedisURL string         `env:"COGDASH_REDIS_URL"`
	Size     int            `env:"COGDASH_HISTORY_SIZE"`
}

var _ validator.Validator = (*Config)(nil)

func Default() Config {
	return Config{
		APIURL:          DefaultAPIURL,
		RequestTimeout:  DefaultRequestTimeout,
		PipelineTimeout: DefaultPipelineTimeout,
		History: History{
			Backend: HistorySQLite,
			Size:    DefaultHistorySize,
		},
	}
}

// Read layers defaults, the optional TOML file and the environment, in that order.
func Read() (Config, error) {
	path, err := paths.ConfigFile()
	if err != nil {
		return Config{}, err
	}
	return ReadFrom(path)
}

func ReadFrom(path string) (Config, error) {
	cfg := Default()

	file, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	file.apply(&cfg)

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() map[string]string {
	errs := make(map[string]string)

	if u, err := url.Parse(c.APIURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs["api_url"] = fmt.Sprintf("must be an absolute http(s) URL, got %q", c.APIURL)
	}
	if c.RequestTimeout < 0 {
		errs["request_timeout"] = "must not be negative"
	}
	if c.PipelineTimeout < 0 {
		errs["pipeline_timeout"] = "must not be negative"
	}

	switch c.History.Backend {
	case HistorySQLite, HistoryMemory, HistoryNone:
	case HistoryRedis:
		if c.History.RedisURL == "" {
			errs["history.redis_url"] = "required when history backend is redis"
		}
	default:
		errs["history.backend"] = fmt.Sprintf("unknown backend %q (valid: sqlite, redis, memory, none)", c.History.Backend)
	}
	if c.History.Size < 0 {
		errs["history.size"] = "must not be negative"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
