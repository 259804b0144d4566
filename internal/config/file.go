package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// File mirrors config.toml. Unset keys stay nil so they do not clobber defaults.
type File struct {
	API     FileAPI     `toml:"api"`
	History FileHistory `toml:"history"`
}

type FileAPI struct {
	URL             *string `toml:"url"`
	Token           *string `toml:"token"`
	RequestTimeout  *string `toml:"request-timeout"`
	PipelineTimeout *string `toml:"pipeline-timeout"`
}

type FileHistory struct {
	Backend  *string `toml:"backend"`
	RedisURL *string `toml:"redis-url"`
	Size     *int    `toml:"size"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("failed to decode config: %w", err)
	}
	for key, v := range map[string]*string{
		"api.request-timeout":  f.API.RequestTimeout,
		"api.pipeline-timeout": f.API.PipelineTimeout,
	} {
		if v == nil {
			continue
		}
		if _, err := time.ParseDuration(*v); err != nil {
			return File{}, fmt.Errorf("failed to decode config: %s: %w", key, err)
		}
	}
	return f, nil
}

func (f File) apply(cfg *Config) {
	if f.API.URL != nil {
		cfg.APIURL = *f.API.URL
	}
	if f.API.Token != nil {
		cfg.APIToken = *f.API.Token
	}
	if f.API.RequestTimeout != nil {
		// validated in LoadFile
		d, _ := time.ParseDuration(*f.API.RequestTimeout)
		cfg.RequestTimeout = d
	}
	if f.API.PipelineTimeout != nil {
		d, _ := time.ParseDuration(*f.API.PipelineTimeout)
		cfg.PipelineTimeout = d
	}
	if f.History.Backend != nil {
		cfg.History.Backend = HistoryBackend(*f.History.Backend)
	}
	if f.History.RedisURL != nil {
		cfg.History.RedisURL = *f.History.RedisURL
	}
	if f.History.Size != nil {
		cfg.History.Size = *f.History.Size
	}
}
