package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/cogdash/internal/validator"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestReadFrom_Precedence(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults when nothing is set",
			want: Default(),
		},
		{
			name: "file overrides defaults",
			file: `
[api]
url = "https://insights.example.com"
request-timeout = "5s"
pipeline-timeout = "0s"

[history]
backend = "memory"
size = 10
`,
			want: Config{
				APIURL:          "https://insights.example.com",
				RequestTimeout:  5 * time.Second,
				PipelineTimeout: 0,
				History:         History{Backend: HistoryMemory, Size: 10},
			},
		},
		{
			name: "environment overrides file",
			file: `
[api]
url = "https://insights.example.com"

[history]
backend = "memory"
`,
			env: map[string]string{
				"COGDASH_API_URL":          "http://127.0.0.1:9000",
				"COGDASH_API_TOKEN":        "s3cret",
				"COGDASH_HISTORY":          "redis",
				"COGDASH_REDIS_URL":        "redis://localhost:6379/0",
				"COGDASH_PIPELINE_TIMEOUT": "20m",
			},
			want: Config{
				APIURL:          "http://127.0.0.1:9000",
				APIToken:        "s3cret",
				RequestTimeout:  DefaultRequestTimeout,
				PipelineTimeout: 20 * time.Minute,
				History: History{
					Backend:  HistoryRedis,
					RedisURL: "redis://localhost:6379/0",
					Size:     DefaultHistorySize,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "missing.toml")
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			got, err := ReadFrom(path)
			if err != nil {
				t.Fatalf("ReadFrom() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantField string
	}{
		{
			name:      "relative api url",
			env:       map[string]string{"COGDASH_API_URL": "localhost:8000"},
			wantField: "api_url",
		},
		{
			name:      "redis without url",
			env:       map[string]string{"COGDASH_HISTORY": "redis"},
			wantField: "history.redis_url",
		},
		{
			name:      "unknown backend",
			env:       map[string]string{"COGDASH_HISTORY": "postgres"},
			wantField: "history.backend",
		},
		{
			name:      "negative timeout",
			env:       map[string]string{"COGDASH_REQUEST_TIMEOUT": "-1s"},
			wantField: "request_timeout",
		},
		{
			name:      "negative pipeline timeout",
			env:       map[string]string{"COGDASH_PIPELINE_TIMEOUT": "-5m"},
			wantField: "pipeline_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ReadFrom(filepath.Join(t.TempDir(), "missing.toml"))

			var verr *validator.Error
			if !errors.As(err, &verr) {
				t.Fatalf("ReadFrom() error = %v, want *validator.Error", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("expected field %q in %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestLoadFile_BadDuration(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "[api]\nrequest-timeout = \"soon\"\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile() expected error for bad duration")
	}
}
