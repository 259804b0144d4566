package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig  = ".config"
	appName    = "cogdash"
	dbName     = "history.db"
	logName    = "cogdash.log"
	configName = "config.toml"
)

// Dir returns $XDG_CONFIG_HOME/cogdash, falling back to ~/.config/cogdash.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

func DB() (string, error)         { return file(dbName) }
func Log() (string, error)        { return file(logName) }
func ConfigFile() (string, error) { return file(configName) }

func file(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
