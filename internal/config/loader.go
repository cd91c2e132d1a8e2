package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tailscale/hujson"
)

var envTemplateRe = regexp.MustCompile(`\$\{\{\s*\.Env\.(\w+)\s*\}\}`)

// Load reads a JSONC config file, expands ${{ .Env.VAR }} templates,
// standardizes it to JSON, unmarshals it into Config, and applies defaults.
// A missing file yields the default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes JSONC config content and applies defaults.
func Parse(data []byte) (*Config, error) {
	// Expand before standardizing, templates live inside strings
	expanded := expandEnvTemplates(string(data))

	std, err := hujson.Standardize([]byte(expanded))
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// expandEnvTemplates replaces ${{ .Env.VAR }} with the env var value.
func expandEnvTemplates(s string) string {
	return envTemplateRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := envTemplateRe.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		return os.Getenv(parts[1])
	})
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverFile
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "tasks"
	}
	if cfg.Storage.File.Dir == "" {
		cfg.Storage.File.Dir = filepath.Join(DataPath(), "data")
	}
	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = filepath.Join(DataPath(), "taskman.db")
	}
	if cfg.Storage.Redis.Addr == "" {
		cfg.Storage.Redis.Addr = "127.0.0.1:6379"
	}
	if cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = "taskman:"
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "light"
	}
	if cfg.UI.Placeholder == "" {
		cfg.UI.Placeholder = "Add new task"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = LogPath()
	}
}
