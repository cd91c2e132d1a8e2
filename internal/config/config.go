// Package config loads taskman's JSONC configuration and resolves its data paths.
package config

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config is the root configuration for taskman.
type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
	Log     LogConfig     `json:"log"`
}

// StorageConfig selects the backend that holds the task list slot.
type StorageConfig struct {
	Driver string       `json:"driver"` // "file", "sqlite", "redis"
	Key    string       `json:"key"`    // slot name (default: "tasks")
	File   FileConfig   `json:"file"`
	SQLite SQLiteConfig `json:"sqlite"`
	Redis  RedisConfig  `json:"redis"`
}

// FileConfig configures the file backend.
type FileConfig struct {
	Dir string `json:"dir"` // default: $TASKMAN_PATH/data
}

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	Path string `json:"path"` // default: $TASKMAN_PATH/taskman.db
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"` // Direct value or ${{ .Env.VAR }} template
	DB       int    `json:"db"`
	Prefix   string `json:"prefix"` // key prefix (default: "taskman:")
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme       string `json:"theme"` // initial theme: "light" | "dark"
	Placeholder string `json:"placeholder,omitempty"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `json:"level"` // "debug", "info", "warn", "error"
	File  string `json:"file"`  // default: $TASKMAN_PATH/taskman.log
}
