package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/taskman/internal/config"
	"github.com/dohr-michael/taskman/internal/storage"
	"github.com/dohr-michael/taskman/internal/tasks"
)

// appRuntime is the wiring shared by every command: config, logging, the
// storage slot and a Store seeded from it.
type appRuntime struct {
	cfg       *config.Config
	slot      storage.Slot
	persister *storage.Persister
	store     *tasks.Store
	closeLog  func() error
}

func openRuntime(ctx context.Context, cmd *cli.Command) (*appRuntime, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	closeLog, err := setupLogging(cfg.Log, cmd.Bool("debug"))
	if err != nil {
		return nil, err
	}

	slot, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	persister := storage.NewPersister(slot, cfg.Storage.Key)
	list, err := persister.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptState) {
			slot.Close()
			closeLog()
			return nil, err
		}
		slog.Warn("starting with an empty task list", "driver", cfg.Storage.Driver, "key", persister.Key(), "error", err)
	}
	slog.Debug("task list loaded", "driver", cfg.Storage.Driver, "count", len(list))

	return &appRuntime{
		cfg:       cfg,
		slot:      slot,
		persister: persister,
		store:     tasks.NewStore(list),
		closeLog:  closeLog,
	}, nil
}

// mirror saves the list after every dispatch and returns the first save
// error through errp.
func (r *appRuntime) mirror(ctx context.Context, errp *error) func() {
	return r.store.Subscribe(func(list []tasks.Task) {
		if err := r.persister.Save(ctx, list); err != nil && *errp == nil {
			*errp = err
		}
	})
}

func (r *appRuntime) Close() error {
	err := r.slot.Close()
	if cerr := r.closeLog(); err == nil {
		err = cerr
	}
	return err
}

// setupLogging points the default slog logger at the configured log file.
// The terminal belongs to the TUI, so nothing is logged to stdout.
func setupLogging(cfg config.LogConfig, debug bool) (func() error, error) {
	level := parseLevel(cfg.Level)
	if debug {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f.Close, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
