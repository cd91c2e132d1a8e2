package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dohr-michael/taskman/internal/config"
)

// Open returns the Slot selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Slot, error) {
	switch cfg.Driver {
	case config.DriverFile, "":
		return NewFileSlot(cfg.File.Dir), nil

	case config.DriverSQLite:
		return OpenSQLiteSlot(ctx, cfg.SQLite.Path)

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisSlot(client, cfg.Redis.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
