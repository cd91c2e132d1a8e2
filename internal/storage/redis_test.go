package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dohr-michael/taskman/internal/config"
	"github.com/dohr-michael/taskman/internal/tasks"
)

func startRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr
}

func TestRedisSlotGetSet(t *testing.T) {
	ctx := context.Background()
	mr := startRedis(t)

	slot := NewRedisSlot(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "taskman:")
	defer slot.Close()

	if _, err := slot.Get(ctx, "tasks"); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	want := []tasks.Task{{ID: 1, Title: "X"}}
	p := NewPersister(slot, "tasks")
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := mr.Get("taskman:tasks")
	if err != nil {
		t.Fatalf("miniredis get: %v", err)
	}
	if raw != `[{"id":1,"title":"X","completed":false}]` {
		t.Errorf("stored value: got %s", raw)
	}
	if ttl := mr.TTL("taskman:tasks"); ttl != 0 {
		t.Errorf("expected no expiry, got %v", ttl)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRedisSlotCorruptValue(t *testing.T) {
	mr := startRedis(t)
	if err := mr.Set("taskman:tasks", "not json"); err != nil {
		t.Fatal(err)
	}

	slot := NewRedisSlot(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "taskman:")
	defer slot.Close()

	list, err := NewPersister(slot, "tasks").Load(context.Background())
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}
}

func TestOpenDrivers(t *testing.T) {
	ctx := context.Background()
	mr := startRedis(t)
	dir := t.TempDir()

	cfg := config.StorageConfig{
		File:   config.FileConfig{Dir: dir},
		SQLite: config.SQLiteConfig{Path: dir + "/taskman.db"},
		Redis:  config.RedisConfig{Addr: mr.Addr(), Prefix: "t:"},
	}

	for _, driver := range []string{config.DriverFile, config.DriverSQLite, config.DriverRedis} {
		t.Run(driver, func(t *testing.T) {
			c := cfg
			c.Driver = driver
			slot, err := Open(ctx, c)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer slot.Close()

			if err := slot.Set(ctx, "tasks", []byte("[]")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got, err := slot.Get(ctx, "tasks"); err != nil || string(got) != "[]" {
				t.Errorf("Get: %q, %v", got, err)
			}
		})
	}

	if _, err := Open(ctx, config.StorageConfig{Driver: "etcd"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
