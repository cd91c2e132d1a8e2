// Package storage mirrors the task list into a named slot of a key-value
// backend and reads it back at startup.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrSlotEmpty is returned by Slot.Get when the key holds no value.
	ErrSlotEmpty = errors.New("storage slot is empty")
	// ErrCorruptState is returned when a slot holds content that is not a
	// valid task list.
	ErrCorruptState = errors.New("corrupt task list state")
)

// Slot is a key-value backend holding whole values under string keys.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
