package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileSlot stores each key as <dir>/<key>.json, rewritten atomically via a
// temp file + rename.
type FileSlot struct {
	mu  sync.RWMutex
	dir string
}

// NewFileSlot creates a FileSlot rooted at dir. The directory is created on
// first write.
func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{dir: dir}
}

// Path returns the file backing key.
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value stored under key.
func (s *FileSlot) Get(_ context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return data, nil
}

// Set overwrites the value stored under key.
func (s *FileSlot) Set(_ context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	path := s.Path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write slot %s tmp: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename slot %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (s *FileSlot) Close() error { return nil }

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid slot key %q", key)
	}
	return nil
}
