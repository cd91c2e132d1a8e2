package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS slots (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteSlot stores values in a single key/value table.
type SQLiteSlot struct {
	db *sql.DB
}

// OpenSQLiteSlot opens (or creates) the database at path and ensures the
// schema exists. Use ":memory:" for a throwaway database.
func OpenSQLiteSlot(ctx context.Context, path string) (*SQLiteSlot, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps ":memory:" databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

// Get reads the value stored under key.
func (s *SQLiteSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("select slot %s: %w", key, err)
	}
	return value, nil
}

// Set overwrites the value stored under key.
func (s *SQLiteSlot) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
