package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dohr-michael/taskman/internal/tasks"
)

// DefaultKey is the slot holding the task list.
const DefaultKey = "tasks"

// Persister loads and saves the whole task list as one JSON array in a slot.
type Persister struct {
	slot Slot
	key  string
}

// NewPersister creates a Persister writing to key in slot.
func NewPersister(slot Slot, key string) *Persister {
	if key == "" {
		key = DefaultKey
	}
	return &Persister{slot: slot, key: key}
}

// Key returns the slot name.
func (p *Persister) Key() string { return p.key }

// Load reads the persisted list. An empty slot yields an empty list. Content
// that does not decode as a task list yields an empty list and an error
// wrapping ErrCorruptState, so callers can warn and carry on.
func (p *Persister) Load(ctx context.Context) ([]tasks.Task, error) {
	data, err := p.slot.Get(ctx, p.key)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return []tasks.Task{}, nil
		}
		return []tasks.Task{}, fmt.Errorf("load %s: %w", p.key, err)
	}

	list, err := decodeList(data)
	if err != nil {
		return []tasks.Task{}, fmt.Errorf("load %s: %w: %v", p.key, ErrCorruptState, err)
	}
	return list, nil
}

// Save overwrites the slot with the full list.
func (p *Persister) Save(ctx context.Context, list []tasks.Task) error {
	if list == nil {
		list = []tasks.Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", p.key, err)
	}
	if err := p.slot.Set(ctx, p.key, data); err != nil {
		return fmt.Errorf("save %s: %w", p.key, err)
	}
	return nil
}

// record mirrors tasks.Task with presence tracking for required fields.
type record struct {
	ID        *int64  `json:"id"`
	Title     *string `json:"title"`
	Completed bool    `json:"completed"`
}

func decodeList(data []byte) ([]tasks.Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected a JSON array")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after task array")
	}

	list := make([]tasks.Task, 0, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, fmt.Errorf("task %d: missing id", i)
		}
		if r.Title == nil {
			return nil, fmt.Errorf("task %d: missing title", i)
		}
		list = append(list, tasks.Task{ID: *r.ID, Title: *r.Title, Completed: r.Completed})
	}
	return list, nil
}
