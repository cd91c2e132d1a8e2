package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dohr-michael/taskman/internal/tasks"
)

// memSlot is an in-memory Slot for persister tests.
type memSlot struct {
	values map[string][]byte
	getErr error
	sets   int
}

func newMemSlot() *memSlot {
	return &memSlot{values: make(map[string][]byte)}
}

func (m *memSlot) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return v, nil
}

func (m *memSlot) Set(_ context.Context, key string, value []byte) error {
	m.sets++
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memSlot) Close() error { return nil }

func TestPersisterLoadEmptySlot(t *testing.T) {
	p := NewPersister(newMemSlot(), "")

	list, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", list)
	}
	if p.Key() != DefaultKey {
		t.Errorf("key: got %q, want %q", p.Key(), DefaultKey)
	}
}

func TestPersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := newMemSlot()
	p := NewPersister(slot, "tasks")

	want := []tasks.Task{{ID: 1, Title: "X", Completed: false}}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := string(slot.values["tasks"]); got != `[{"id":1,"title":"X","completed":false}]` {
		t.Errorf("encoded: got %s", got)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPersisterSaveNilWritesEmptyArray(t *testing.T) {
	slot := newMemSlot()
	if err := NewPersister(slot, "tasks").Save(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if got := string(slot.values["tasks"]); got != "[]" {
		t.Errorf("got %s, want []", got)
	}
}

func TestPersisterLoadPreservesWhitespaceTitles(t *testing.T) {
	slot := newMemSlot()
	slot.values["tasks"] = []byte(`[{"id":1700000000000,"title":"  padded ","completed":true},{"id":2,"title":"no flag"}]`)

	got, err := NewPersister(slot, "tasks").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []tasks.Task{
		{ID: 1700000000000, Title: "  padded ", Completed: true},
		{ID: 2, Title: "no flag"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPersisterLoadCorrupt(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `[{"id":1,`,
		"null":           `null`,
		"object":         `{"id":1,"title":"x"}`,
		"wrong type":     `[{"id":"1","title":"x","completed":false}]`,
		"fractional id":  `[{"id":1.5,"title":"x"}]`,
		"missing id":     `[{"title":"x"}]`,
		"missing title":  `[{"id":1}]`,
		"null element":   `[null]`,
		"unknown field":  `[{"id":1,"title":"x","done":true}]`,
		"trailing data":  `[] []`,
		"empty document": ``,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			slot := newMemSlot()
			slot.values["tasks"] = []byte(content)

			list, err := NewPersister(slot, "tasks").Load(context.Background())
			if !errors.Is(err, ErrCorruptState) {
				t.Fatalf("expected ErrCorruptState, got %v", err)
			}
			if list == nil || len(list) != 0 {
				t.Errorf("expected empty fallback list, got %#v", list)
			}
		})
	}
}

func TestPersisterLoadBackendError(t *testing.T) {
	slot := newMemSlot()
	boom := errors.New("disk on fire")
	slot.getErr = boom

	_, err := NewPersister(slot, "tasks").Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if errors.Is(err, ErrCorruptState) {
		t.Error("backend failure must not be reported as corrupt state")
	}
}
