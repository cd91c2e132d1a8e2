package tasks

import (
	"testing"
	"time"
)

func TestIDGeneratorFrozenClock(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := newIDGeneratorWithClock(func() time.Time { return frozen })

	seen := make(map[int64]bool)
	prev := int64(0)
	for i := 0; i < 100; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		if id <= prev {
			t.Fatalf("id %d not greater than %d", id, prev)
		}
		seen[id] = true
		prev = id
	}
	if first := frozen.UnixMilli(); prev != first+99 {
		t.Errorf("last id: got %d, want %d", prev, first+99)
	}
}

func TestIDGeneratorFollowsClock(t *testing.T) {
	now := time.UnixMilli(1000)
	g := newIDGeneratorWithClock(func() time.Time { return now })

	if id := g.Next(); id != 1000 {
		t.Fatalf("first: got %d, want 1000", id)
	}
	now = now.Add(5 * time.Second)
	if id := g.Next(); id != 6000 {
		t.Fatalf("after clock advance: got %d, want 6000", id)
	}
}

func TestIDGeneratorObserve(t *testing.T) {
	g := newIDGeneratorWithClock(func() time.Time { return time.UnixMilli(10) })
	g.Observe([]Task{{ID: 5}, {ID: 500}, {ID: 50}})

	if id := g.Next(); id != 501 {
		t.Errorf("got %d, want 501", id)
	}
}
