package tasks

import (
	"sync"
	"time"
)

// IDGenerator mints task ids from the wall clock in milliseconds, bumping past
// the last issued id so two tasks created in the same tick never collide.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator creates a generator using the system clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// newIDGeneratorWithClock is used by tests to freeze time.
func newIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Observe records ids already in use so Next never reissues them.
func (g *IDGenerator) Observe(list []Task) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range list {
		if t.ID > g.last {
			g.last = t.ID
		}
	}
}

// Next returns a new id strictly greater than any id issued or observed.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
