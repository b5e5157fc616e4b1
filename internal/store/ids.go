package store

import (
	"sync"
	"time"
)

// IDGenerator issues strictly increasing int64 ids from a clock+sequence
// pair. Ids double as creation-order keys: when several entities are created
// within one clock tick the sequence part keeps them distinct and ordered.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates a generator seeded from the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NextID returns an id strictly greater than every id previously returned or
// observed by this generator.
func (g *IDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		g.last++
	} else {
		g.last = now
	}
	return g.last
}

// Observe raises the floor so future ids stay above ids loaded from a
// persisted snapshot.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

// Timestamp converts an id back to the creation time it encodes. Entities
// stamped this way share the generator's clock, so timestamps are
// monotonically non-decreasing in id order.
func Timestamp(id int64) time.Time {
	return time.UnixMilli(id)
}
