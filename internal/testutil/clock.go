// Package testutil provides deterministic helpers shared by the harness
// and the package tests.
package testutil

import "sync"

// SeqClock is a monotonic logical sequence source.
//
// The harness recorder stamps every resolver application with a seq from
// a SeqClock, so trace ordering reflects resolution order and never
// wall-clock time. Two runs of the same schedule produce identical seqs,
// which is what makes golden-file comparison of traces possible.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex. Resolution itself is sequential, but a single clock may be
// shared across subtests.
type SeqClock struct {
	mu  sync.Mutex
	seq int64
}

// NewSeqClock creates a sequence clock starting at 0.
//
// The first call to Next() returns 1.
func NewSeqClock() *SeqClock {
	return &SeqClock{seq: 0}
}

// Next increments and returns the next sequence number.
//
// Monotonic: always returns seq+1, never decreases.
func (c *SeqClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *SeqClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the clock to 0.
//
// Used for reuse across subtests. After Reset(), the next call to Next()
// returns 1.
func (c *SeqClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
