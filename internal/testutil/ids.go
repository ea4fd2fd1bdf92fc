package testutil

import (
	"fmt"
	"sync"
)

// SeqRunIDs hands out sequential run identifiers: "<prefix>-000001",
// "<prefix>-000002", and so on.
//
// Production code uses UUIDv7 run ids; injecting a SeqRunIDs instead makes
// recorded runs deterministic, so tests can assert on exact ids and golden
// output stays stable.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SeqRunIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSeqRunIDs creates a generator with the given prefix. An empty prefix
// defaults to "run".
func NewSeqRunIDs(prefix string) *SeqRunIDs {
	if prefix == "" {
		prefix = "run"
	}
	return &SeqRunIDs{prefix: prefix}
}

// NewRunID returns the next sequential identifier.
// Implements store.RunIDGenerator.
func (g *SeqRunIDs) NewRunID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%06d", g.prefix, g.n)
}

// Reset restarts the sequence. After Reset(), the next id is "<prefix>-000001".
func (g *SeqRunIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
