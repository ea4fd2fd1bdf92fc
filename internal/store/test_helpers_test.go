package store

import (
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a new on-disk store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testStart is the base started_at of test fixtures; createTestRun offsets
// from it so ordering assertions have known timestamps.
var testStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// createTestRun creates a run record with recognizable field values.
func createTestRun(id, module string, startOffset time.Duration) Run {
	return Run{
		ID:            id,
		Netlist:       "designs/cpu.yaml",
		NetlistDigest: "digest-" + id,
		Module:        module,
		Iterations:    3,
		Merges:        2,
		Purges:        1,
		CellsBefore:   10,
		CellsAfter:    8,
		StartedAt:     testStart.Add(startOffset),
		DurationMS:    42,
	}
}
