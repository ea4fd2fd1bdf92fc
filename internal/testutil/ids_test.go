package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqRunIDs_Sequence(t *testing.T) {
	gen := NewSeqRunIDs("test")
	assert.Equal(t, "test-000001", gen.NewRunID())
	assert.Equal(t, "test-000002", gen.NewRunID())
	assert.Equal(t, "test-000003", gen.NewRunID())
}

func TestSeqRunIDs_EmptyPrefixDefaults(t *testing.T) {
	gen := NewSeqRunIDs("")
	assert.Equal(t, "run-000001", gen.NewRunID())
}

func TestSeqRunIDs_Reset(t *testing.T) {
	gen := NewSeqRunIDs("test")
	gen.NewRunID()
	gen.NewRunID()

	gen.Reset()
	assert.Equal(t, "test-000001", gen.NewRunID())
}

func TestSeqRunIDs_ThreadSafe(t *testing.T) {
	gen := NewSeqRunIDs("test")
	const numGoroutines = 50
	const callsPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make([][]string, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		results[i] = make([]string, callsPerGoroutine)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				results[idx][j] = gen.NewRunID()
			}
		}(i)
	}

	wg.Wait()

	// No id is handed out twice.
	seen := make(map[string]bool)
	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < callsPerGoroutine; j++ {
			id := results[i][j]
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, numGoroutines*callsPerGoroutine)
}
