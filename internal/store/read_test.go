package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestListRuns_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	runs, err := s.ListRuns(context.Background(), RunFilter{})
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if runs == nil {
		t.Error("ListRuns() returned nil, expected empty slice")
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Insert out of chronological order
	for _, fix := range []struct {
		id     string
		offset time.Duration
	}{
		{"run-b", time.Minute},
		{"run-c", 2 * time.Minute},
		{"run-a", 0},
	} {
		if err := s.WriteRun(ctx, createTestRun(fix.id, "top", fix.offset)); err != nil {
			t.Fatalf("WriteRun(%s) failed: %v", fix.id, err)
		}
	}

	runs, err := s.ListRuns(ctx, RunFilter{})
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}

	want := []string{"run-c", "run-b", "run-a"}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(runs))
	}
	for i, id := range want {
		if runs[i].ID != id {
			t.Errorf("runs[%d].ID = %s, expected %s", i, runs[i].ID, id)
		}
	}
}

func TestListRuns_TiebreakOnID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Identical started_at: ordering falls back to bytewise id order.
	for _, id := range []string{"run-y", "run-x", "run-z"} {
		if err := s.WriteRun(ctx, createTestRun(id, "top", 0)); err != nil {
			t.Fatalf("WriteRun(%s) failed: %v", id, err)
		}
	}

	runs, err := s.ListRuns(ctx, RunFilter{})
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}

	want := []string{"run-x", "run-y", "run-z"}
	for i, id := range want {
		if runs[i].ID != id {
			t.Errorf("runs[%d].ID = %s, expected %s", i, runs[i].ID, id)
		}
	}
}

func TestListRuns_FilterByModule(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seedRuns(t, s)

	runs, err := s.ListRuns(ctx, RunFilter{Module: "alu"})
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 alu runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Module != "alu" {
			t.Errorf("filter leaked module %s", r.Module)
		}
	}
}

func TestListRuns_FilterByDigest(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seedRuns(t, s)

	runs, err := s.ListRuns(ctx, RunFilter{NetlistDigest: "digest-run-1"})
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" {
		t.Errorf("digest filter returned %+v, expected only run-1", runs)
	}
}

func TestListRuns_CombinedFiltersAndLimit(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seedRuns(t, s)

	runs, err := s.ListRuns(ctx, RunFilter{
		Module:  "alu",
		Netlist: "designs/cpu.yaml",
		Limit:   1,
	})
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected limit to cap at 1 run, got %d", len(runs))
	}
	// Newest alu run wins the single slot.
	if runs[0].ID != "run-3" {
		t.Errorf("limited listing returned %s, expected run-3", runs[0].ID)
	}
}

func TestRunsForModule(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seedRuns(t, s)

	runs, err := s.RunsForModule(ctx, "decoder")
	if err != nil {
		t.Fatalf("RunsForModule() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-2" {
		t.Errorf("RunsForModule(decoder) returned %+v", runs)
	}
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "no-such-run")
	if err == nil {
		t.Fatal("expected error for missing run, got nil")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

// seedRuns inserts three runs: alu twice (run-1 oldest, run-3 newest) and
// decoder once (run-2).
func seedRuns(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	r1 := createTestRun("run-1", "alu", 0)
	r2 := createTestRun("run-2", "decoder", time.Minute)
	r3 := createTestRun("run-3", "alu", 2*time.Minute)
	for _, r := range []Run{r1, r2, r3} {
		if err := s.WriteRun(ctx, r); err != nil {
			t.Fatalf("WriteRun(%s) failed: %v", r.ID, err)
		}
	}
}
