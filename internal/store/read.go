package store

import (
	"context"
	"fmt"
)

// runColumns is the SELECT list every run query shares, in scanRun order.
const runColumns = `id, netlist, netlist_digest, module, iterations, merges, purges,
	cells_before, cells_after, forward_only, include_internal, capped,
	started_at, duration_ms`

// ListRuns returns the recorded runs matching the filter, newest first.
// Ordering is deterministic: started_at DESC with the id as tiebreaker
// (ORDER BY started_at DESC, id COLLATE BINARY ASC).
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) ListRuns(ctx context.Context, f RunFilter) ([]Run, error) {
	suffix, params := f.compile()
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM sweep_runs"+suffix, params...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	if runs == nil {
		runs = []Run{}
	}

	return runs, nil
}

// RunsForModule returns every recorded run of one module, newest first.
func (s *Store) RunsForModule(ctx context.Context, module string) ([]Run, error) {
	return s.ListRuns(ctx, RunFilter{Module: module})
}

// ReadRun retrieves a single run by ID.
// A missing ID yields an error satisfying errors.Is(err, sql.ErrNoRows).
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM sweep_runs WHERE id = ?", id)
	return scanRun(row)
}

// CountRuns returns the total number of recorded runs.
func (s *Store) CountRuns(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sweep_runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

// scanner is the common subset of sql.Row and sql.Rows that scanRun needs.
type scanner interface {
	Scan(dest ...any) error
}

// scanRun reads one run record in runColumns order.
func scanRun(sc scanner) (Run, error) {
	var r Run
	var startedAt string

	err := sc.Scan(
		&r.ID,
		&r.Netlist,
		&r.NetlistDigest,
		&r.Module,
		&r.Iterations,
		&r.Merges,
		&r.Purges,
		&r.CellsBefore,
		&r.CellsAfter,
		&r.ForwardOnly,
		&r.IncludeInternal,
		&r.Capped,
		&startedAt,
		&r.DurationMS,
	)
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	r.StartedAt, err = parseStartedAt(startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("scan run %s: bad started_at: %w", r.ID, err)
	}

	return r, nil
}
