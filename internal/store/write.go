package store

import (
	"context"
	"fmt"
)

// WriteRun inserts a run record into the store.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations (e.g., NOT NULL) will still
// return errors.
func (s *Store) WriteRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sweep_runs
		(id, netlist, netlist_digest, module, iterations, merges, purges,
		 cells_before, cells_after, forward_only, include_internal, capped,
		 started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.Netlist,
		r.NetlistDigest,
		r.Module,
		r.Iterations,
		r.Merges,
		r.Purges,
		r.CellsBefore,
		r.CellsAfter,
		r.ForwardOnly,
		r.IncludeInternal,
		r.Capped,
		formatStartedAt(r.StartedAt),
		r.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}
