package store

import "time"

// Run records one sweep of a single module to fixpoint. The record ties the
// sweep outcome to the netlist document it ran on (path plus content digest)
// and the options in effect, so stats stay traceable to their input.
type Run struct {
	ID              string    `json:"id"`
	Netlist         string    `json:"netlist"`
	NetlistDigest   string    `json:"netlist_digest"`
	Module          string    `json:"module"`
	Iterations      int       `json:"iterations"`
	Merges          int       `json:"merges"`
	Purges          int       `json:"purges"`
	CellsBefore     int       `json:"cells_before"`
	CellsAfter      int       `json:"cells_after"`
	ForwardOnly     bool      `json:"forward_only"`
	IncludeInternal bool      `json:"include_internal"`
	Capped          bool      `json:"capped"`
	StartedAt       time.Time `json:"started_at"`
	DurationMS      int64     `json:"duration_ms"`
}

// startedAtFormat is the TEXT encoding of Run.StartedAt. Always stored in
// UTC so rows written by different hosts compare sanely.
const startedAtFormat = time.RFC3339Nano

func formatStartedAt(t time.Time) string {
	return t.UTC().Format(startedAtFormat)
}

func parseStartedAt(s string) (time.Time, error) {
	return time.Parse(startedAtFormat, s)
}
