// Package store persists sweep run history in SQLite.
//
// Each record ties one module's sweep-to-fixpoint outcome to the netlist
// document it ran on, identified by path and content digest, together with
// the options in effect and basic timing. Records are immutable: writes are
// idempotent on the run id and nothing is ever updated or deleted.
//
// Listing queries always carry a deterministic ORDER BY (started_at DESC
// with the id as bytewise tiebreaker), so identical stores produce
// identical listings.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Schema changes ride on SQLite's user_version pragma; Open applies pending
// migrations automatically, so callers never manage versions themselves.
package store
