// Package equiv deduplicates structurally identical cells in combinational
// netlists and infers new bit-level equivalences, assuming a gold and a gate
// netlist that are structurally equivalent.
//
// One sweep works in three stages over a module it owns exclusively:
//
//  1. Canonicalize. An alias layer resolves each bit through the module's
//     connect pairs; an equivalence layer extends it with B→A mappings taken
//     from existing $equiv cells. Provably redundant $equiv cells are purged
//     first, and any purge ends the sweep so stale key material is never
//     acted on.
//
//  2. Fingerprint. Every eligible cell is keyed by type, parameters, port
//     widths and canonicalized connections: once over all input bits (the
//     forward key) and once per output bit (backward keys). Matching forward
//     keys identify cells that compute the same value; matching backward
//     keys identify cells whose outputs were already proven equal.
//
//  3. Merge. Buckets that gained a second member are folded to one survivor
//     ("_gold"-suffixed names win, then the smallest name). Input bits that
//     still differ get a fresh $equiv assertion instead of being assumed
//     equal, the gate cell's fanout is redirected by connecting its output
//     signals to the survivor's, and the fold is recorded in the survivor's
//     "equiv_merged" attribute. The first fold ends the sweep.
//
// The driver repeats fresh sweeps until one performs zero actions. Nothing
// carries over between sweeps: every iteration rebuilds its canonical maps
// and buckets from current module state.
//
// The sweep only ever exploits structural identity and previously recorded
// equivalences. It performs no semantic reasoning, so netlists that are
// functionally but not structurally equivalent stay untouched.
package equiv
