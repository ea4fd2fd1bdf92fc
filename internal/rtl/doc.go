// Package rtl models gate-level netlists as mutable circuit graphs.
//
// A Design holds named Modules; a Module owns Wires and Cells. All
// cross-references are expressed as immutable identifiers (wire name plus
// bit index), never as ownership pointers, so graph surgery can remove and
// rewire nodes without chasing back-references.
//
// Module-level connect pairs declare that two signals alias each other.
// They are not resolved eagerly: a SigMap built from the module folds the
// recorded pairs into a union-find structure and canonicalizes any Bit to
// one representative per alias class. Passes that mutate the graph rebuild
// their SigMap afterwards instead of patching it incrementally.
//
// The package knows one special cell type, "$equiv", with single-bit ports
// A, B and Y. It asserts that A and B carry the same value, witnessed on Y.
// Equivalence sweeps both consume and produce these cells.
package rtl
