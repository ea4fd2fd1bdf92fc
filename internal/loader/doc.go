// Package loader reads and writes netlist documents.
//
// A document is YAML shaped like:
//
//	modules:
//	  top:
//	    wires:
//	      - {name: a, width: 1}
//	      - {name: s, width: 2}
//	    cells:
//	      - name: g1
//	        type: AND
//	        params: {INIT: "8"}
//	        ports:
//	          A: {dir: input, bits: [a]}
//	          S: {dir: input, bits: ["s[1]", "s[0]"]}
//	          Y: {dir: output, bits: [y]}
//	    connects:
//	      - {lhs: [y], rhs: [x]}
//
// Signal bits are token lists: a bare wire name expands to the whole wire,
// LSB first, and "w[i]" selects one bit. Parameter values are strings, so
// numeric constants must be quoted.
//
// Loading is strict. The YAML decoder rejects unknown fields, the decoded
// document must unify with the embedded CUE schema, and the built design
// must pass its integrity check. Saving is deterministic: the same design
// always serializes to the same bytes, and Load(Save(d)) reproduces d.
package loader
