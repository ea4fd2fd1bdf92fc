package equiv

import (
	"sort"

	"github.com/azidar/yosys/internal/canon"
	"github.com/azidar/yosys/internal/rtl"
)

// fingerprintDomain separates structural keys from every other digest
// produced in this codebase. Forward and backward keys share the domain on
// purpose: both phases draw from one bucket index.
const fingerprintDomain = "equiv/fingerprint/v1"

// conn is one canonicalized port-bit binding of a fingerprint.
type conn struct {
	port string
	bit  int
	sig  rtl.Bit
}

// fingerprint is the structural key a cell is bucketed under: its type,
// parameters, port widths and a subset of its canonicalized connections.
// The forward key carries every input bit; a backward key carries exactly
// one output bit.
type fingerprint struct {
	typ    string
	params [][2]string
	widths [][2]any
	conns  []conn
}

// cellPrints derives the structural keys of c with every bit resolved
// through the equivalence map em: the forward key over all input bits and
// one backward key per output bit, in port name then bit order. Inout ports
// contribute to both.
func cellPrints(c *rtl.Cell, em *rtl.SigMap) (fwd fingerprint, bwd []fingerprint) {
	base := fingerprint{typ: c.Type}
	for _, p := range c.ParamNames() {
		base.params = append(base.params, [2]string{p, c.Params[p]})
	}
	for _, p := range c.PortNames() {
		sig, _ := c.PortSig(p)
		base.widths = append(base.widths, [2]any{p, len(sig)})
	}

	var inputs []conn
	for _, p := range c.PortNames() {
		sig, _ := c.PortSig(p)
		bits := em.Sig(sig)
		if c.IsInput(p) {
			for i, b := range bits {
				inputs = append(inputs, conn{p, i, b})
			}
		}
		if c.IsOutput(p) {
			for i, b := range bits {
				k := base
				k.conns = []conn{{p, i, b}}
				bwd = append(bwd, k)
			}
		}
	}
	sort.Slice(inputs, func(i, j int) bool {
		if inputs[i].port != inputs[j].port {
			return inputs[i].port < inputs[j].port
		}
		return inputs[i].bit < inputs[j].bit
	})
	fwd = base
	fwd.conns = inputs
	return fwd, bwd
}

// digest flattens the fingerprint into canonical form and hashes it. Two
// cells bucket together exactly when their digests are equal.
func (f fingerprint) digest() string {
	params := make([]any, 0, len(f.params))
	for _, kv := range f.params {
		params = append(params, []any{kv[0], kv[1]})
	}
	widths := make([]any, 0, len(f.widths))
	for _, pw := range f.widths {
		widths = append(widths, []any{pw[0], pw[1]})
	}
	conns := make([]any, 0, len(f.conns))
	for _, cn := range f.conns {
		conns = append(conns, []any{cn.port, cn.bit, []any{cn.sig.Wire, cn.sig.Index}})
	}
	return canon.MustDigest(fingerprintDomain, map[string]any{
		"type":   f.typ,
		"params": params,
		"widths": widths,
		"conns":  conns,
	})
}
