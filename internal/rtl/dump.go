package rtl

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders the module as a deterministic text listing: wires and cells
// in sorted name order, cell params, ports and attributes sorted, connect
// pairs in recorded order. Two dumps of structurally identical modules are
// byte-identical, which makes the listing suitable for golden tests.
func (m *Module) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", m.Name)
	for _, name := range m.WireNames() {
		w := m.wires[name]
		fmt.Fprintf(&b, "  wire %s width %d\n", w.Name, w.Width)
	}
	for _, name := range m.CellNames() {
		c := m.cells[name]
		fmt.Fprintf(&b, "  cell %s %s\n", c.Name, c.Type)
		for _, p := range c.ParamNames() {
			fmt.Fprintf(&b, "    param %s %s\n", p, c.Params[p])
		}
		for _, p := range c.PortNames() {
			port := c.ports[p]
			fmt.Fprintf(&b, "    port %s %s %s\n", p, port.Dir, m.SigText(port.Bits))
		}
		for _, a := range c.AttrNames() {
			vals := c.attrs[a].ToSlice()
			sort.Strings(vals)
			fmt.Fprintf(&b, "    attr %s %s\n", a, strings.Join(vals, " "))
		}
	}
	for _, pair := range m.connects {
		fmt.Fprintf(&b, "  connect %s %s\n", m.SigText(pair[0]), m.SigText(pair[1]))
	}
	b.WriteString("end\n")
	return b.String()
}

// Dump renders every module of the design in sorted name order.
func (d *Design) Dump() string {
	var b strings.Builder
	for _, m := range d.Modules() {
		b.WriteString(m.Dump())
	}
	return b.String()
}
