package rtl

import (
	"fmt"
	"sort"
	"strconv"
)

// Cell type and port names of the built-in equivalence assertion.
const (
	EquivType  = "$equiv"
	EquivPortA = "A"
	EquivPortB = "B"
	EquivPortY = "Y"
)

// IsInternalType reports whether a cell type tag names an internal
// primitive ("$"-prefixed) rather than a library gate or submodule type.
func IsInternalType(typ string) bool {
	return len(typ) > 0 && typ[0] == '$'
}

// Wire is a named bus of one or more bits.
type Wire struct {
	Name  string
	Width int
}

// Bit returns the i'th bit of the wire.
func (w *Wire) Bit(i int) Bit {
	return Bit{Wire: w.Name, Index: i}
}

// Sig returns the full signal of the wire, LSB first.
func (w *Wire) Sig() Sig {
	s := make(Sig, w.Width)
	for i := 0; i < w.Width; i++ {
		s[i] = Bit{Wire: w.Name, Index: i}
	}
	return s
}

// Module owns a set of wires, a set of cells and a list of connect pairs.
// Wires and cells live in separate namespaces, each keyed by name.
//
// A Module is not safe for concurrent mutation. Passes own the module
// exclusively while they run.
type Module struct {
	Name string

	wires    map[string]*Wire
	cells    map[string]*Cell
	connects [][2]Sig
	autoidx  int
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		Name:  name,
		wires: make(map[string]*Wire),
		cells: make(map[string]*Cell),
	}
}

// AddWire declares a wire. Width must be positive and the name unused.
func (m *Module) AddWire(name string, width int) *Wire {
	if width < 1 {
		panic(fmt.Sprintf("rtl: wire %s in module %s: width %d < 1", name, m.Name, width))
	}
	if _, ok := m.wires[name]; ok {
		panic(fmt.Sprintf("rtl: module %s already has wire %s", m.Name, name))
	}
	w := &Wire{Name: name, Width: width}
	m.wires[name] = w
	return w
}

// Wire looks up a wire by name, nil if absent.
func (m *Module) Wire(name string) *Wire {
	return m.wires[name]
}

// WireNames returns all wire names in sorted order.
func (m *Module) WireNames() []string {
	names := make([]string, 0, len(m.wires))
	for n := range m.wires {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AddCell instantiates a cell of the given type. The name must be unused.
func (m *Module) AddCell(name, typ string) *Cell {
	if _, ok := m.cells[name]; ok {
		panic(fmt.Sprintf("rtl: module %s already has cell %s", m.Name, name))
	}
	c := newCell(name, typ)
	m.cells[name] = c
	return c
}

// Cell looks up a cell by name, nil if absent. Passes use the nil result to
// recognize members removed earlier in the same pass.
func (m *Module) Cell(name string) *Cell {
	return m.cells[name]
}

// CellNames returns all cell names in sorted order.
func (m *Module) CellNames() []string {
	names := make([]string, 0, len(m.cells))
	for n := range m.cells {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CellCount returns the number of live cells.
func (m *Module) CellCount() int {
	return len(m.cells)
}

// RemoveCell deletes a cell from the module. The cell's output wires stay;
// callers redirect fanout via Connect before removing a driver.
func (m *Module) RemoveCell(name string) {
	if _, ok := m.cells[name]; !ok {
		panic(fmt.Sprintf("rtl: module %s has no cell %s to remove", m.Name, name))
	}
	delete(m.cells, name)
}

// Connect records that lhs aliases rhs, bit by bit. Canonicalization through
// a SigMap resolves lhs bits toward rhs representatives, so rhs should be
// the driving side. Widths must match.
func (m *Module) Connect(lhs, rhs Sig) {
	if len(lhs) != len(rhs) {
		panic(fmt.Sprintf("rtl: connect width mismatch in module %s: %d vs %d bits",
			m.Name, len(lhs), len(rhs)))
	}
	m.connects = append(m.connects, [2]Sig{lhs.Clone(), rhs.Clone()})
}

// Connections returns the recorded connect pairs in insertion order.
// Callers must not modify the returned slice.
func (m *Module) Connections() [][2]Sig {
	return m.connects
}

// AddEquiv instantiates an equivalence assertion cell: A and B are asserted
// equal, witnessed on the fresh output bit Y.
func (m *Module) AddEquiv(name string, a, b, y Bit) *Cell {
	c := m.AddCell(name, EquivType)
	c.AddPort(EquivPortA, DirInput, Sig{a})
	c.AddPort(EquivPortB, DirInput, Sig{b})
	c.AddPort(EquivPortY, DirOutput, Sig{y})
	return c
}

// NewID returns a fresh "$auto$<tag>$<n>" identifier unused by any wire or
// cell of the module. The counter is module-local, so identical build
// sequences allocate identical names.
func (m *Module) NewID(tag string) string {
	for {
		m.autoidx++
		name := "$auto$" + tag + "$" + strconv.Itoa(m.autoidx)
		if m.wires[name] == nil && m.cells[name] == nil {
			return name
		}
	}
}

// SigFromTokens resolves signal tokens against the module's wires. A plain
// "w" token expands to the whole wire, LSB first; "w[i]" selects one bit.
func (m *Module) SigFromTokens(tokens []string) (Sig, error) {
	var sig Sig
	for _, tok := range tokens {
		wire, idx, indexed, err := parseBitToken(tok)
		if err != nil {
			return nil, err
		}
		w := m.Wire(wire)
		if w == nil {
			return nil, fmt.Errorf("unknown wire %q in module %s", wire, m.Name)
		}
		if !indexed {
			sig = append(sig, w.Sig()...)
			continue
		}
		if idx >= w.Width {
			return nil, fmt.Errorf("bit %s out of range: wire %s has width %d", tok, wire, w.Width)
		}
		sig = append(sig, w.Bit(idx))
	}
	return sig, nil
}

// SigTokens renders a signal as the shortest token list SigFromTokens
// accepts: runs covering a whole wire collapse to "w", other bits render
// as "w[i]".
func (m *Module) SigTokens(s Sig) []string {
	var tokens []string
	for i := 0; i < len(s); {
		b := s[i]
		w := m.Wire(b.Wire)
		if w != nil && b.Index == 0 && i+w.Width <= len(s) {
			whole := true
			for j := 0; j < w.Width; j++ {
				if s[i+j] != (Bit{Wire: b.Wire, Index: j}) {
					whole = false
					break
				}
			}
			if whole {
				tokens = append(tokens, b.Wire)
				i += w.Width
				continue
			}
		}
		tokens = append(tokens, b.String())
		i++
	}
	return tokens
}

// SigText renders a signal in token form, braced when it takes more than
// one token. Used by dumps and log lines.
func (m *Module) SigText(s Sig) string {
	tokens := m.SigTokens(s)
	switch len(tokens) {
	case 0:
		return "{}"
	case 1:
		return tokens[0]
	}
	out := "{ "
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out + " }"
}
