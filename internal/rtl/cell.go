package rtl

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Dir classifies a cell port.
type Dir int

const (
	DirInput Dir = iota
	DirOutput
	DirInout
)

// String returns the lowercase direction keyword used in netlist documents.
func (d Dir) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirInout:
		return "inout"
	}
	return fmt.Sprintf("Dir(%d)", int(d))
}

// ParseDir parses a direction keyword.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "input":
		return DirInput, nil
	case "output":
		return DirOutput, nil
	case "inout":
		return DirInout, nil
	}
	return 0, fmt.Errorf("invalid port direction %q", s)
}

// Port is a named cell connection: a direction and the signal bound to it.
type Port struct {
	Dir  Dir
	Bits Sig
}

// Cell is a node in the circuit graph: a typed operation instance with a
// parameter map, a port map and string-pool attributes. Cells are created
// through Module.AddCell and referenced by name.
type Cell struct {
	Name   string
	Type   string
	Params map[string]string

	ports map[string]Port
	attrs map[string]mapset.Set[string]
}

func newCell(name, typ string) *Cell {
	return &Cell{
		Name:   name,
		Type:   typ,
		Params: make(map[string]string),
		ports:  make(map[string]Port),
		attrs:  make(map[string]mapset.Set[string]),
	}
}

// SetParam records a parameter constant on the cell.
func (c *Cell) SetParam(name, value string) *Cell {
	c.Params[name] = value
	return c
}

// ParamNames returns the parameter names in sorted order.
func (c *Cell) ParamNames() []string {
	names := make([]string, 0, len(c.Params))
	for n := range c.Params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AddPort declares a port with its direction and initial signal. Redeclaring
// an existing port is a programming error.
func (c *Cell) AddPort(name string, dir Dir, bits Sig) *Cell {
	if _, ok := c.ports[name]; ok {
		panic(fmt.Sprintf("rtl: cell %s already has port %s", c.Name, name))
	}
	c.ports[name] = Port{Dir: dir, Bits: bits.Clone()}
	return c
}

// SetPort rebinds the signal of an existing port, keeping its direction.
// The port must exist; a missing port indicates a caller bug, not bad input.
func (c *Cell) SetPort(name string, bits Sig) {
	p, ok := c.ports[name]
	if !ok {
		panic(fmt.Sprintf("rtl: cell %s has no port %s", c.Name, name))
	}
	p.Bits = bits.Clone()
	c.ports[name] = p
}

// PortSig returns the signal bound to a port.
func (c *Cell) PortSig(name string) (Sig, bool) {
	p, ok := c.ports[name]
	if !ok {
		return nil, false
	}
	return p.Bits, true
}

// PortBit returns the single bit of a one-bit port.
func (c *Cell) PortBit(name string) (Bit, bool) {
	p, ok := c.ports[name]
	if !ok || len(p.Bits) != 1 {
		return Bit{}, false
	}
	return p.Bits[0], true
}

// PortDir returns the direction of a port.
func (c *Cell) PortDir(name string) (Dir, bool) {
	p, ok := c.ports[name]
	if !ok {
		return 0, false
	}
	return p.Dir, true
}

// HasPort reports whether the cell declares the named port.
func (c *Cell) HasPort(name string) bool {
	_, ok := c.ports[name]
	return ok
}

// PortNames returns the port names in sorted order.
func (c *Cell) PortNames() []string {
	names := make([]string, 0, len(c.ports))
	for n := range c.ports {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsInput reports whether the port reads a value into the cell.
// Inout ports count as both input and output.
func (c *Cell) IsInput(name string) bool {
	p, ok := c.ports[name]
	return ok && (p.Dir == DirInput || p.Dir == DirInout)
}

// IsOutput reports whether the port drives a value out of the cell.
func (c *Cell) IsOutput(name string) bool {
	p, ok := c.ports[name]
	return ok && (p.Dir == DirOutput || p.Dir == DirInout)
}

// StrPoolAttr returns a copy of the named string-pool attribute. Absent
// attributes yield an empty set, so callers can extend and write back
// without presence checks.
func (c *Cell) StrPoolAttr(name string) mapset.Set[string] {
	if vals, ok := c.attrs[name]; ok {
		return vals.Clone()
	}
	return mapset.NewSet[string]()
}

// AddStrPoolAttr unions vals into the named string-pool attribute.
func (c *Cell) AddStrPoolAttr(name string, vals mapset.Set[string]) {
	if vals.Cardinality() == 0 {
		return
	}
	cur, ok := c.attrs[name]
	if !ok {
		cur = mapset.NewSet[string]()
		c.attrs[name] = cur
	}
	for v := range vals.Iter() {
		cur.Add(v)
	}
}

// AttrNames returns the attribute names in sorted order.
func (c *Cell) AttrNames() []string {
	names := make([]string, 0, len(c.attrs))
	for n := range c.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
