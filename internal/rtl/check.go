package rtl

import "fmt"

// Check validates the module's internal references: every port and connect
// bit must name a declared wire within its width, connect pairs must be
// width-matched, and $equiv cells must have the fixed single-bit A/B/Y
// shape. The first violation found is returned.
func (m *Module) Check() error {
	for _, name := range m.CellNames() {
		c := m.cells[name]
		for _, p := range c.PortNames() {
			port := c.ports[p]
			if err := m.checkSig(port.Bits); err != nil {
				return fmt.Errorf("cell %s port %s: %w", c.Name, p, err)
			}
		}
		if c.Type == EquivType {
			if err := m.checkEquivShape(c); err != nil {
				return err
			}
		}
	}
	for i, pair := range m.connects {
		if len(pair[0]) != len(pair[1]) {
			return fmt.Errorf("connect %d: width mismatch: %d vs %d bits", i, len(pair[0]), len(pair[1]))
		}
		for side := 0; side < 2; side++ {
			if err := m.checkSig(pair[side]); err != nil {
				return fmt.Errorf("connect %d: %w", i, err)
			}
		}
	}
	return nil
}

func (m *Module) checkSig(s Sig) error {
	for _, b := range s {
		w := m.Wire(b.Wire)
		if w == nil {
			return fmt.Errorf("bit %s references undeclared wire", b)
		}
		if b.Index < 0 || b.Index >= w.Width {
			return fmt.Errorf("bit %s out of range: wire width is %d", b, w.Width)
		}
	}
	return nil
}

func (m *Module) checkEquivShape(c *Cell) error {
	want := map[string]Dir{EquivPortA: DirInput, EquivPortB: DirInput, EquivPortY: DirOutput}
	names := c.PortNames()
	if len(names) != len(want) {
		return fmt.Errorf("cell %s: %s cells need exactly ports A, B, Y", c.Name, EquivType)
	}
	for p, dir := range want {
		got, ok := c.ports[p]
		if !ok {
			return fmt.Errorf("cell %s: missing %s port %s", c.Name, EquivType, p)
		}
		if got.Dir != dir {
			return fmt.Errorf("cell %s: port %s must be %s", c.Name, p, dir)
		}
		if len(got.Bits) != 1 {
			return fmt.Errorf("cell %s: port %s must be one bit wide", c.Name, p)
		}
	}
	return nil
}

// Check validates every module of the design.
func (d *Design) Check() error {
	for _, m := range d.Modules() {
		if err := m.Check(); err != nil {
			return fmt.Errorf("module %s: %w", m.Name, err)
		}
	}
	return nil
}
