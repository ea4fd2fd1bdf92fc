package testutil

import "github.com/azidar/yosys/internal/rtl"

// Bit declares a fresh one-bit wire on m and returns its only bit.
func Bit(m *rtl.Module, name string) rtl.Bit {
	return m.AddWire(name, 1).Bit(0)
}

// Gate adds a two-input one-output cell wired to the given bits. Most test
// circuits are built from these.
func Gate(m *rtl.Module, name, typ string, a, b, y rtl.Bit) *rtl.Cell {
	c := m.AddCell(name, typ)
	c.AddPort("A", rtl.DirInput, rtl.Sig{a})
	c.AddPort("B", rtl.DirInput, rtl.Sig{b})
	c.AddPort("Y", rtl.DirOutput, rtl.Sig{y})
	return c
}

// DupPairDesign builds a design whose single module holds two structurally
// identical AND gates reading the same inputs. A sweep folds g_gate into
// g_gold, leaving one cell.
func DupPairDesign(module string) *rtl.Design {
	d := rtl.NewDesign()
	m := d.AddModule(module)
	a, b := Bit(m, "a"), Bit(m, "b")
	x, y := Bit(m, "x"), Bit(m, "y")
	Gate(m, "g_gold", "AND", a, b, x)
	Gate(m, "g_gate", "AND", a, b, y)
	return d
}

// MiterDesign builds a gold/gate pair over distinct inputs whose outputs are
// asserted equivalent, the shape a backward merge needs: the sweep folds
// c_gate into c_gold and asserts the input pairs instead.
func MiterDesign(module string) *rtl.Design {
	d := rtl.NewDesign()
	m := d.AddModule(module)
	a1, b1 := Bit(m, "a1"), Bit(m, "b1")
	a2, b2 := Bit(m, "a2"), Bit(m, "b2")
	o1, o2, w := Bit(m, "o1"), Bit(m, "o2"), Bit(m, "w")
	Gate(m, "c_gold", "XOR", a1, b1, o1)
	Gate(m, "c_gate", "XOR", a2, b2, o2)
	m.AddEquiv("e_out", o1, o2, w)
	return d
}
