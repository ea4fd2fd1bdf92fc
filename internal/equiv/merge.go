package equiv

import (
	"fmt"
	"log/slog"

	"github.com/azidar/yosys/internal/rtl"
)

// MergedAttr is the string-pool attribute on a fold survivor that records
// the names of every cell folded into it, transitively.
const MergedAttr = "equiv_merged"

// fold merges the gate cell into the gold cell. Input bits that differ
// under the alias layer become fresh equivalence assertions and the gold
// cell is rewritten to read the assertion witnesses; the gate cell's output
// signals are connected to the gold cell's and the gate cell is removed.
// The two cells share a fingerprint, so ports and widths line up; a
// mismatch is a corrupt module and panics.
func (s *sweep) fold(goldName, gateName string) {
	mod := s.mod
	gold := mod.Cell(goldName)
	gate := mod.Cell(gateName)
	s.actions++
	s.merges++

	type diff struct {
		gold, gate rtl.Bit
		label      string
	}
	var diffs []diff
	for _, p := range gold.PortNames() {
		goldSig, _ := gold.PortSig(p)
		gateSig, ok := gate.PortSig(p)
		if !ok {
			panic(fmt.Sprintf("equiv: module %s: cannot fold %s into %s: no port %s on gate cell",
				mod.Name, gateName, goldName, p))
		}
		goldBits := s.aliases.Sig(goldSig)
		gateBits := s.aliases.Sig(gateSig)
		if len(goldBits) != len(gateBits) {
			panic(fmt.Sprintf("equiv: module %s: cannot fold %s into %s: port %s width %d vs %d",
				mod.Name, gateName, goldName, p, len(gateBits), len(goldBits)))
		}
		if gold.IsOutput(p) {
			continue
		}
		for i := range goldBits {
			if goldBits[i] != gateBits[i] {
				label := p
				if len(goldBits) != 1 {
					label = fmt.Sprintf("%s[%d]", p, i)
				}
				diffs = append(diffs, diff{goldBits[i], gateBits[i], label})
			}
		}
	}

	// Differing input bits are not assumed equal. Each pair gets its own
	// assertion and both bits rewrite to the witness, so the gold cell
	// reads the asserted value from here on.
	var rewrite rtl.SigMap
	for _, d := range diffs {
		y := mod.AddWire(mod.NewID("equiv"), 1).Bit(0)
		mod.AddEquiv(mod.NewID("equiv"), d.gold, d.gate, y)
		slog.Debug("new equivalence assertion for input", "module", mod.Name,
			"input", d.label, "a", d.gold.String(), "b", d.gate.String(), "y", y.String())
		rewrite.Add(d.gold, y)
		rewrite.Add(d.gate, y)
	}

	for _, p := range gold.PortNames() {
		if gold.IsOutput(p) {
			continue
		}
		sig, _ := gold.PortSig(p)
		gold.SetPort(p, rewrite.Sig(s.aliases.Sig(sig)))
	}

	// Fanout of the gate cell keeps working through its original wires:
	// connecting them to the gold cell's output signals makes the gold
	// cell drive both.
	for _, p := range gold.PortNames() {
		if !gold.IsOutput(p) {
			continue
		}
		goldSig, _ := gold.PortSig(p)
		gateSig, _ := gate.PortSig(p)
		mod.Connect(gateSig, goldSig)
	}

	merged := gate.StrPoolAttr(MergedAttr)
	merged.Add(gateName)
	gold.AddStrPoolAttr(MergedAttr, merged)
	mod.RemoveCell(gateName)
}
