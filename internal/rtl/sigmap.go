package rtl

// SigMap canonicalizes bits under a known-equal relation. It is a union-find
// structure: Add merges two alias classes, Bit resolves a bit to its class
// representative. Because classes merge rather than chain, cyclic sequences
// of Add calls collapse into a single class and resolution always
// terminates.
//
// The zero value is an empty map with every bit its own representative.
// Merge rewrites inside a pass use it directly; sweep-level maps are built
// from a module with NewSigMap.
//
// Representative choice is directed: Add(from, to) keeps the representative
// of to's class. Seeding from module connect pairs therefore resolves driven
// bits toward their drivers, and equivalence seeding resolves B toward A.
type SigMap struct {
	parent map[Bit]Bit
}

// NewSigMap builds a SigMap seeded with the module's connect pairs, in
// recorded order.
func NewSigMap(m *Module) *SigMap {
	sm := &SigMap{}
	for _, pair := range m.Connections() {
		lhs, rhs := pair[0], pair[1]
		for i := range lhs {
			sm.Add(lhs[i], rhs[i])
		}
	}
	return sm
}

func (sm *SigMap) find(b Bit) Bit {
	p, ok := sm.parent[b]
	if !ok {
		return b
	}
	root := sm.find(p)
	if root != p {
		sm.parent[b] = root
	}
	return root
}

// Add merges the classes of from and to. The representative of to's class
// survives; Add(b, a) afterwards resolves b (and b's whole class) to a's
// representative.
func (sm *SigMap) Add(from, to Bit) {
	if sm.parent == nil {
		sm.parent = make(map[Bit]Bit)
	}
	rf := sm.find(from)
	rt := sm.find(to)
	if rf == rt {
		return
	}
	sm.parent[rf] = rt
}

// Bit resolves a bit to its canonical representative.
func (sm *SigMap) Bit(b Bit) Bit {
	if sm.parent == nil {
		return b
	}
	return sm.find(b)
}

// Sig resolves every bit of a signal, returning a new signal.
func (sm *SigMap) Sig(s Sig) Sig {
	out := make(Sig, len(s))
	for i, b := range s {
		out[i] = sm.Bit(b)
	}
	return out
}
