package equiv

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/azidar/yosys/internal/rtl"
)

// goldSuffix marks cell names preferred as fold survivors.
const goldSuffix = "_gold"

// sweep holds the per-invocation state of one pass over a module. Nothing
// survives between sweeps; the driver constructs a fresh one per iteration.
type sweep struct {
	mod  *rtl.Module
	opts Options

	// aliases canonicalizes through connect pairs only; equivs extends it
	// with the B→A mappings of selected equivalence assertions.
	aliases *rtl.SigMap
	equivs  *rtl.SigMap

	actions int
	merges  int
	purges  int
}

// Sweep runs a single purge-fingerprint-merge pass over the module and
// returns the number of actions performed: purged assertions plus folded
// cells. Zero means the module is at fixpoint for these options.
func Sweep(mod *rtl.Module, opts Options) int {
	actions, _, _ := runSweep(mod, opts)
	return actions
}

func runSweep(mod *rtl.Module, opts Options) (actions, merges, purges int) {
	s := &sweep{mod: mod, opts: opts}
	s.run()
	return s.actions, s.merges, s.purges
}

func (s *sweep) run() {
	mod := s.mod
	s.aliases = rtl.NewSigMap(mod)
	s.equivs = rtl.NewSigMap(mod)

	// Endpoints of selected assertions, alias-canonical. A redundant
	// assertion must witness into this pool to be purged.
	endpoints := mapset.NewSet[rtl.Bit]()
	var assertions []string
	var candidates []string

	for _, name := range mod.CellNames() {
		c := mod.Cell(name)
		if !s.opts.selectsCell(c) {
			continue
		}
		if c.Type == rtl.EquivType {
			a := s.assertionBit(c, rtl.EquivPortA)
			b := s.assertionBit(c, rtl.EquivPortB)
			s.equivs.Add(b, a)
			endpoints.Add(a)
			endpoints.Add(b)
			assertions = append(assertions, name)
			continue
		}
		if !s.opts.IncludeInternal && rtl.IsInternalType(c.Type) {
			continue
		}
		candidates = append(candidates, name)
	}

	// Purge assertions whose operands already canonicalize together and
	// whose witness bit feeds another assertion. Any purge invalidates
	// the maps built above, so the sweep ends here and the driver starts
	// over.
	for _, name := range assertions {
		c := mod.Cell(name)
		a := s.assertionBit(c, rtl.EquivPortA)
		b := s.assertionBit(c, rtl.EquivPortB)
		y := s.assertionBit(c, rtl.EquivPortY)
		if a == b && endpoints.Contains(y) {
			slog.Debug("purging redundant equivalence assertion",
				"module", mod.Name, "cell", name)
			mod.RemoveCell(name)
			s.actions++
			s.purges++
		}
	}
	if s.actions > 0 {
		return
	}

	idx := newBucketIndex()
	for _, name := range candidates {
		fwd, bwds := cellPrints(mod.Cell(name), s.equivs)
		for _, k := range bwds {
			idx.add(k.digest(), name, true)
		}
		idx.add(fwd.digest(), name, false)
	}

	queues := [][]string{idx.fwdQueue}
	if !s.opts.ForwardOnly {
		queues = append(queues, idx.bwdQueue)
	}
	for phase, queue := range queues {
		for _, digest := range queue {
			if s.mergeBucket(digest, idx.bucket(digest), phase == 1) {
				return
			}
		}
	}
	slog.Debug("nothing to merge", "module", mod.Name)
}

// assertionBit reads the single bit of an assertion port, alias-canonical.
// Assertion ports are one bit wide by construction; anything else is a
// corrupt module.
func (s *sweep) assertionBit(c *rtl.Cell, port string) rtl.Bit {
	b, ok := c.PortBit(port)
	if !ok {
		panic(fmt.Sprintf("equiv: module %s: cell %s is not a well-formed %s cell: bad port %s",
			s.mod.Name, c.Name, rtl.EquivType, port))
	}
	return s.aliases.Bit(b)
}

// mergeBucket folds all live members of one bucket into a single survivor
// and reports whether it folded anything. A true return ends the sweep:
// folds rewrite connectivity, so later buckets hold stale keys.
func (s *sweep) mergeBucket(digest string, members mapset.Set[string], backward bool) bool {
	names := members.ToSlice()
	sort.Strings(names)

	live := names[:0]
	for _, n := range names {
		if s.mod.Cell(n) != nil {
			live = append(live, n)
		}
	}
	if len(live) < 2 {
		return false
	}

	gold := chooseSurvivor(live)
	phase := "fwd"
	if backward {
		phase = "bwd"
	}
	for _, name := range live {
		if name == gold {
			continue
		}
		slog.Info("merging cells", "module", s.mod.Name, "phase", phase,
			"gold", gold, "gate", name)
		s.fold(gold, name)
	}
	return true
}

// chooseSurvivor picks the fold survivor from a sorted, non-empty member
// list: the smallest "_gold"-suffixed name if any, otherwise the smallest
// name.
func chooseSurvivor(live []string) string {
	for _, n := range live {
		if strings.HasSuffix(n, goldSuffix) {
			return n
		}
	}
	return live[0]
}
