package equiv

import (
	"github.com/azidar/yosys/internal/rtl"
)

// CellFilter narrows a sweep to the cells it returns true for. Cells outside
// the selection are neither fingerprinted nor consumed as equivalence
// assertions.
type CellFilter func(*rtl.Cell) bool

// ModuleFilter narrows Run to the modules it returns true for.
type ModuleFilter func(*rtl.Module) bool

// Options configure a structural equivalence sweep. The zero value sweeps
// every non-internal cell of every module, runs both merge phases and
// iterates each module to fixpoint.
type Options struct {
	// ForwardOnly skips the backward merge phase, so only cells with
	// matching input-side keys are folded.
	ForwardOnly bool

	// IncludeInternal makes internal "$"-typed cells eligible for
	// fingerprinting. Equivalence assertions stay exempt either way.
	IncludeInternal bool

	// Cells restricts which cells a sweep considers. Nil selects all.
	Cells CellFilter

	// Modules restricts which modules Run sweeps. Nil selects all.
	Modules ModuleFilter

	// MaxIterations caps the number of sweeps per module. Zero or
	// negative means iterate until fixpoint.
	MaxIterations int

	// Jobs is the number of modules swept concurrently by Run. Values
	// below two keep the sequential order. Individual modules are always
	// swept by a single goroutine.
	Jobs int
}

func (o Options) selectsCell(c *rtl.Cell) bool {
	return o.Cells == nil || o.Cells(c)
}

func (o Options) selectsModule(m *rtl.Module) bool {
	return o.Modules == nil || o.Modules(m)
}
