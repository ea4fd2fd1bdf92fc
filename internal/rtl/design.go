package rtl

import (
	"fmt"
	"sort"
)

// Design is a collection of named modules.
type Design struct {
	modules map[string]*Module
}

// NewDesign creates an empty design.
func NewDesign() *Design {
	return &Design{modules: make(map[string]*Module)}
}

// AddModule creates an empty module in the design. The name must be unused.
func (d *Design) AddModule(name string) *Module {
	if _, ok := d.modules[name]; ok {
		panic(fmt.Sprintf("rtl: design already has module %s", name))
	}
	m := NewModule(name)
	d.modules[name] = m
	return m
}

// Module looks up a module by name, nil if absent.
func (d *Design) Module(name string) *Module {
	return d.modules[name]
}

// ModuleNames returns all module names in sorted order.
func (d *Design) ModuleNames() []string {
	names := make([]string, 0, len(d.modules))
	for n := range d.modules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Modules returns the modules in sorted name order.
func (d *Design) Modules() []*Module {
	names := d.ModuleNames()
	mods := make([]*Module, len(names))
	for i, n := range names {
		mods[i] = d.modules[n]
	}
	return mods
}
