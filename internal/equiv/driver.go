package equiv

import (
	"log/slog"
	"sync"

	"github.com/azidar/yosys/internal/rtl"
)

// ModuleResult reports the outcome of sweeping one module to fixpoint.
type ModuleResult struct {
	Module      string `json:"module"`
	Iterations  int    `json:"iterations"`
	Actions     int    `json:"actions"`
	Merges      int    `json:"merges"`
	Purges      int    `json:"purges"`
	CellsBefore int    `json:"cells_before"`
	CellsAfter  int    `json:"cells_after"`

	// Capped is set when MaxIterations stopped the driver before a sweep
	// came back empty. The module may not be at fixpoint.
	Capped bool `json:"capped,omitempty"`
}

// Result aggregates per-module outcomes in module name order.
type Result struct {
	Modules []ModuleResult `json:"modules"`
}

// TotalActions sums the actions of every swept module.
func (r Result) TotalActions() int {
	n := 0
	for _, m := range r.Modules {
		n += m.Actions
	}
	return n
}

// TotalMerges sums the folded cells of every swept module.
func (r Result) TotalMerges() int {
	n := 0
	for _, m := range r.Modules {
		n += m.Merges
	}
	return n
}

// SweepModule repeats fresh sweeps over one module until a sweep performs
// zero actions, or until the iteration cap. Every iteration rebuilds its
// canonical maps and buckets from current module state, so work done by one
// sweep is visible to the next.
func SweepModule(mod *rtl.Module, opts Options) ModuleResult {
	slog.Info("running structural sweep", "module", mod.Name)
	res := ModuleResult{Module: mod.Name, CellsBefore: mod.CellCount()}
	for {
		if opts.MaxIterations > 0 && res.Iterations >= opts.MaxIterations {
			res.Capped = true
			slog.Warn("iteration cap hit before fixpoint",
				"module", mod.Name, "iterations", res.Iterations)
			break
		}
		slog.Debug("starting new iteration", "module", mod.Name, "iteration", res.Iterations+1)
		actions, merges, purges := runSweep(mod, opts)
		res.Iterations++
		res.Actions += actions
		res.Merges += merges
		res.Purges += purges
		if actions == 0 {
			break
		}
	}
	res.CellsAfter = mod.CellCount()
	slog.Info("sweep finished", "module", mod.Name, "iterations", res.Iterations,
		"merges", res.Merges, "purges", res.Purges,
		"cells_before", res.CellsBefore, "cells_after", res.CellsAfter)
	return res
}

// Run sweeps every selected module of the design to fixpoint and returns
// the per-module results in module name order. With Options.Jobs above one,
// modules are swept concurrently; modules never share state, so results are
// identical to a sequential run.
func Run(d *rtl.Design, opts Options) Result {
	var mods []*rtl.Module
	for _, m := range d.Modules() {
		if opts.selectsModule(m) {
			mods = append(mods, m)
		}
	}

	results := make([]ModuleResult, len(mods))
	if opts.Jobs > 1 && len(mods) > 1 {
		sem := make(chan struct{}, opts.Jobs)
		var wg sync.WaitGroup
		for i, m := range mods {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				results[i] = SweepModule(m, opts)
			}()
		}
		wg.Wait()
	} else {
		for i, m := range mods {
			results[i] = SweepModule(m, opts)
		}
	}
	return Result{Modules: results}
}
