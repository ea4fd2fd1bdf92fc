package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/azidar/yosys/internal/equiv"
	"github.com/azidar/yosys/internal/loader"
	"github.com/azidar/yosys/internal/rtl"
	"github.com/azidar/yosys/internal/store"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	ForwardOnly     bool
	IncludeInternal bool
	Modules         []string
	MaxIterations   int
	Jobs            int
	Out             string
	Database        string

	// IDGen allows overriding the run id generator (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	IDGen store.RunIDGenerator
}

// SweepReport is the sweep command's output payload.
type SweepReport struct {
	Netlist      string               `json:"netlist"`
	Digest       string               `json:"netlist_digest"`
	Modules      []equiv.ModuleResult `json:"modules"`
	TotalActions int                  `json:"total_actions"`
	TotalMerges  int                  `json:"total_merges"`
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep <netlist.yaml>",
		Short: "Fold structurally identical cells",
		Long: `Sweep every module of a netlist document to fixpoint, folding cells
that compute the same function of the same inputs and consuming proven
output equivalences to infer input equivalences.

Exit codes:
  0 - Sweep completed
  1 - Netlist invalid
  2 - Command error (missing file, unknown module, write failure)

Examples:
  equiv sweep design.yaml
  equiv sweep design.yaml --fwd --module top
  equiv sweep design.yaml --out swept.yaml --db runs.db
  equiv sweep design.yaml --jobs 4 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.ForwardOnly, "fwd", false, "forward merges only, leave equivalence assertions unconsumed")
	cmd.Flags().BoolVar(&opts.IncludeInternal, "icells", false, "also sweep internal $-typed cells")
	cmd.Flags().StringArrayVar(&opts.Modules, "module", nil, "sweep only the named module (repeatable)")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "cap sweep iterations per module (0 = run to fixpoint)")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 1, "number of modules swept concurrently")
	cmd.Flags().StringVar(&opts.Out, "out", "", "write the swept netlist to this path")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record sweep runs in this SQLite database")

	return cmd
}

func runSweep(opts *SweepOptions, path string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewExitError(ExitCommandError, fmt.Sprintf("netlist file not found: %s", path))
		}
		return WrapExitError(ExitCommandError, "failed to read netlist", err)
	}

	design, err := loader.Load(raw)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("invalid netlist %s", path), err)
	}

	eopts := equiv.Options{
		ForwardOnly:     opts.ForwardOnly,
		IncludeInternal: opts.IncludeInternal,
		MaxIterations:   opts.MaxIterations,
		Jobs:            opts.Jobs,
	}
	if len(opts.Modules) > 0 {
		for _, name := range opts.Modules {
			if design.Module(name) == nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown module: %s", name))
			}
		}
		selected := mapset.NewSet(opts.Modules...)
		eopts.Modules = func(m *rtl.Module) bool { return selected.Contains(m.Name) }
	}

	slog.Info("sweeping netlist", "path", path, "modules", len(design.ModuleNames()))
	started := time.Now()
	res := equiv.Run(design, eopts)
	elapsed := time.Since(started)

	if opts.Out != "" {
		if err := loader.SaveFile(opts.Out, design); err != nil {
			return WrapExitError(ExitCommandError, "failed to write swept netlist", err)
		}
		slog.Info("swept netlist written", "path", opts.Out)
	}

	report := SweepReport{
		Netlist:      path,
		Digest:       loader.SourceDigest(raw),
		Modules:      res.Modules,
		TotalActions: res.TotalActions(),
		TotalMerges:  res.TotalMerges(),
	}

	if opts.Database != "" {
		if err := recordRuns(opts, report, started, elapsed); err != nil {
			return err
		}
	}

	if opts.Format == "json" {
		return outputSweepJSON(cmd, report)
	}
	return outputSweepText(cmd, report)
}

// recordRuns writes one row per swept module. Rows of one invocation share
// the invocation's start time and wall duration.
func recordRuns(opts *SweepOptions, report SweepReport, started time.Time, elapsed time.Duration) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	idGen := opts.IDGen
	if idGen == nil {
		idGen = store.UUIDv7Generator{}
	}

	ctx := context.Background()
	for _, m := range report.Modules {
		run := store.Run{
			ID:              idGen.NewRunID(),
			Netlist:         report.Netlist,
			NetlistDigest:   report.Digest,
			Module:          m.Module,
			Iterations:      m.Iterations,
			Merges:          m.Merges,
			Purges:          m.Purges,
			CellsBefore:     m.CellsBefore,
			CellsAfter:      m.CellsAfter,
			ForwardOnly:     opts.ForwardOnly,
			IncludeInternal: opts.IncludeInternal,
			Capped:          m.Capped,
			StartedAt:       started,
			DurationMS:      elapsed.Milliseconds(),
		}
		if err := st.WriteRun(ctx, run); err != nil {
			return WrapExitError(ExitCommandError,
				fmt.Sprintf("failed to record run for module %s", m.Module), err)
		}
		slog.Debug("run recorded", "id", run.ID, "module", m.Module)
	}
	return nil
}

// outputSweepJSON outputs the sweep report as JSON.
func outputSweepJSON(cmd *cobra.Command, report SweepReport) error {
	response := CLIResponse{
		Status: "ok",
		Data:   report,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// outputSweepText outputs the sweep report as text.
func outputSweepText(cmd *cobra.Command, report SweepReport) error {
	w := cmd.OutOrStdout()

	if len(report.Modules) == 0 {
		fmt.Fprintln(w, "No modules swept.")
		return nil
	}

	for _, m := range report.Modules {
		fmt.Fprintf(w, "%s: %d iterations, %d merges, %d purges, cells %d -> %d",
			m.Module, m.Iterations, m.Merges, m.Purges, m.CellsBefore, m.CellsAfter)
		if m.Capped {
			fmt.Fprint(w, " (iteration cap hit)")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sweep Summary: %d merge(s), %d action(s) across %d module(s)\n",
		report.TotalMerges, report.TotalActions, len(report.Modules))
	return nil
}
