package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/azidar/yosys/internal/store"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Database string
	Module   string // optional - filter to one module
	Netlist  string // optional - filter to one netlist path
	Limit    int    // optional - cap the number of runs listed
}

// StatsResult holds the stats command output.
type StatsResult struct {
	Runs  []store.Run `json:"runs"`
	Total int         `json:"total"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "List recorded sweep runs",
		Long: `List sweep runs recorded by sweep --db, newest first.

Examples:
  equiv stats --db runs.db
  equiv stats --db runs.db --module top
  equiv stats --db runs.db --limit 10 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Module, "module", "", "only runs of this module")
	cmd.Flags().StringVar(&opts.Netlist, "netlist", "", "only runs of this netlist path")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "list at most this many runs (0 = all)")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	// Open would create a fresh database at a bad path; reject that here.
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(context.Background(), store.RunFilter{
		Module:  opts.Module,
		Netlist: opts.Netlist,
		Limit:   opts.Limit,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	result := StatsResult{Runs: runs, Total: len(runs)}

	if opts.Format == "json" {
		return outputStatsJSON(cmd, result)
	}
	return outputStatsText(cmd, result, opts.Verbose)
}

// outputStatsJSON outputs the runs as JSON.
func outputStatsJSON(cmd *cobra.Command, result StatsResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// outputStatsText outputs the runs as text.
func outputStatsText(cmd *cobra.Command, result StatsResult, verbose bool) error {
	w := cmd.OutOrStdout()

	if result.Total == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "Recorded Runs: %d\n", result.Total)
	fmt.Fprintln(w)
	for _, r := range result.Runs {
		fmt.Fprintf(w, "  [%s] %s: %d merges, %d purges, cells %d -> %d\n",
			r.StartedAt.UTC().Format(time.RFC3339), r.Module,
			r.Merges, r.Purges, r.CellsBefore, r.CellsAfter)
		if verbose {
			fmt.Fprintf(w, "       ID: %s\n", r.ID)
			fmt.Fprintf(w, "       Netlist: %s (%s)\n", r.Netlist, truncateDigest(r.NetlistDigest))
			fmt.Fprintf(w, "       Options: fwd=%t icells=%t capped=%t duration=%dms\n",
				r.ForwardOnly, r.IncludeInternal, r.Capped, r.DurationMS)
		}
	}

	return nil
}

// truncateDigest shortens a long hex digest for display.
func truncateDigest(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12] + "..."
}
