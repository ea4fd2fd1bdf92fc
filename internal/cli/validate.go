package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/azidar/yosys/internal/loader"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Netlist string `json:"netlist"`
	Modules int    `json:"modules,omitempty"`
	Cells   int    `json:"cells,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <netlist.yaml>",
		Short: "Validate a netlist document without sweeping",
		Long: `Validate a netlist document: YAML decode, schema validation and the
design integrity check, without touching any cell.

Exit codes:
  0 - Netlist valid
  1 - Netlist invalid
  2 - Command error (missing file, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return outputValidateError(formatter, ErrCodeNotFound,
				fmt.Sprintf("netlist file not found: %s", path))
		}
		return outputValidateError(formatter, ErrCodeGeneric,
			fmt.Sprintf("failed to read netlist: %v", err))
	}

	formatter.VerboseLog("Read %d byte(s) from %s", len(raw), path)

	design, err := loader.Load(raw)
	if err != nil {
		return outputInvalid(formatter, path, err)
	}

	result := ValidationResult{Valid: true, Netlist: path}
	for _, m := range design.Modules() {
		formatter.VerboseLog("Module %s: %d cell(s), %d wire(s)",
			m.Name, m.CellCount(), len(m.WireNames()))
		result.Modules++
		result.Cells += m.CellCount()
	}

	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Netlist valid (%d module(s), %d cell(s))\n",
		result.Modules, result.Cells)
	return nil
}

// outputValidateError outputs a command-level error (exit code 2).
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputInvalid outputs a netlist rejection (exit code 1).
func outputInvalid(formatter *OutputFormatter, path string, cause error) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Netlist: path, Error: cause.Error()},
			Error: &CLIError{
				Code:    ErrCodeInvalid,
				Message: cause.Error(),
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		return NewExitError(ExitFailure, fmt.Sprintf("validation failed: %s", path))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintf(formatter.Writer, "  %s\n", cause)

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed: %s", path))
}
