// File: cmd/params.go
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AtlazReso87/QPFT/internal/analyzer"
	"github.com/AtlazReso87/QPFT/internal/observability"
)

// newParamsCmd creates the 'params' command group.
func newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Inspect and update analyzer parameters",
	}
	cmd.AddCommand(newParamsSetCmd())
	cmd.AddCommand(newParamsShowCmd())
	return cmd
}

// newParamsSetCmd creates 'params set <name> <value>'.
func newParamsSetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Validate and store a parameter value",
		Long: `Stores a parameter value. The three range-checked parameters (mass,
barrier_height, coherence_length) are validated against their declared
closed intervals; any other name is stored unconditionally. --force uses
the unchecked write path and skips validation entirely.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}

			a := analyzer.New(cfg.Analyzer.Parameters(), logger)
			msg, err := runParamsSet(a, args[0], parseParamValue(args[1]), force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "bypass range validation (unchecked write)")
	return cmd
}

// newParamsShowCmd creates 'params show'.
func newParamsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current parameter record as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}

			a := analyzer.New(cfg.Analyzer.Parameters(), observability.GetLogger())
			return printParams(cmd.OutOrStdout(), a)
		},
	}
}

// runParamsSet applies one parameter write through the validated or the
// unchecked path.
func runParamsSet(a *analyzer.Analyzer, name string, value any, force bool) (string, error) {
	if force {
		a.SetUnchecked(name, value)
		return fmt.Sprintf("parameter %s set unchecked to %v", name, value), nil
	}
	return a.UpdateParameter(name, value)
}

// printParams writes the typed record (and any side-table entries) as
// pretty-printed JSON.
func printParams(w io.Writer, a *analyzer.Analyzer) error {
	view := struct {
		Parameters analyzer.Parameters `json:"parameters"`
		Extras     map[string]any      `json:"extras,omitempty"`
	}{
		Parameters: a.Parameters(),
		Extras:     a.Extras(),
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize parameters: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// parseParamValue interprets a CLI value string: a single float, a
// comma-separated float list, or a raw string for anything else.
func parseParamValue(raw string) any {
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		values := make([]float64, 0, len(parts))
		for _, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return raw
			}
			values = append(values, f)
		}
		return values
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
