// File: cmd/evolution.go
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AtlazReso87/QPFT/internal/analyzer"
	"github.com/AtlazReso87/QPFT/internal/observability"
)

// newEvolutionCmd creates the 'evolution' command. It records an entry in
// the analyzer's evolution log and prints the resulting log. The log lives
// in process memory only; there is deliberately no persistence behind it.
func newEvolutionCmd() *cobra.Command {
	var label string
	var description string
	var trigger string

	cmd := &cobra.Command{
		Use:   "evolution --label <version> --description <text> --trigger <text>",
		Short: "Record a parameter-set evolution entry",
		Long: `Appends an entry to the analyzer's append-only evolution log and prints
the log in insertion order. Entries are never validated for version
ordering or deduplicated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}

			a := analyzer.New(cfg.Analyzer.Parameters(), observability.GetLogger())
			return runEvolution(cmd.OutOrStdout(), a, label, description, trigger)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "version label for the entry (required)")
	cmd.Flags().StringVar(&description, "description", "", "what changed (required)")
	cmd.Flags().StringVar(&trigger, "trigger", "", "what prompted the change (required)")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("trigger")

	return cmd
}

// runEvolution appends the entry and prints the full log.
func runEvolution(w io.Writer, a *analyzer.Analyzer, label, description, trigger string) error {
	msg := a.LogEvolution(label, description, trigger)
	fmt.Fprintln(w, msg)

	fmt.Fprintln(w, "evolution log:")
	for i, entry := range a.EvolutionLog() {
		fmt.Fprintf(w, "  %d. %s: %s (trigger: %s)\n", i+1, entry.Version, entry.Description, entry.Trigger)
	}
	return nil
}
