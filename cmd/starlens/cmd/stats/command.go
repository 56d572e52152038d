// Package stats provides commands for summarizing starred-repository exports.
package stats

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	starlens "github.com/agentstation/starlens"
	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/output"
)

// AppContext defines the interface that stats commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	StarlensWithOptions(opts ...starlens.Option) (starlens.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
	Quiet() bool
}

// NewCommand creates the stats command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		GroupID: "core",
		Short:   "Summarize starred-repository exports in the console",
		Long: `Stats computes summaries from one or more starred-repository exports
and prints them without writing any files.

Available subcommands:
  languages   - Repositories per primary language
  topics      - Repositories per topic
  words       - Most frequent description words
  growth      - Cumulative stars over time

Running stats with --input but no subcommand prints an overview of the
loaded exports.`,
		Example: `  starlens stats --input stars.json            # Overview of the export
  starlens stats languages --input stars.json  # Language distribution
  starlens stats growth --input stars.json --bucket day
  starlens stats topics --input stars.json -o json`,
		// Unknown views are rejected in RunE so the message lists the
		// valid ones instead of cobra's generic unknown-command error.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown view: %s (expected languages, topics, words, or growth)", args[0])
			}
			flags := globals.ParseAnalysis(cmd)

			// Default to help when there is nothing to summarize
			if len(flags.Inputs) == 0 {
				return cmd.Help()
			}
			return runOverview(cmd, app, flags)
		},
	}

	globals.AddAnalysisFlags(cmd)

	// Add subcommands using the app context
	cmd.AddCommand(NewLanguagesCommand(app))
	cmd.AddCommand(NewTopicsCommand(app))
	cmd.AddCommand(NewWordsCommand(app))
	cmd.AddCommand(NewGrowthCommand(app))

	return cmd
}

// runOverview prints headline counts for the loaded exports.
func runOverview(cmd *cobra.Command, app AppContext, flags *globals.AnalysisFlags) error {
	summary, globalFlags, err := summarize(cmd, app, flags)
	if err != nil {
		return err
	}
	return output.FormatOverview(cmd.OutOrStdout(), summary, globalFlags)
}
