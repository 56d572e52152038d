package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/output"
)

// NewWordsCommand creates the stats words subcommand.
func NewWordsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "words",
		Short:   "Show the most frequent description words",
		Example: `  starlens stats words --input stars.json
  starlens stats words --input stars.json --limit 50
  starlens stats words --input stars.json -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := globals.ParseAnalysis(cmd)
			summary, globalFlags, err := summarize(cmd, app, flags)
			if err != nil {
				return err
			}
			return output.FormatCategories(cmd.OutOrStdout(), "Word", summary.Words, flags.Limit, globalFlags)
		},
	}

	globals.AddAnalysisFlags(cmd)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
