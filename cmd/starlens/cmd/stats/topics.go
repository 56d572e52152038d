package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/output"
)

// NewTopicsCommand creates the stats topics subcommand.
func NewTopicsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topics",
		Short:   "Show repositories per topic",
		Example: `  starlens stats topics --input stars.json
  starlens stats topics --input stars.json --limit 20
  starlens stats topics --input stars.json -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := globals.ParseAnalysis(cmd)
			summary, globalFlags, err := summarize(cmd, app, flags)
			if err != nil {
				return err
			}
			return output.FormatCategories(cmd.OutOrStdout(), "Topic", summary.Topics, flags.Limit, globalFlags)
		},
	}

	globals.AddAnalysisFlags(cmd)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
