package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/output"
)

// NewGrowthCommand creates the stats growth subcommand.
func NewGrowthCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Show cumulative stars over time",
		Long: `Growth buckets starred repositories by when they were starred and
prints the cumulative count per bucket. Use --bucket to switch between
daily and monthly granularity.`,
		Example: `  starlens stats growth --input stars.json
  starlens stats growth --input stars.json --bucket day
  starlens stats growth --input stars.json --limit 12 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := globals.ParseAnalysis(cmd)
			summary, globalFlags, err := summarize(cmd, app, flags)
			if err != nil {
				return err
			}
			return output.FormatGrowth(cmd.OutOrStdout(), summary.Growth, summary.Bucket, flags.Limit, globalFlags)
		},
	}

	globals.AddAnalysisFlags(cmd)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
