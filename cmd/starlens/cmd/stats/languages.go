package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/output"
)

// NewLanguagesCommand creates the stats languages subcommand.
func NewLanguagesCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "languages",
		Short:   "Show repositories per primary language",
		Aliases: []string{"langs"},
		Example: `  starlens stats languages --input stars.json
  starlens stats languages --input stars.json --limit 5
  starlens stats languages --input stars.json -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := globals.ParseAnalysis(cmd)
			summary, globalFlags, err := summarize(cmd, app, flags)
			if err != nil {
				return err
			}
			return output.FormatCategories(cmd.OutOrStdout(), "Language", summary.Languages, flags.Limit, globalFlags)
		},
	}

	globals.AddAnalysisFlags(cmd)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
