package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	starlens "github.com/agentstation/starlens"
	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/output"
	"github.com/agentstation/starlens/pkg/analysis"
)

// summarize loads the given exports and computes summaries, echoing the
// record count to stderr unless quiet output was requested.
func summarize(cmd *cobra.Command, app AppContext, flags *globals.AnalysisFlags) (*analysis.Report, *globals.Flags, error) {
	var opts []starlens.Option
	if flags.Bucket != "" {
		opts = append(opts, starlens.WithBucket(flags.Bucket))
	}

	client, err := app.StarlensWithOptions(opts...)
	if err != nil {
		return nil, nil, err
	}

	app.Logger().Debug().Strs("inputs", flags.Inputs).Msg("Summarizing exports")

	summary, err := client.Summarize(cmd.Context(), flags.Inputs...)
	if err != nil {
		return nil, nil, err
	}

	globalFlags := outputFlags(app)
	if !globalFlags.Quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Analyzed %d starred repositories\n", summary.TotalRecords)
	}

	return summary, globalFlags, nil
}

// outputFlags resolves the output format and quiet setting from app config
// so commands honor settings from flags, environment, and config files alike.
func outputFlags(app AppContext) *globals.Flags {
	return &globals.Flags{
		Output: string(output.DetectFormat(app.OutputFormat())),
		Quiet:  app.Quiet(),
	}
}
