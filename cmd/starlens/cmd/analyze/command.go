// Package analyze provides the command that runs the full analysis pipeline.
package analyze

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	starlens "github.com/agentstation/starlens"
	"github.com/agentstation/starlens/internal/cmd/globals"
)

// AppContext defines the interface that the analyze command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	StarlensWithOptions(opts ...starlens.Option) (starlens.Client, error)
	Logger() *zerolog.Logger
	Quiet() bool
}

// NewCommand creates the analyze command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze",
		GroupID: "core",
		Short:   "Analyze exports and write the report and charts",
		Long: `Analyze reads one or more starred-repository exports, computes
language, topic, vocabulary, and growth summaries, renders PNG charts,
and writes a Markdown report that links everything together.

Charts are only rendered for summaries that have data, and the report
skips sections whose chart is missing. With --highlights N and an
OpenAI API key configured, the report also includes short AI-written
notes on the N most recently starred repositories.`,
		Example: `  starlens analyze --input stars.json --output-dir out
  starlens analyze -i stars-2023.json -i stars-2024.json --output-dir out
  starlens analyze --input stars.json --bucket day --limit 10
  starlens analyze --input stars.json --highlights 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := globals.ParseAnalysis(cmd)
			outputDir, _ := cmd.Flags().GetString("output-dir")
			reportName, _ := cmd.Flags().GetString("report-name")
			highlights, _ := cmd.Flags().GetInt("highlights")

			var opts []starlens.Option
			if outputDir != "" {
				opts = append(opts, starlens.WithOutputDir(outputDir))
			}
			if flags.Bucket != "" {
				opts = append(opts, starlens.WithBucket(flags.Bucket))
			}
			if flags.Limit > 0 {
				opts = append(opts, starlens.WithTopLanguages(flags.Limit))
			}
			if reportName != "" {
				opts = append(opts, starlens.WithReportName(reportName))
			}
			// Changed distinguishes an explicit --highlights 0 from the default
			if cmd.Flags().Changed("highlights") {
				opts = append(opts, starlens.WithHighlights(highlights))
			}

			client, err := app.StarlensWithOptions(opts...)
			if err != nil {
				return err
			}

			result, err := client.Analyze(cmd.Context(), flags.Inputs...)
			if err != nil {
				return err
			}

			if result.Skipped > 0 {
				app.Logger().Warn().Int("skipped", result.Skipped).Msg("Skipped unreadable records")
			}
			if !app.Quiet() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Analyzed %d starred repositories\n", result.Summary.TotalRecords)
			}

			cmd.Printf("Report written to %s\n", result.ReportPath)
			return nil
		},
	}

	globals.AddAnalysisFlags(cmd)
	cmd.Flags().String("output-dir", "",
		"Directory for the report and charts (default is the working directory)")
	cmd.Flags().String("report-name", "",
		"File name of the Markdown report (default \"report.md\")")
	cmd.Flags().Int("highlights", 0,
		"Number of AI highlights to include in the report (0 disables)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
