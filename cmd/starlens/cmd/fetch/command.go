// Package fetch provides the command for downloading starred repositories.
package fetch

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	starlens "github.com/agentstation/starlens"
	"github.com/agentstation/starlens/internal/github"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/stars"
)

// AppContext defines the interface that the fetch command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	StarlensWithOptions(opts ...starlens.Option) (starlens.Client, error)
	Logger() *zerolog.Logger
	Quiet() bool
}

// Flags holds flags for the fetch command.
type Flags struct {
	User      string
	Output    string
	Format    string
	PerPage   int
	MaxPages  int
	Delay     time.Duration
	Direction string
}

// NewCommand creates the fetch command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch",
		GroupID: "core",
		Short:   "Download a user's starred repositories from GitHub",
		Long: `Fetch pages through the GitHub starred-repositories API for a user and
writes the result as a JSON export that analyze and stats can read, or
as CSV for spreadsheets.

Unauthenticated requests work but run into GitHub's low anonymous rate
limit; set GITHUB_TOKEN (or github.token in the config file) to raise it.`,
		Example: `  starlens fetch --user octocat
  starlens fetch --user octocat --output octocat-stars.json
  starlens fetch --user octocat --format csv --output stars.csv
  starlens fetch --user octocat --max-pages 2 --delay 500ms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := getFetchFlags(cmd)

			format := strings.ToLower(flags.Format)
			if format != "json" && format != "csv" {
				return errors.NewValidationError("format", flags.Format, `must be "json" or "csv"`)
			}

			var opts []starlens.Option
			if flags.PerPage > 0 {
				opts = append(opts, starlens.WithPageSize(flags.PerPage))
			}
			if flags.MaxPages > 0 {
				opts = append(opts, starlens.WithMaxPages(flags.MaxPages))
			}
			if flags.Delay > 0 {
				opts = append(opts, starlens.WithFetchDelay(flags.Delay))
			}
			if flags.Direction != "" {
				opts = append(opts, starlens.WithFetchDirection(flags.Direction))
			}

			client, err := app.StarlensWithOptions(opts...)
			if err != nil {
				return err
			}

			app.Logger().Debug().Str("user", flags.User).Msg("Fetching starred repositories")

			records, err := client.Fetch(cmd.Context(), flags.User)
			if err != nil {
				return err
			}

			if err := writeExport(flags.Output, format, records); err != nil {
				return err
			}

			if !app.Quiet() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Fetched %d starred repositories for %s\n",
					len(records), flags.User)
			}
			cmd.Printf("Export written to %s\n", flags.Output)
			return nil
		},
	}

	addFetchFlags(cmd)
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// addFetchFlags registers fetch-specific flags. The local --output and
// --format intentionally shadow the global output flags for this command:
// fetch writes export files, not console tables.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "",
		"GitHub login to fetch stars for (required)")
	cmd.Flags().String("output", "stars.json",
		"Path of the export file to write")
	cmd.Flags().String("format", "json",
		"Export file format: json or csv")
	cmd.Flags().Int("per-page", 0,
		"Repositories per API page, up to 100 (default 100)")
	cmd.Flags().Int("max-pages", 0,
		"Stop after this many pages (default 400)")
	cmd.Flags().Duration("delay", 0,
		"Pause between page requests, e.g. 500ms")
	cmd.Flags().String("direction", "",
		"Order by star time: asc or desc")
}

// getFetchFlags extracts fetch flags from a command.
func getFetchFlags(cmd *cobra.Command) *Flags {
	user, _ := cmd.Flags().GetString("user")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	perPage, _ := cmd.Flags().GetInt("per-page")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	delay, _ := cmd.Flags().GetDuration("delay")
	direction, _ := cmd.Flags().GetString("direction")

	return &Flags{
		User:      user,
		Output:    output,
		Format:    format,
		PerPage:   perPage,
		MaxPages:  maxPages,
		Delay:     delay,
		Direction: direction,
	}
}

// writeExport writes records to path in the requested format.
func writeExport(path, format string, records []stars.Record) error {
	if format == "csv" {
		return github.WriteCSV(path, records)
	}
	return github.WriteJSON(path, records)
}
