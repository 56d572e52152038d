package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/starlens/cmd/starlens/cmd/analyze"
	"github.com/agentstation/starlens/cmd/starlens/cmd/fetch"
	"github.com/agentstation/starlens/cmd/starlens/cmd/stats"
)

// CreateAnalyzeCommand creates the analyze command with app dependencies.
func (a *App) CreateAnalyzeCommand() *cobra.Command {
	return analyze.NewCommand(a)
}

// CreateFetchCommand creates the fetch command with app dependencies.
func (a *App) CreateFetchCommand() *cobra.Command {
	return fetch.NewCommand(a)
}

// CreateStatsCommand creates the stats command with app dependencies.
func (a *App) CreateStatsCommand() *cobra.Command {
	return stats.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("starlens %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
