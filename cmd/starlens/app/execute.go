package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/pkg/logging"
)

// Execute runs the starlens CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "starlens",
		Short:   "GitHub starred-repository analytics",
		Version: a.version,
		Long: `Starlens turns a GitHub starred-repository export into summaries,
charts, and a Markdown report.

It reads the JSON array produced by starlens fetch (or any compatible
exporter), computes language, topic, vocabulary, and growth summaries,
renders PNG charts and word clouds, and writes a report that links them
together. Summaries can also be printed straight to the console.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Add global flags
	flags := globals.AddFlags(rootCmd)

	var configFile string
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.starlens.yaml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd, configFile, flags)
	}

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("starlens {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setup is called before any command runs. It folds parsed flags into the
// configuration, rebuilds the logger, and threads it through the command
// context so every pipeline stage logs consistently.
func (a *App) setup(cmd *cobra.Command, configFile string, flags *globals.Flags) error {
	// An explicit --config replaces the config loaded at startup
	if configFile != "" && configFile != a.config.ConfigFile {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	// Update config from parsed flags
	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Output, flags.LogLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.CreateAnalyzeCommand())
	rootCmd.AddCommand(a.CreateFetchCommand())
	rootCmd.AddCommand(a.CreateStatsCommand())

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
