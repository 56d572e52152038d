// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Output   string
	LogLevel string
	Quiet    bool
	Verbose  bool
	NoColor  bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVarP(&flags.Output, "format", "o", "",
		"Output format: table, json, yaml, wide")
	// Keep --output working as an alias for --format
	cmd.PersistentFlags().StringVar(&flags.Output, "output", "", "")
	_ = cmd.PersistentFlags().MarkHidden("output") // Hidden but functional

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) (*Flags, error) {
	// Walk up the command hierarchy to find persistent flags
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	output, _ := root.PersistentFlags().GetString("format")
	logLevel, _ := root.PersistentFlags().GetString("log-level")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		Output:   output,
		LogLevel: logLevel,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
	}, nil
}
