package globals

import "github.com/spf13/cobra"

// AnalysisFlags holds flags shared by commands that read exported star data.
type AnalysisFlags struct {
	Inputs []string
	Bucket string
	Limit  int
}

// AddAnalysisFlags adds the shared input flags to a command.
func AddAnalysisFlags(cmd *cobra.Command) *AnalysisFlags {
	flags := &AnalysisFlags{}

	cmd.Flags().StringSliceVarP(&flags.Inputs, "input", "i", nil,
		"Path to a starred-repository JSON export (repeatable)")
	cmd.Flags().StringVar(&flags.Bucket, "bucket", "",
		"Growth bucketing granularity: day or month")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of rows")

	return flags
}

// ParseAnalysis extracts analysis flags from a command.
// The command must have had AddAnalysisFlags called on it, otherwise this will panic.
func ParseAnalysis(cmd *cobra.Command) *AnalysisFlags {
	return &AnalysisFlags{
		Inputs: mustGetStringSlice(cmd, "input"),
		Bucket: mustGetString(cmd, "bucket"),
		Limit:  mustGetInt(cmd, "limit"),
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
