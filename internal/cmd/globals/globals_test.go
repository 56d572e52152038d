package globals

import (
	"testing"

	"github.com/spf13/cobra"
)

// newTestRoot returns a root command with global flags attached.
func newTestRoot() (*cobra.Command, *Flags) {
	cmd := &cobra.Command{
		Use: "root",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	flags := AddFlags(cmd)
	return cmd, flags
}

func TestAddFlags(t *testing.T) {
	cmd, flags := newTestRoot()
	cmd.SetArgs([]string{
		"--format", "json",
		"--log-level", "debug",
		"-q", "-v", "--no-color",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if flags.Output != "json" {
		t.Errorf("Output = %q, want json", flags.Output)
	}
	if flags.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", flags.LogLevel)
	}
	if !flags.Quiet {
		t.Error("Quiet not set")
	}
	if !flags.Verbose {
		t.Error("Verbose not set")
	}
	if !flags.NoColor {
		t.Error("NoColor not set")
	}
}

func TestOutputAlias(t *testing.T) {
	cmd, flags := newTestRoot()
	cmd.SetArgs([]string{"--output", "yaml"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if flags.Output != "yaml" {
		t.Errorf("Output = %q, want yaml via --output alias", flags.Output)
	}
}

func TestFormatShorthand(t *testing.T) {
	cmd, flags := newTestRoot()
	cmd.SetArgs([]string{"-o", "wide"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if flags.Output != "wide" {
		t.Errorf("Output = %q, want wide via -o", flags.Output)
	}
}

func TestParseFromSubcommand(t *testing.T) {
	var parsed *Flags
	sub := &cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			parsed, err = Parse(cmd)
			return err
		},
	}

	root, _ := newTestRoot()
	root.AddCommand(sub)
	root.SetArgs([]string{"sub", "--format", "json", "--quiet"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if parsed == nil {
		t.Fatal("Parse() not reached")
	}
	if parsed.Output != "json" {
		t.Errorf("Output = %q, want json", parsed.Output)
	}
	if !parsed.Quiet {
		t.Error("Quiet not parsed from root persistent flags")
	}
}

func TestAnalysisFlags(t *testing.T) {
	cmd := &cobra.Command{
		Use: "view",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	AddAnalysisFlags(cmd)
	cmd.SetArgs([]string{
		"--input", "a.json",
		"--input", "b.json",
		"--bucket", "day",
		"--limit", "5",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	flags := ParseAnalysis(cmd)
	if len(flags.Inputs) != 2 || flags.Inputs[0] != "a.json" || flags.Inputs[1] != "b.json" {
		t.Errorf("Inputs = %v, want [a.json b.json]", flags.Inputs)
	}
	if flags.Bucket != "day" {
		t.Errorf("Bucket = %q, want day", flags.Bucket)
	}
	if flags.Limit != 5 {
		t.Errorf("Limit = %d, want 5", flags.Limit)
	}
}

func TestAnalysisFlagsDefaults(t *testing.T) {
	cmd := &cobra.Command{
		Use: "view",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	AddAnalysisFlags(cmd)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	flags := ParseAnalysis(cmd)
	if len(flags.Inputs) != 0 {
		t.Errorf("Inputs = %v, want empty", flags.Inputs)
	}
	if flags.Bucket != "" {
		t.Errorf("Bucket = %q, want empty", flags.Bucket)
	}
	if flags.Limit != 0 {
		t.Errorf("Limit = %d, want 0", flags.Limit)
	}
}
