package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// runRoot executes the root command with args and returns combined output.
func runRoot(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// TestExecute_VersionCommand verifies the version subcommand output.
func TestExecute_VersionCommand(t *testing.T) {
	app, err := New("1.2.3", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	out, err := runRoot(t, app, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "starlens 1.2.3") {
		t.Errorf("output = %q, want version line", out)
	}
	if strings.Contains(out, "commit:") {
		t.Errorf("output = %q, commit details need verbose", out)
	}
}

// TestExecute_VersionVerbose verifies -v adds build details.
func TestExecute_VersionVerbose(t *testing.T) {
	app, err := New("1.2.3", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	out, err := runRoot(t, app, "version", "-v")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "commit:") || !strings.Contains(out, "abc123") {
		t.Errorf("output = %q, want commit details", out)
	}
}

// TestExecute_VersionFlag verifies the root --version flag.
func TestExecute_VersionFlag(t *testing.T) {
	app, err := New("2.0.0", "def456", "2024-06-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	out, err := runRoot(t, app, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "starlens 2.0.0") {
		t.Errorf("output = %q, want version line", out)
	}
}

// TestExecute_FlagsUpdateConfig verifies persistent flags reach the config.
func TestExecute_FlagsUpdateConfig(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = runRoot(t, app, "version", "--format", "json", "--quiet", "--no-color")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if app.Config().Format != "json" {
		t.Errorf("Format = %s, want json", app.Config().Format)
	}
	if !app.Config().Quiet {
		t.Error("Quiet not applied from flag")
	}
	if !app.Config().NoColor {
		t.Error("NoColor not applied from flag")
	}
}

// TestExecute_RegistersCommands verifies all expected subcommands exist.
func TestExecute_RegistersCommands(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	want := map[string]bool{
		"analyze": false,
		"fetch":   false,
		"stats":   false,
		"version": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

// TestExecute_UnknownCommand verifies unknown subcommands fail.
func TestExecute_UnknownCommand(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := runRoot(t, app, "nonexistent"); err == nil {
		t.Error("Execute() error = nil, want unknown command error")
	}
}
