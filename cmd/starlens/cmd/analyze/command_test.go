package analyze

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	starlens "github.com/agentstation/starlens"
	"github.com/agentstation/starlens/internal/appcontext"
)

const testExport = `[
  {"full_name": "cli/cli", "url": "https://github.com/cli/cli", "description": "GitHub CLI", "stars": 37000, "language": "Go", "topics": ["cli", "github"], "starred_at": "2024-03-10T09:00:00Z"},
  {"full_name": "junegunn/fzf", "url": "https://github.com/junegunn/fzf", "description": "Command-line fuzzy finder", "stars": 60000, "language": "Go", "topics": ["cli"], "starred_at": "2024-04-02T12:30:00Z"},
  {"full_name": "psf/requests", "url": "https://github.com/psf/requests", "description": "HTTP for humans", "stars": 51000, "language": "Python", "topics": [], "starred_at": "2024-05-21T18:45:00Z"}
]`

func testApp(quiet bool) *appcontext.Mock {
	return &appcontext.Mock{
		StarlensWithOptionsFunc: func(opts ...starlens.Option) (starlens.Client, error) {
			return starlens.New(opts...)
		},
		QuietFunc: func() bool { return quiet },
	}
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stars.json")
	if err := os.WriteFile(path, []byte(testExport), 0o644); err != nil {
		t.Fatalf("Failed to write export: %v", err)
	}
	return path
}

func runCommand(t *testing.T, app AppContext, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestAnalyze(t *testing.T) {
	path := writeExport(t)
	outputDir := filepath.Join(t.TempDir(), "out")

	out, errOut, err := runCommand(t, testApp(false),
		"--input", path, "--output-dir", outputDir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	reportPath := filepath.Join(outputDir, "report.md")
	if !strings.Contains(out, "Report written to "+reportPath) {
		t.Errorf("stdout = %q, want report path", out)
	}
	if !strings.Contains(errOut, "Analyzed 3 starred repositories") {
		t.Errorf("stderr = %q, want record count echo", errOut)
	}

	if _, err := os.Stat(reportPath); err != nil {
		t.Errorf("report not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "languages.png")); err != nil {
		t.Errorf("languages chart not written: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "# Starred Repositories Report") {
		t.Error("report missing title")
	}
}

func TestAnalyzeReportName(t *testing.T) {
	path := writeExport(t)
	outputDir := t.TempDir()

	_, _, err := runCommand(t, testApp(true),
		"--input", path, "--output-dir", outputDir, "--report-name", "stars.md")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "stars.md")); err != nil {
		t.Errorf("renamed report not written: %v", err)
	}
}

func TestAnalyzeRequiresInput(t *testing.T) {
	_, _, err := runCommand(t, testApp(false), "--output-dir", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "input") {
		t.Errorf("Execute() error = %v, want missing input flag", err)
	}
}

func TestAnalyzeMissingExport(t *testing.T) {
	_, _, err := runCommand(t, testApp(false),
		"--input", filepath.Join(t.TempDir(), "absent.json"), "--output-dir", t.TempDir())
	if err == nil {
		t.Error("Execute() error = nil, want unreadable input error")
	}
}

func TestAnalyzeQuietSuppressesEcho(t *testing.T) {
	path := writeExport(t)

	_, errOut, err := runCommand(t, testApp(true),
		"--input", path, "--output-dir", t.TempDir())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(errOut, "Analyzed") {
		t.Errorf("stderr = %q, want no record count echo", errOut)
	}
}

func TestAnalyzeBadBucket(t *testing.T) {
	path := writeExport(t)

	_, _, err := runCommand(t, testApp(false),
		"--input", path, "--output-dir", t.TempDir(), "--bucket", "week")
	if err == nil || !strings.Contains(err.Error(), "bucket") {
		t.Errorf("Execute() error = %v, want bucket validation error", err)
	}
}
