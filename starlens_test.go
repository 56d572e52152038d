package starlens_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/starlens"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
)

const testExport = `[
  {
    "full_name": "cli/cli",
    "url": "https://github.com/cli/cli",
    "description": "GitHub on the command line",
    "stars": 37000,
    "language": "Go",
    "topics": ["cli", "github"],
    "starred_at": "2024-03-10T09:00:00Z"
  },
  {
    "full_name": "junegunn/fzf",
    "description": "A command-line fuzzy finder",
    "stars": 60000,
    "language": "Go",
    "topics": ["cli"],
    "starred_at": "2024-04-02T18:30:00Z"
  },
  {
    "full_name": "psf/requests",
    "description": "A simple HTTP library",
    "stars": 51000,
    "language": "Python",
    "starred_at": "2024-05-21T07:45:00Z"
  }
]`

func testContext() context.Context {
	return logging.WithLogger(context.Background(), logging.NewNopLogger())
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stars.json")
	require.NoError(t, os.WriteFile(path, []byte(testExport), 0o644))
	return path
}

func TestAnalyze(t *testing.T) {
	input := writeExport(t)
	out := t.TempDir()

	sl, err := starlens.New(
		starlens.WithOutputDir(out),
		starlens.WithChartSize(480, 360),
		starlens.WithCloudSize(256),
		starlens.WithTopLanguages(5),
	)
	require.NoError(t, err)

	result, err := sl.Analyze(testContext(), input)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.TotalRecords)
	assert.Equal(t, filepath.Join(out, "report.md"), result.ReportPath)
	assert.Zero(t, result.Skipped)
	assert.Empty(t, result.Highlights)

	content, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Starred Repositories Report")
	assert.Contains(t, string(content), "## Language Distribution")

	require.NotNil(t, result.Artifacts)
	assert.Equal(t, "languages.png", result.Artifacts.Languages)
	assert.Equal(t, "growth.png", result.Artifacts.Growth)
	assert.FileExists(t, filepath.Join(out, "languages.png"))
	assert.FileExists(t, filepath.Join(out, "growth.png"))
}

func TestAnalyzeCreatesOutputDir(t *testing.T) {
	input := writeExport(t)
	out := filepath.Join(t.TempDir(), "nested", "out")

	sl, err := starlens.New(
		starlens.WithOutputDir(out),
		starlens.WithChartSize(480, 360),
		starlens.WithCloudSize(256),
	)
	require.NoError(t, err)

	result, err := sl.Analyze(testContext(), input)
	require.NoError(t, err)
	assert.FileExists(t, result.ReportPath)
}

func TestAnalyzeMissingInput(t *testing.T) {
	sl, err := starlens.New(starlens.WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	_, err = sl.Analyze(testContext(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAnalyzeSkipsHighlightsWithoutKey(t *testing.T) {
	input := writeExport(t)
	out := t.TempDir()

	sl, err := starlens.New(
		starlens.WithOutputDir(out),
		starlens.WithChartSize(480, 360),
		starlens.WithCloudSize(256),
		starlens.WithHighlights(2),
	)
	require.NoError(t, err)

	result, err := sl.Analyze(testContext(), input)
	require.NoError(t, err)
	assert.Empty(t, result.Highlights)

	content, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "## Highlights")
}

func TestSummarize(t *testing.T) {
	input := writeExport(t)

	sl, err := starlens.New()
	require.NoError(t, err)

	summary, err := sl.Summarize(testContext(), input)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 3, summary.WithLanguage)
	require.NotEmpty(t, summary.Languages)
	assert.Equal(t, "Go", summary.Languages[0].Name)
	assert.Equal(t, 2, summary.Languages[0].Count)
}

func TestNewRejectsBadBucket(t *testing.T) {
	_, err := starlens.New(starlens.WithBucket("week"))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
		  {
		    "starred_at": "2024-03-10T09:00:00Z",
		    "repo": {
		      "full_name": "cli/cli",
		      "html_url": "https://github.com/cli/cli",
		      "description": "GitHub on the command line",
		      "stargazers_count": 37000,
		      "language": "Go",
		      "topics": ["cli"]
		    }
		  }
		]`))
	}))
	defer srv.Close()

	sl, err := starlens.New(starlens.WithGitHubBaseURL(srv.URL))
	require.NoError(t, err)

	records, err := sl.Fetch(testContext(), "octocat")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "cli/cli", records[0].FullName)
	assert.Equal(t, 37000, int(records[0].Stars))
}
