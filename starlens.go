//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/starlens --repository.default-branch master --repository.path /

// Package starlens provides the main entry point for the starlens
// starred-repository analytics system. It offers a high-level interface for
// turning a GitHub star export into summaries, charts, and a Markdown report.
//
// Starlens wraps the underlying pipeline stages with additional features
// including:
// - Loading and merging one or more JSON exports with malformed-record skipping
// - Deterministic language, topic, vocabulary, and growth summaries
// - PNG chart and word-cloud rendering for every non-empty summary
// - Optional AI-written highlights for the most recently starred repositories
// - Flexible configuration through functional options
//
// Example usage:
//
//	// Create a starlens instance with default settings
//	sl, err := starlens.New(starlens.WithOutputDir("./out"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Run the full pipeline over an export
//	result, err := sl.Analyze(ctx, "stars.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Report: %s\n", result.ReportPath)
//
//	// Or compute the summaries alone
//	summary, err := sl.Summarize(ctx, "stars.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, lang := range summary.Languages {
//	    fmt.Printf("%s: %d\n", lang.Name, lang.Count)
//	}
//
//	// Fetch a fresh export from the GitHub API
//	records, err := sl.Fetch(ctx, "octocat")
//	if err != nil {
//	    log.Fatal(err)
//	}
package starlens

import (
	"github.com/agentstation/starlens/internal/charts"
	"github.com/agentstation/starlens/internal/github"
	"github.com/agentstation/starlens/internal/report"
	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/stars"
)

// Client runs starred-repository analytics end to end.
type Client interface {

	// Analyzer runs the full pipeline: load, summarize, render, report
	Analyzer

	// Summarizer computes summaries without touching the filesystem
	Summarizer

	// Fetcher downloads starred repositories from the GitHub API
	Fetcher
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// pipeline stages, constructed once and reused across runs
	loader   *stars.Loader
	analyzer *analysis.Analyzer
	renderer *charts.Renderer
	reporter *report.Writer
	github   *github.Client
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)

	analyzer, err := analysis.New(o.analyzerOptions()...)
	if err != nil {
		return nil, errors.WrapValidation("analyzer", err)
	}

	return &client{
		options:  o,
		loader:   stars.NewLoader(),
		analyzer: analyzer,
		renderer: charts.New(o.rendererOptions()...),
		reporter: report.New(o.reporterOptions()...),
		github:   github.NewClient(o.githubOptions()...),
	}, nil
}
