package starlens

import (
	"context"
	"os"

	"github.com/agentstation/starlens/internal/charts"
	"github.com/agentstation/starlens/internal/enrich"
	"github.com/agentstation/starlens/internal/report"
	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
	"github.com/agentstation/starlens/pkg/stars"
)

// Compile-time interface check to ensure proper implementation.
var _ Analyzer = (*client)(nil)

// Analyzer runs the full pipeline over one or more exports.
type Analyzer interface {
	// Analyze loads the exports, computes every summary, renders charts,
	// and writes the Markdown report
	Analyze(ctx context.Context, inputs ...string) (*Result, error)
}

// Result is the outcome of one full pipeline run.
type Result struct {
	// Summary holds every computed summary.
	Summary *analysis.Report

	// Artifacts names the chart files that were rendered. Empty fields mean
	// the matching summary had no data.
	Artifacts *charts.Result

	// Highlights are the AI-written notes on recently starred repositories.
	// Nil when enrichment is disabled or skipped.
	Highlights []report.Highlight

	// ReportPath is the location of the written Markdown report.
	ReportPath string

	// Skipped counts malformed records dropped during loading.
	Skipped int
}

// Analyze loads the exports, computes every summary, renders charts, and
// writes the Markdown report into the configured output directory.
func (c *client) Analyze(ctx context.Context, inputs ...string) (*Result, error) {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(c.options.outputDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", c.options.outputDir, err)
	}

	records, err := c.loader.Load(ctx, inputs...)
	if err != nil {
		return nil, err
	}
	skipped := c.loader.Skipped()

	summary := c.analyzer.Analyze(records)
	log.Info().
		Int("records", summary.TotalRecords).
		Int("skipped", skipped).
		Msg("Computed summaries")

	artifacts, err := c.renderer.Render(ctx, summary)
	if err != nil {
		return nil, err
	}

	highlights, err := c.highlights(ctx, records)
	if err != nil {
		return nil, err
	}

	path, err := c.reporter.Write(ctx, summary, artifacts, highlights)
	if err != nil {
		return nil, err
	}

	return &Result{
		Summary:    summary,
		Artifacts:  artifacts,
		Highlights: highlights,
		ReportPath: path,
		Skipped:    skipped,
	}, nil
}

// highlights runs the optional enrichment stage. Setup and API failures are
// warnings that skip the stage; only cancellation aborts the run.
func (c *client) highlights(ctx context.Context, records []stars.Record) ([]report.Highlight, error) {
	if c.options.highlights <= 0 {
		return nil, nil
	}
	log := logging.FromContext(ctx)

	enricher, err := enrich.New(c.options.enricherOptions()...)
	if err != nil {
		log.Warn().Err(err).Msg("Skipping highlights")
		return nil, nil
	}

	summaries, err := enricher.Highlights(ctx, records)
	if err != nil {
		if errors.IsCanceled(err) || errors.IsTimeout(err) {
			return nil, err
		}
		log.Warn().Err(err).Msg("Skipping highlights")
		return nil, nil
	}

	out := make([]report.Highlight, 0, len(summaries))
	for _, h := range summaries {
		out = append(out, report.Highlight{Name: h.Name, URL: h.URL, Note: h.Summary})
	}
	return out, nil
}
