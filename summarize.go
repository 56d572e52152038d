package starlens

import (
	"context"

	"github.com/agentstation/starlens/pkg/analysis"
)

// Compile-time interface check to ensure proper implementation.
var _ Summarizer = (*client)(nil)

// Summarizer computes summaries without writing any artifact.
type Summarizer interface {
	// Summarize loads the exports and returns the computed summaries
	Summarize(ctx context.Context, inputs ...string) (*analysis.Report, error)
}

// Summarize loads the exports and computes every summary. Nothing is
// rendered or written; this backs the console stats views.
func (c *client) Summarize(ctx context.Context, inputs ...string) (*analysis.Report, error) {
	records, err := c.loader.Load(ctx, inputs...)
	if err != nil {
		return nil, err
	}
	return c.analyzer.Analyze(records), nil
}
