// Package charts renders summary artifacts as PNG files: a language bar
// chart, a cumulative star-growth line chart, and topic/description word
// clouds. Each renderer is a pure function of a summary; an empty summary
// yields ErrNoData and no file, never a failed run.
package charts

import (
	"context"
	"os"
	"path/filepath"

	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
)

// Result records which artifact files a Render pass produced. A blank field
// means the corresponding summary was empty and the file was skipped.
type Result struct {
	Languages    string
	Growth       string
	Topics       string
	Descriptions string
}

// Renderer draws summary charts into an output directory.
type Renderer struct {
	outputDir string
	width     int
	height    int
	cloudSize int
	limit     int
	fontPath  string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOutputDir sets the directory artifacts are written into.
func WithOutputDir(dir string) Option {
	return func(r *Renderer) {
		r.outputDir = dir
	}
}

// WithDimensions sets the pixel size of the bar and line charts.
func WithDimensions(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithCloudSize sets the pixel width and height of the square word clouds.
func WithCloudSize(px int) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.cloudSize = px
		}
	}
}

// WithLimit caps how many languages the bar chart draws.
func WithLimit(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.limit = n
		}
	}
}

// New creates a Renderer with the given options.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		outputDir: constants.DefaultOutputDir,
		width:     constants.ChartWidth,
		height:    constants.ChartHeight,
		cloudSize: constants.CloudSize,
		limit:     constants.DefaultTopLanguages,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws every chart the report has data for and reports which files
// were written. Empty summaries are skipped quietly; any other failure is
// fatal for the run.
func (r *Renderer) Render(ctx context.Context, report *analysis.Report) (*Result, error) {
	log := logging.FromContext(ctx)
	result := &Result{}

	steps := []struct {
		name string
		draw func() (string, error)
		dest *string
	}{
		{constants.LanguagesChartName, func() (string, error) { return r.Languages(report.Languages) }, &result.Languages},
		{constants.GrowthChartName, func() (string, error) { return r.Growth(report.Growth, report.Bucket) }, &result.Growth},
		{constants.TopicsCloudName, func() (string, error) { return r.Cloud(constants.TopicsCloudName, report.Topics) }, &result.Topics},
		{constants.DescriptionsCloudName, func() (string, error) { return r.Cloud(constants.DescriptionsCloudName, report.Words) }, &result.Descriptions},
	}

	for _, step := range steps {
		name, err := step.draw()
		if err != nil {
			if errors.IsNoData(err) {
				log.Info().Str("artifact", step.name).Msg("Summary empty, skipping chart")
				continue
			}
			return nil, err
		}
		*step.dest = name
		log.Info().Str("artifact", name).Msg("Rendered chart")
	}

	return result, nil
}

// write persists a finished artifact into the output directory.
func (r *Renderer) write(name string, data []byte) error {
	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
