// Package report assembles the markdown report that ties the analysis
// summaries and rendered chart artifacts together. The report references the
// chart files by name, so it is written into the same directory they were
// rendered into.
package report

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/starlens/internal/charts"
	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
)

// Highlight is a short blurb about one notable starred repository, shown in
// an optional section at the end of the report.
type Highlight struct {
	Name string
	URL  string
	Note string
}

// Writer assembles and writes the markdown report.
type Writer struct {
	outputDir  string
	reportName string
	rows       int
	clock      func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithOutputDir sets the directory the report is written into.
func WithOutputDir(dir string) Option {
	return func(w *Writer) {
		w.outputDir = dir
	}
}

// WithReportName overrides the report filename.
func WithReportName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.reportName = name
		}
	}
}

// WithRows caps how many rows each count table shows.
func WithRows(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.rows = n
		}
	}
}

// WithClock overrides the timestamp source, pinning report output for tests.
func WithClock(clock func() time.Time) Option {
	return func(w *Writer) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// New creates a report Writer with the given options.
func New(opts ...Option) *Writer {
	w := &Writer{
		outputDir:  constants.DefaultOutputDir,
		reportName: constants.DefaultReportName,
		rows:       constants.DefaultReportRows,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write assembles the report for the given summary and artifact set and
// writes it to disk, returning the full path of the written file. Sections
// whose summaries are empty carry a note instead of a table, so the report
// always has the same shape.
func (w *Writer) Write(ctx context.Context, summary *analysis.Report, artifacts *charts.Result, highlights []Highlight) (string, error) {
	if summary == nil {
		return "", errors.NewValidationError("summary", nil, "must not be nil")
	}
	if artifacts == nil {
		artifacts = &charts.Result{}
	}

	m := NewMarkdownBuffer()
	w.header(m)
	w.overview(m, summary)
	w.languages(m, summary, artifacts)
	w.growth(m, summary, artifacts)
	w.topics(m, summary, artifacts)
	w.descriptions(m, summary, artifacts)
	w.highlights(m, highlights)
	w.footer(m)

	if err := m.Build(); err != nil {
		return "", errors.WrapRender(w.reportName, err)
	}

	path := filepath.Join(w.outputDir, w.reportName)
	if err := os.WriteFile(path, []byte(m.String()), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}

	logging.FromContext(ctx).Info().Str("artifact", w.reportName).Msg("Wrote report")
	return path, nil
}

func (w *Writer) header(m *Markdown) {
	m.H1("Starred Repositories Report").LF()
	m.PlainTextf("_Generated: %s_", w.clock().UTC().Format(constants.TimeFormatHuman)).LF()
}

func (w *Writer) overview(m *Markdown, summary *analysis.Report) {
	m.H2("Overview").LF()

	rows := [][]string{
		{"Starred repositories", strconv.Itoa(summary.TotalRecords)},
		{"With primary language", strconv.Itoa(summary.WithLanguage)},
		{"With topics", strconv.Itoa(summary.WithTopics)},
		{"With description", strconv.Itoa(summary.WithDescription)},
	}
	if !summary.First.IsZero() {
		rows = append(rows,
			[]string{"First star", summary.First.UTC().Format(constants.TimeFormatDate)},
			[]string{"Most recent star", summary.Last.UTC().Format(constants.TimeFormatDate)},
		)
	}

	m.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	m.LF()
}

func (w *Writer) languages(m *Markdown, summary *analysis.Report, artifacts *charts.Result) {
	m.H2("Language Distribution").LF()
	if artifacts.Languages != "" {
		m.Image("Language distribution", artifacts.Languages).LF()
	}
	if len(summary.Languages) == 0 {
		m.Blockquote("No starred repository reported a primary language.")
		m.LF()
		return
	}
	w.countTable(m, "Language", "Repositories", summary.Languages)
}

func (w *Writer) growth(m *Markdown, summary *analysis.Report, artifacts *charts.Result) {
	m.H2("Star Growth").LF()
	if artifacts.Growth != "" {
		m.Image("Cumulative stars over time", artifacts.Growth).LF()
	}
	if len(summary.Growth) == 0 {
		m.Blockquote("No starring dates were available.")
		m.LF()
		return
	}

	last := summary.Growth[len(summary.Growth)-1]
	m.PlainTextf("%d stars accumulated across %d %s buckets, ending at %s.",
		last.Cumulative, len(summary.Growth), summary.Bucket,
		last.Bucket.UTC().Format(bucketLayout(summary.Bucket)))
	m.LF()
}

func (w *Writer) topics(m *Markdown, summary *analysis.Report, artifacts *charts.Result) {
	m.H2("Topics").LF()
	if artifacts.Topics != "" {
		m.Image("Topic word cloud", artifacts.Topics).LF()
	}
	if len(summary.Topics) == 0 {
		m.Blockquote("No topics were attached to the starred repositories.")
		m.LF()
		return
	}
	w.countTable(m, "Topic", "Repositories", summary.Topics)
}

func (w *Writer) descriptions(m *Markdown, summary *analysis.Report, artifacts *charts.Result) {
	m.H2("Description Words").LF()
	if artifacts.Descriptions != "" {
		m.Image("Description word cloud", artifacts.Descriptions).LF()
	}
	if len(summary.Words) == 0 {
		m.Blockquote("No descriptions survived tokenization.")
		m.LF()
		return
	}
	w.countTable(m, "Word", "Occurrences", summary.Words)
}

func (w *Writer) highlights(m *Markdown, highlights []Highlight) {
	if len(highlights) == 0 {
		return
	}

	m.H2("Highlights").LF()
	items := make([]string, 0, len(highlights))
	for _, h := range highlights {
		item := md.Bold(h.Name)
		if h.URL != "" {
			item = md.Bold(md.Link(h.Name, h.URL))
		}
		if h.Note != "" {
			item += ": " + h.Note
		}
		items = append(items, item)
	}
	m.BulletList(items...)
	m.LF()
}

func (w *Writer) footer(m *Markdown) {
	m.HorizontalRule()
	m.PlainText(md.Italic("Generated by " + md.Link("starlens", "https://github.com/agentstation/starlens")))
	m.LF()
}

// countTable renders the top rows of a count summary as a two-column table.
func (w *Writer) countTable(m *Markdown, nameHeader, countHeader string, categories []analysis.CategoryCount) {
	top := analysis.Top(categories, w.rows)
	rows := make([][]string, 0, len(top))
	for _, c := range top {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Count)})
	}
	m.Table(md.TableSet{
		Header: []string{nameHeader, countHeader},
		Rows:   rows,
	})
	m.LF()
}

// bucketLayout maps a growth bucket to the layout its keys render with.
func bucketLayout(bucket string) string {
	if bucket == constants.GrowthBucketDay {
		return constants.TimeFormatDate
	}
	return constants.TimeFormatMonth
}
