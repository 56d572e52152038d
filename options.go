package starlens

import (
	"net/http"
	"time"

	"github.com/agentstation/starlens/internal/charts"
	"github.com/agentstation/starlens/internal/enrich"
	"github.com/agentstation/starlens/internal/github"
	"github.com/agentstation/starlens/internal/report"
	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
)

// Option is a function that configures a Client instance.
type Option func(*options)

// options holds the configured behavior of a Client. Zero fields defer to
// the defaults of the component they configure.
type options struct {
	// summaries
	bucket        string
	topLanguages  int
	minWordLength int
	maxVocabulary int
	stopWords     []string

	// artifacts
	outputDir   string
	reportName  string
	chartWidth  int
	chartHeight int
	cloudSize   int

	// highlights
	highlights  int
	openaiKey   string
	openaiBase  string
	openaiModel string

	// github fetch
	githubToken   string
	githubBaseURL string
	pageSize      int
	maxPages      int
	fetchDelay    time.Duration
	direction     string
	httpClient    *http.Client
}

// defaults returns the options every Client starts from.
func defaults() *options {
	return &options{
		outputDir: constants.DefaultOutputDir,
	}
}

// apply runs each option against o and returns it.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithBucket configures the growth bucketing granularity, "day" or "month".
func WithBucket(bucket string) Option {
	return func(o *options) {
		o.bucket = bucket
	}
}

// WithTopLanguages configures how many categories the bar chart and the
// report tables show.
func WithTopLanguages(n int) Option {
	return func(o *options) {
		o.topLanguages = n
	}
}

// WithMinWordLength configures the shortest description token that counts
// toward the vocabulary summary.
func WithMinWordLength(n int) Option {
	return func(o *options) {
		o.minWordLength = n
	}
}

// WithMaxVocabulary configures the vocabulary summary size cap.
func WithMaxVocabulary(n int) Option {
	return func(o *options) {
		o.maxVocabulary = n
	}
}

// WithStopWords adds stop words excluded from the vocabulary summary.
func WithStopWords(words ...string) Option {
	return func(o *options) {
		o.stopWords = append(o.stopWords, words...)
	}
}

// WithOutputDir configures where the report and chart files are written.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.outputDir = dir
		}
	}
}

// WithReportName configures the report file name.
func WithReportName(name string) Option {
	return func(o *options) {
		o.reportName = name
	}
}

// WithChartSize configures the pixel dimensions of the bar and line charts.
func WithChartSize(width, height int) Option {
	return func(o *options) {
		o.chartWidth = width
		o.chartHeight = height
	}
}

// WithCloudSize configures the pixel size of the square word clouds.
func WithCloudSize(px int) Option {
	return func(o *options) {
		o.cloudSize = px
	}
}

// WithHighlights configures how many recently starred repositories get an
// AI-written highlight. Zero disables enrichment entirely.
func WithHighlights(n int) Option {
	return func(o *options) {
		o.highlights = n
	}
}

// WithOpenAI configures the OpenAI-compatible endpoint used for highlights.
// Empty base URL and model fall back to the public API and default model.
func WithOpenAI(apiKey, baseURL, model string) Option {
	return func(o *options) {
		o.openaiKey = apiKey
		o.openaiBase = baseURL
		o.openaiModel = model
	}
}

// WithGitHubToken configures the bearer token for GitHub API requests.
func WithGitHubToken(token string) Option {
	return func(o *options) {
		o.githubToken = token
	}
}

// WithGitHubBaseURL configures the GitHub API base URL.
func WithGitHubBaseURL(base string) Option {
	return func(o *options) {
		o.githubBaseURL = base
	}
}

// WithPageSize configures how many repositories each GitHub page requests.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = n
	}
}

// WithMaxPages configures the GitHub pagination cap.
func WithMaxPages(n int) Option {
	return func(o *options) {
		o.maxPages = n
	}
}

// WithFetchDelay configures the pause between GitHub page fetches.
func WithFetchDelay(d time.Duration) Option {
	return func(o *options) {
		o.fetchDelay = d
	}
}

// WithFetchDirection configures the starred-at ordering of the GitHub fetch,
// "asc" or "desc".
func WithFetchDirection(dir string) Option {
	return func(o *options) {
		o.direction = dir
	}
}

// WithHTTPClient configures the HTTP client used for GitHub requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// analyzerOptions translates the configured options for the aggregator.
func (o *options) analyzerOptions() []analysis.Option {
	opts := []analysis.Option{}
	if o.bucket != "" {
		opts = append(opts, analysis.WithBucket(o.bucket))
	}
	if o.minWordLength > 0 {
		opts = append(opts, analysis.WithMinWordLength(o.minWordLength))
	}
	if o.maxVocabulary > 0 {
		opts = append(opts, analysis.WithMaxVocabulary(o.maxVocabulary))
	}
	if len(o.stopWords) > 0 {
		opts = append(opts, analysis.WithStopWords(o.stopWords...))
	}
	return opts
}

// rendererOptions translates the configured options for the chart renderer.
func (o *options) rendererOptions() []charts.Option {
	opts := []charts.Option{charts.WithOutputDir(o.outputDir)}
	if o.chartWidth > 0 && o.chartHeight > 0 {
		opts = append(opts, charts.WithDimensions(o.chartWidth, o.chartHeight))
	}
	if o.cloudSize > 0 {
		opts = append(opts, charts.WithCloudSize(o.cloudSize))
	}
	if o.topLanguages > 0 {
		opts = append(opts, charts.WithLimit(o.topLanguages))
	}
	return opts
}

// reporterOptions translates the configured options for the report writer.
func (o *options) reporterOptions() []report.Option {
	opts := []report.Option{report.WithOutputDir(o.outputDir)}
	if o.reportName != "" {
		opts = append(opts, report.WithReportName(o.reportName))
	}
	if o.topLanguages > 0 {
		opts = append(opts, report.WithRows(o.topLanguages))
	}
	return opts
}

// githubOptions translates the configured options for the GitHub client.
func (o *options) githubOptions() []github.Option {
	opts := []github.Option{}
	if o.githubToken != "" {
		opts = append(opts, github.WithToken(o.githubToken))
	}
	if o.githubBaseURL != "" {
		opts = append(opts, github.WithBaseURL(o.githubBaseURL))
	}
	if o.pageSize > 0 {
		opts = append(opts, github.WithPageSize(o.pageSize))
	}
	if o.maxPages > 0 {
		opts = append(opts, github.WithMaxPages(o.maxPages))
	}
	if o.fetchDelay > 0 {
		opts = append(opts, github.WithDelay(o.fetchDelay))
	}
	if o.direction != "" {
		opts = append(opts, github.WithDirection(o.direction))
	}
	if o.httpClient != nil {
		opts = append(opts, github.WithHTTPClient(o.httpClient))
	}
	return opts
}

// enricherOptions translates the configured options for the highlight
// enricher. The API key stays mandatory; enrich.New rejects an empty one.
func (o *options) enricherOptions() []enrich.Option {
	opts := []enrich.Option{enrich.WithAPIKey(o.openaiKey)}
	if o.openaiBase != "" {
		opts = append(opts, enrich.WithBaseURL(o.openaiBase))
	}
	if o.openaiModel != "" {
		opts = append(opts, enrich.WithModel(o.openaiModel))
	}
	if o.highlights > 0 {
		opts = append(opts, enrich.WithCount(o.highlights))
	}
	return opts
}
