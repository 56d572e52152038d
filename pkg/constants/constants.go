// Package constants provides shared constants used throughout the starlens codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the GitHub API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// FetchTimeout is the timeout for a full paginated starred-repository fetch
	FetchTimeout = 5 * time.Minute

	// EnrichTimeout is the timeout for a full batch of model completions
	EnrichTimeout = 10 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Analysis constants define defaults for the aggregation stage
const (
	// DefaultTopLanguages is the number of languages kept in the distribution summary
	DefaultTopLanguages = 15

	// DefaultTopWords is the vocabulary size kept per word-frequency summary
	DefaultTopWords = 100

	// MinWordLength is the shortest token counted during description analysis
	MinWordLength = 3

	// GrowthBucketMonth buckets the star-growth trend by calendar month
	GrowthBucketMonth = "month"

	// GrowthBucketDay buckets the star-growth trend by calendar day
	GrowthBucketDay = "day"
)

// Chart constants define the dimensions of rendered PNG artifacts
const (
	// ChartWidth is the pixel width of bar and line charts
	ChartWidth = 1280

	// ChartHeight is the pixel height of bar and line charts
	ChartHeight = 720

	// CloudSize is the pixel width and height of square word-cloud images
	CloudSize = 1024

	// MaxBarLabelLength is the longest label drawn under a bar before truncation
	MaxBarLabelLength = 12
)

// Fetch constants define GitHub API paging and limits
const (
	// DefaultPageSize is the number of repositories requested per page
	DefaultPageSize = 100

	// MaxPages is a safety cap on pagination to bound runaway fetches
	MaxPages = 400

	// MaxConcurrentCompletions is the maximum number of in-flight model calls
	MaxConcurrentCompletions = 4

	// DefaultHighlightCount is how many recent stars get a highlight blurb
	DefaultHighlightCount = 5
)

// Default values
const (
	// DefaultGitHubAPIURL is the base URL for the GitHub REST API
	DefaultGitHubAPIURL = "https://api.github.com"

	// DefaultOpenAIModel is the model used for highlight generation
	DefaultOpenAIModel = "gpt-4o-mini"

	// DefaultOutputDir is the directory artifacts are written to when unset
	DefaultOutputDir = "."

	// DefaultReportName is the filename of the assembled markdown report
	DefaultReportName = "report.md"

	// DefaultReportRows is the number of rows shown per count table in the report
	DefaultReportRows = 10
)

// Artifact filenames written into the output directory
const (
	// LanguagesChartName is the language-distribution bar chart
	LanguagesChartName = "languages.png"

	// GrowthChartName is the cumulative star-growth line chart
	GrowthChartName = "growth.png"

	// TopicsCloudName is the topic word cloud
	TopicsCloudName = "topics.png"

	// DescriptionsCloudName is the description word cloud
	DescriptionsCloudName = "descriptions.png"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"

	// TimeFormatDate is the date-only layout used by some star exports
	TimeFormatDate = "2006-01-02"

	// TimeFormatMonth is the layout of month bucket keys
	TimeFormatMonth = "2006-01"
)
