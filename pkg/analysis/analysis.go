// Package analysis computes descriptive summaries over a loaded star export:
// language distribution, cumulative star growth, topic frequency, and
// description word frequency. Summaries are derived and transient: nothing
// here persists state, and identical input always yields an identical Report.
package analysis

import (
	"time"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/stars"
)

// CategoryCount is one named bucket of a frequency summary.
type CategoryCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// GrowthPoint is one step of the cumulative star-accumulation trend.
type GrowthPoint struct {
	Bucket     time.Time `json:"bucket" yaml:"bucket"`
	Cumulative int       `json:"cumulative" yaml:"cumulative"`
}

// Report holds every summary derived from one record set. It is recomputed
// fully on each run and never stored.
type Report struct {
	// TotalRecords is the number of records analyzed.
	TotalRecords int `json:"total_records" yaml:"total_records"`

	// WithLanguage, WithTopics, and WithDescription count the records that
	// contributed to the respective summaries. A record missing a field is
	// excluded from that summary only, never dropped globally.
	WithLanguage    int `json:"with_language" yaml:"with_language"`
	WithTopics      int `json:"with_topics" yaml:"with_topics"`
	WithDescription int `json:"with_description" yaml:"with_description"`

	// First and Last bound the starred timestamps in the record set.
	First time.Time `json:"first,omitempty" yaml:"first,omitempty"`
	Last  time.Time `json:"last,omitempty" yaml:"last,omitempty"`

	// Bucket is the growth granularity used, "day" or "month".
	Bucket string `json:"bucket" yaml:"bucket"`

	// Languages is the full language distribution, descending count with
	// alphabetical tie-break.
	Languages []CategoryCount `json:"languages" yaml:"languages"`

	// Topics and Words are frequency summaries capped at the configured
	// vocabulary size, same ordering as Languages.
	Topics []CategoryCount `json:"topics" yaml:"topics"`
	Words  []CategoryCount `json:"words" yaml:"words"`

	// Growth is the cumulative star trend, ascending by bucket and
	// monotonically non-decreasing. Its final Cumulative equals TotalRecords.
	Growth []GrowthPoint `json:"growth" yaml:"growth"`
}

// Analyzer computes Reports. Configure it once and reuse it; Analyze has no
// side effects.
type Analyzer struct {
	bucket        string
	minWordLength int
	maxVocabulary int
	stopWords     map[string]struct{}
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBucket sets the growth bucketing granularity, "day" or "month".
func WithBucket(bucket string) Option {
	return func(a *Analyzer) {
		a.bucket = bucket
	}
}

// WithMinWordLength sets the shortest description token that is counted.
func WithMinWordLength(n int) Option {
	return func(a *Analyzer) {
		a.minWordLength = n
	}
}

// WithMaxVocabulary caps the topic and word summaries at the n highest
// counts, ties resolved alphabetically.
func WithMaxVocabulary(n int) Option {
	return func(a *Analyzer) {
		a.maxVocabulary = n
	}
}

// WithStopWords adds words to the built-in English stop list.
func WithStopWords(words ...string) Option {
	return func(a *Analyzer) {
		for _, w := range words {
			a.stopWords[fold(w)] = struct{}{}
		}
	}
}

// New creates an Analyzer with the given options.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		bucket:        constants.GrowthBucketMonth,
		minWordLength: constants.MinWordLength,
		maxVocabulary: constants.DefaultTopWords,
		stopWords:     defaultStopWords(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.bucket != constants.GrowthBucketDay && a.bucket != constants.GrowthBucketMonth {
		return nil, &errors.ValidationError{
			Field:   "bucket",
			Value:   a.bucket,
			Message: `must be "day" or "month"`,
		}
	}
	if a.minWordLength < 1 {
		return nil, &errors.ValidationError{
			Field:   "min_word_length",
			Value:   a.minWordLength,
			Message: "must be at least 1",
		}
	}
	if a.maxVocabulary < 1 {
		return nil, &errors.ValidationError{
			Field:   "max_vocabulary",
			Value:   a.maxVocabulary,
			Message: "must be at least 1",
		}
	}

	return a, nil
}

// Analyze computes every summary over the given records. Ordering of the
// input does not matter; every summary sorts its own output.
func (a *Analyzer) Analyze(records []stars.Record) *Report {
	report := &Report{
		TotalRecords: len(records),
		Bucket:       a.bucket,
	}

	for _, rec := range records {
		starred := rec.StarredAt.UTC()
		if report.First.IsZero() || starred.Before(report.First) {
			report.First = starred
		}
		if starred.After(report.Last) {
			report.Last = starred
		}
	}

	report.Languages, report.WithLanguage = a.languages(records)
	report.Topics, report.WithTopics = a.topics(records)
	report.Words, report.WithDescription = a.words(records)
	report.Growth = a.growth(records)

	return report
}

// Top returns the first n entries of a category summary; n <= 0 or n beyond
// the summary's length returns the whole summary.
func Top(categories []CategoryCount, n int) []CategoryCount {
	if n <= 0 || n >= len(categories) {
		return categories
	}
	return categories[:n]
}
