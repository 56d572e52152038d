// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// SummaryToTableData converts the overview counters of a summary to a
// key-value table.
func SummaryToTableData(summary *analysis.Report) Data {
	rows := [][]string{
		{"Starred repositories", FormatNumber(int64(summary.TotalRecords))},
		{"With primary language", FormatNumber(int64(summary.WithLanguage))},
		{"With topics", FormatNumber(int64(summary.WithTopics))},
		{"With description", FormatNumber(int64(summary.WithDescription))},
	}
	if !summary.First.IsZero() {
		rows = append(rows,
			[]string{"First star", summary.First.UTC().Format(constants.TimeFormatDate)},
			[]string{"Most recent star", summary.Last.UTC().Format(constants.TimeFormatDate)},
		)
	}

	return Data{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
}

// CategoriesToTableData converts a count summary to a two-column table with
// the count column right-aligned.
func CategoriesToTableData(nameHeader string, categories []analysis.CategoryCount, limit int) Data {
	top := analysis.Top(categories, limit)
	rows := make([][]string, 0, len(top))
	for _, c := range top {
		rows = append(rows, []string{c.Name, FormatNumber(int64(c.Count))})
	}

	return Data{
		Headers:         []string{nameHeader, "Count"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}
}

// GrowthToTableData converts the cumulative growth series to a table, one
// row per bucket.
func GrowthToTableData(points []analysis.GrowthPoint, bucket string) Data {
	layout := constants.TimeFormatMonth
	if bucket == constants.GrowthBucketDay {
		layout = constants.TimeFormatDate
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Bucket.UTC().Format(layout), FormatNumber(int64(p.Cumulative))})
	}

	return Data{
		Headers:         []string{"Bucket", "Cumulative"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}
}

// FormatNumber formats large numbers with comma separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}

	// Add commas every 3 digits
	result := ""
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(r)
	}
	return result
}
