package output

import (
	"io"

	"github.com/agentstation/starlens/internal/cmd/globals"
	"github.com/agentstation/starlens/internal/cmd/table"
	"github.com/agentstation/starlens/pkg/analysis"
)

// FormatOverview handles the common pattern of formatting the headline
// summary metrics for output. Table formats get the metric/value table;
// structured formats get the raw summary.
func FormatOverview(w io.Writer, summary *analysis.Report, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = bridge(table.SummaryToTableData(summary))
	default:
		outputData = summary
	}

	return formatter.Format(w, outputData)
}

// FormatCategories handles the common pattern of formatting a category
// summary (languages, topics, description words) for output. The limit caps
// rows across every format so table and JSON output agree.
func FormatCategories(w io.Writer, nameHeader string, categories []analysis.CategoryCount, limit int, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = bridge(table.CategoriesToTableData(nameHeader, categories, limit))
	default:
		outputData = analysis.Top(categories, limit)
	}

	return formatter.Format(w, outputData)
}

// FormatGrowth handles the common pattern of formatting the cumulative
// growth series for output. A positive limit keeps only the most recent
// buckets; the series stays in ascending bucket order.
func FormatGrowth(w io.Writer, points []analysis.GrowthPoint, bucket string, limit int, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	recent := lastGrowth(points, limit)

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = bridge(table.GrowthToTableData(recent, bucket))
	default:
		outputData = recent
	}

	return formatter.Format(w, outputData)
}

// FormatAny handles the common pattern of formatting any data type for
// output. This is useful for commands with custom data structures.
func FormatAny(w io.Writer, data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(w, data)
}

// bridge copies table data into the output package's equivalent. The two
// types stay separate to avoid an import cycle between the packages.
func bridge(data table.Data) Data {
	return Data{
		Headers:         data.Headers,
		Rows:            data.Rows,
		ColumnAlignment: data.ColumnAlignment,
	}
}

func lastGrowth(points []analysis.GrowthPoint, limit int) []analysis.GrowthPoint {
	if limit <= 0 || limit >= len(points) {
		return points
	}
	return points[len(points)-limit:]
}
