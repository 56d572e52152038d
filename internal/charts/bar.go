package charts

import (
	"bytes"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
)

// Languages draws the language distribution as a bar chart and returns the
// written filename. An empty distribution yields ErrNoData so callers can
// skip the artifact instead of failing the run.
func (r *Renderer) Languages(categories []analysis.CategoryCount) (string, error) {
	name := constants.LanguagesChartName
	if len(categories) == 0 {
		return "", errors.WrapRender(name, errors.ErrNoData)
	}

	top := analysis.Top(categories, r.limit)
	bars := make([]chart.Value, 0, len(top))
	for _, c := range top {
		bars = append(bars, chart.Value{
			Value: float64(c.Count),
			Label: truncateLabel(c.Name, constants.MaxBarLabelLength),
		})
	}

	graph := chart.BarChart{
		Title:      "Language Distribution",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth(r.width, len(bars)),
		Bars:       bars,
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", errors.WrapRender(name, err)
	}
	return name, r.write(name, buf.Bytes())
}

// barWidth sizes bars so the full set plus default spacing fits the canvas.
func barWidth(canvas, count int) int {
	if count < 1 {
		count = 1
	}
	w := (canvas - 100) / (2 * count)
	if w < 10 {
		return 10
	}
	if w > 80 {
		return 80
	}
	return w
}

// truncateLabel shortens crowded bar labels to keep the axis readable.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
