package charts

import (
	"bytes"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
)

// Growth draws the cumulative star count over time and returns the written
// filename. An empty series yields ErrNoData.
func (r *Renderer) Growth(points []analysis.GrowthPoint, bucket string) (string, error) {
	name := constants.GrowthChartName
	if len(points) == 0 {
		return "", errors.WrapRender(name, errors.ErrNoData)
	}

	xs := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	if len(points) == 1 {
		// A lone bucket cannot span an axis; anchor the series at zero one
		// bucket earlier so the range stays computable.
		xs = append(xs, previousBucket(points[0].Bucket, bucket))
		ys = append(ys, 0)
	}
	for _, p := range points {
		xs = append(xs, p.Bucket)
		ys = append(ys, float64(p.Cumulative))
	}

	layout := constants.TimeFormatMonth
	if bucket == constants.GrowthBucketDay {
		layout = constants.TimeFormatDate
	}

	// Cumulative counts never decrease, so the last value bounds the axis.
	maxY := ys[len(ys)-1]
	graph := chart.Chart{
		Title:      "Cumulative Stars",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      r.width,
		Height:     r.height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(layout),
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY * 1.05},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "stars",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					FillColor:   chart.ColorBlue.WithAlpha(48),
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", errors.WrapRender(name, err)
	}
	return name, r.write(name, buf.Bytes())
}

// previousBucket steps one aggregation bucket back from t.
func previousBucket(t time.Time, bucket string) time.Time {
	if bucket == constants.GrowthBucketDay {
		return t.AddDate(0, 0, -1)
	}
	return t.AddDate(0, -1, 0)
}
