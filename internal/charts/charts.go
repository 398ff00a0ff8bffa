// Package charts renders snapshot aggregates as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/stats"
)

// ErrNotEnoughData means the snapshot has too few points to draw anything
// useful.
var ErrNotEnoughData = fmt.Errorf("not enough data to render a chart")

func dollars(cents int64) float64 {
	return float64(cents) / 100
}

// RenderTimeSeries draws income, expense and running net balance over
// time. It needs at least two distinct dates.
func RenderTimeSeries(series []stats.DatePoint) ([]byte, error) {
	if len(series) < 2 {
		return nil, ErrNotEnoughData
	}

	xValues := make([]time.Time, len(series))
	incomeValues := make([]float64, len(series))
	expenseValues := make([]float64, len(series))
	netValues := make([]float64, len(series))

	var runningNet int64
	for i, point := range series {
		date, err := time.Parse(model.DateLayout, point.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date in series: %q", point.Date)
		}
		xValues[i] = date
		incomeValues[i] = dollars(point.Income)
		expenseValues[i] = dollars(point.Expense)
		runningNet += point.Income - point.Expense
		netValues[i] = dollars(runningNet)
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 02"),
			Style:          chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v any) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				return fmt.Sprintf("%.0f", f)
			},
			Style: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Expense",
				XValues: xValues,
				YValues: expenseValues,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Net balance",
				XValues: xValues,
				YValues: netValues,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 3},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render time series chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCategoryBreakdown draws a bar per category, already sorted
// descending by total as CategoryBreakdown produces it.
func RenderCategoryBreakdown(breakdown []stats.CategoryTotal) ([]byte, error) {
	if len(breakdown) == 0 {
		return nil, ErrNotEnoughData
	}

	bars := make([]chart.Value, len(breakdown))
	for i, entry := range breakdown {
		bars[i] = chart.Value{
			Label: entry.Category.Label(),
			Value: dollars(entry.Total),
		}
	}

	graph := chart.BarChart{
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		YAxis: chart.YAxis{
			ValueFormatter: func(v any) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				return fmt.Sprintf("%.0f", f)
			},
			Style: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
