// Package report renders channel histograms as overlaid line charts and
// routes them to the configured debug destination. The numeric analysis
// never draws or writes anything itself; it hands a HistogramPlot to a
// Reporter.
package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	plotWidth    = 1280
	plotHeight   = 800
	xTickSpacing = 25
)

// Series is one channel histogram to draw: its display label, fixed line
// color and per-bin counts.
type Series struct {
	Label  string
	Color  drawing.Color
	Counts []int
}

// HistogramPlot is an overlaid line plot of channel histograms with bin
// index on the x-axis and pixel count on the y-axis.
type HistogramPlot struct {
	Name   string
	Bins   int
	Series []Series
}

// Render draws the plot as a PNG to w.
func (p *HistogramPlot) Render(w io.Writer) error {
	if p.Bins < 2 {
		return fmt.Errorf("plot rendering requires at least 2 bins, got %d", p.Bins)
	}
	if len(p.Series) == 0 {
		return fmt.Errorf("plot rendering requires at least one series")
	}

	xvalues := make([]float64, p.Bins)
	for i := range xvalues {
		xvalues[i] = float64(i)
	}

	var ticks []chart.Tick
	for i := 0; i < p.Bins; i += xTickSpacing {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
	}
	if len(ticks) < 2 {
		ticks = append(ticks, chart.Tick{Value: float64(p.Bins - 1), Label: fmt.Sprintf("%d", p.Bins-1)})
	}

	var series []chart.Series
	for _, s := range p.Series {
		if len(s.Counts) != p.Bins {
			return fmt.Errorf("series %q has %d counts, want %d", s.Label, len(s.Counts), p.Bins)
		}
		yvalues := make([]float64, p.Bins)
		for i, c := range s.Counts {
			yvalues[i] = float64(c)
		}
		series = append(series, chart.ContinuousSeries{
			Name: s.Label,
			Style: chart.Style{
				StrokeColor: s.Color,
			},
			XValues: xvalues,
			YValues: yvalues,
		})
	}

	graph := chart.Chart{
		Title:  p.Name,
		Width:  plotWidth,
		Height: plotHeight,
		XAxis: chart.XAxis{
			Name:  "Bin",
			Ticks: ticks,
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(p.Bins - 1),
			},
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot rendering failed: %w", err)
	}
	return nil
}
