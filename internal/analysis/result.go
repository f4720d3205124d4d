package analysis

import (
	"phenocolor/internal/report"
)

const (
	headerTag = "HEADER_COLOR"
	dataTag   = "COLOR_DATA"
)

// Result is the full outcome of one color analysis: the bin axis, one
// histogram per channel, the circular hue statistics and zero or one plot
// artifacts.
type Result struct {
	Bins       int
	BinValues  []int
	Histograms map[Channel][]int

	HueMean   float64
	HueStdDev float64
	HueMedian float64

	Plots []*report.HistogramPlot
}

// Header returns the 15 field labels of the reporting record, aligned
// with Data.
func (r *Result) Header() []string {
	header := []string{headerTag, "bin-number", "bin-values"}
	for _, ch := range Channels {
		header = append(header, ch.Label())
	}
	return append(header, "circular_mean", "circular_std", "median")
}

// Data returns the 15 reporting values aligned with Header.
func (r *Result) Data() []interface{} {
	data := []interface{}{dataTag, r.Bins, r.BinValues}
	for _, ch := range Channels {
		data = append(data, r.Histograms[ch])
	}
	return append(data, r.HueMean, r.HueStdDev, r.HueMedian)
}

// MaskedPixels returns the number of pixels inside the mask, which every
// channel histogram sums to.
func (r *Result) MaskedPixels() int {
	total := 0
	for _, count := range r.Histograms[Blue] {
		total += count
	}
	return total
}
