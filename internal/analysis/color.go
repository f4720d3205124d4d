// Package analysis computes per-channel color histograms and circular hue
// statistics over the masked region of a plant image. The image work is
// delegated to gocv, the hue statistics to the huestats package, and all
// presentation to the report package.
package analysis

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"phenocolor/internal/analysis/huestats"
	"phenocolor/internal/imgproc"
	"phenocolor/internal/logger"
	"phenocolor/internal/report"
	"phenocolor/internal/results"
)

// StoreCategory is the measurement category every color field is written
// under.
const StoreCategory = "color_data"

// Analyzer runs color analyses and writes their measurements into a
// results store. A single Analyzer may serve many sequential calls; the
// store is the only shared state and is internally synchronized.
type Analyzer struct {
	logger   logger.Logger
	store    *results.Store
	reporter report.Reporter
}

// New builds an Analyzer. Store and reporter may be nil, in which case
// measurements are only returned, not accumulated, and figures are
// dropped.
func New(log logger.Logger, store *results.Store, reporter report.Reporter) *Analyzer {
	return &Analyzer{
		logger:   log,
		store:    store,
		reporter: reporter,
	}
}

// Analyze computes masked histograms of the nine BGR/Lab/HSV channels
// quantized to bins levels, plus circular statistics of the hue plane.
//
// Validation failures return InvalidInputError or InvalidArgumentError; a
// hue plane with no non-background pixels returns DegenerateInputError.
// Nothing is written to the store unless the whole analysis succeeds.
func (a *Analyzer) Analyze(rgb, mask gocv.Mat, bins int, plotType PlotType) (*Result, error) {
	if !plotType.valid() {
		return nil, &InvalidArgumentError{Argument: "hist_plot_type", Value: int(plotType), Reason: "unknown plot type"}
	}
	if bins < 1 || bins > 256 {
		return nil, &InvalidArgumentError{Argument: "bins", Value: bins, Reason: "must be in [1,256]"}
	}
	if err := imgproc.ValidateColorImage(rgb); err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}
	if err := imgproc.ValidateMask(mask, rgb); err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}

	masked, err := imgproc.ApplyMask(rgb, mask)
	if err != nil {
		return nil, err
	}
	defer masked.Close()

	lab, err := imgproc.ToLab(masked)
	if err != nil {
		return nil, err
	}
	defer lab.Close()

	hsv, err := imgproc.ToHSV(masked)
	if err != nil {
		return nil, err
	}
	defer hsv.Close()

	bgrPlanes := gocv.Split(masked)
	labPlanes := gocv.Split(lab)
	hsvPlanes := gocv.Split(hsv)
	defer closePlanes(bgrPlanes)
	defer closePlanes(labPlanes)
	defer closePlanes(hsvPlanes)

	planes := map[Channel]gocv.Mat{
		Blue:         bgrPlanes[0],
		Green:        bgrPlanes[1],
		Red:          bgrPlanes[2],
		Lightness:    labPlanes[0],
		GreenMagenta: labPlanes[1],
		BlueYellow:   labPlanes[2],
		Hue:          hsvPlanes[0],
		Saturation:   hsvPlanes[1],
		Value:        hsvPlanes[2],
	}

	histograms, err := a.computeHistograms(planes, mask, bins)
	if err != nil {
		return nil, err
	}

	summary, err := a.summarizeHue(hsvPlanes[0])
	if err != nil {
		return nil, err
	}

	binValues := make([]int, bins)
	for i := range binValues {
		binValues[i] = i
	}

	result := &Result{
		Bins:       bins,
		BinValues:  binValues,
		Histograms: histograms,
		HueMean:    summary.Mean,
		HueStdDev:  summary.StdDev,
		HueMedian:  summary.Median,
	}

	if channels := plotType.Channels(); channels != nil {
		result.Plots = append(result.Plots, buildPlot(plotType, bins, channels, histograms))
	}

	// Figures go out before the store mutation so a reporting failure
	// leaves the store untouched.
	if a.reporter != nil {
		for _, plot := range result.Plots {
			if err := a.reporter.Report(plot); err != nil {
				return nil, fmt.Errorf("reporting histogram figure: %w", err)
			}
		}
	}

	a.storeResult(result)

	if a.logger != nil {
		a.logger.Debug("color analysis complete", map[string]interface{}{
			"bins":          bins,
			"plot_type":     plotType.String(),
			"masked_pixels": result.MaskedPixels(),
			"hue_mean":      summary.Mean,
			"hue_std":       summary.StdDev,
			"hue_median":    summary.Median,
		})
	}

	return result, nil
}

func (a *Analyzer) computeHistograms(planes map[Channel]gocv.Mat, mask gocv.Mat, bins int) (map[Channel][]int, error) {
	lut, err := imgproc.QuantizeLUT(bins)
	if err != nil {
		return nil, err
	}
	defer lut.Close()

	histograms := make(map[Channel][]int, len(planes))
	for _, ch := range Channels {
		quantized, err := imgproc.Quantize(planes[ch], lut)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch, err)
		}

		counts, err := imgproc.MaskedHistogram(quantized, mask, bins)
		quantized.Close()
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch, err)
		}
		histograms[ch] = counts
	}
	return histograms, nil
}

// summarizeHue computes the circular statistics on the raw hue plane.
// Masked-out pixels were zeroed by the mask application, so the
// background exclusion inside Summarize removes them together with
// genuine zero-hue pixels, as the reference behavior defines.
func (a *Analyzer) summarizeHue(hue gocv.Mat) (huestats.Summary, error) {
	counts, err := imgproc.CountHueValues(hue)
	if err != nil {
		return huestats.Summary{}, err
	}

	summary, err := huestats.Summarize(counts)
	if errors.Is(err, huestats.ErrNoObservations) {
		return huestats.Summary{}, &DegenerateInputError{
			Reason: "hue plane has no non-background pixels, circular statistics undefined",
		}
	}
	if err != nil {
		return huestats.Summary{}, fmt.Errorf("hue statistics: %w", err)
	}
	return summary, nil
}

func buildPlot(plotType PlotType, bins int, channels []Channel, histograms map[Channel][]int) *report.HistogramPlot {
	plot := &report.HistogramPlot{
		Name: fmt.Sprintf("Color histogram (%s)", plotType),
		Bins: bins,
	}
	for _, ch := range channels {
		plot.Series = append(plot.Series, report.Series{
			Label:  ch.Label(),
			Color:  ch.PlotColor(),
			Counts: histograms[ch],
		})
	}
	return plot
}

func (a *Analyzer) storeResult(result *Result) {
	if a.store == nil {
		return
	}

	a.store.SetMeasurement(StoreCategory, "bin-number", result.Bins)
	a.store.SetMeasurement(StoreCategory, "bin-values", result.BinValues)
	for _, ch := range Channels {
		a.store.SetMeasurement(StoreCategory, ch.Label(), result.Histograms[ch])
	}
	a.store.SetMeasurement(StoreCategory, "mean", result.HueMean)
	a.store.SetMeasurement(StoreCategory, "standard-deviation", result.HueStdDev)
	a.store.SetMeasurement(StoreCategory, "median", result.HueMedian)

	for _, plot := range result.Plots {
		a.store.AddImage(plot)
	}
}

func closePlanes(planes []gocv.Mat) {
	for i := range planes {
		planes[i].Close()
	}
}
