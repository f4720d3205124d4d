package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"phenocolor/internal/analysis"
	"phenocolor/internal/logger"
	"phenocolor/internal/report"
	"phenocolor/internal/results"
)

const defaultBins = 256

func newRootCmd() *cobra.Command {
	var (
		imagePath   string
		maskPath    string
		bins        int
		plotName    string
		outPath     string
		debugName   string
		debugOutDir string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "phenocolor",
		Short: "Masked color-channel analysis for plant images",
		Long: `Computes RGB, Lab and HSV channel histograms over the masked region
of a plant image, plus circular statistics of hue, and writes the
measurements as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := logger.NewConsoleLogger(level)

			err := run(log, imagePath, maskPath, bins, plotName, outPath, debugName, debugOutDir)
			if err != nil {
				log.Error("analysis failed", err, nil)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Plant image to analyze (required)")
	cmd.Flags().StringVarP(&maskPath, "mask", "m", "", "Binary mask selecting the region of interest (required)")
	cmd.Flags().IntVarP(&bins, "bins", "b", defaultBins, "Number of quantization bins per channel")
	cmd.Flags().StringVarP(&plotName, "plot", "p", "none", "Histogram plot type: none, all, rgb, lab or hsv")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write measurements as JSON to this file (default stdout)")
	cmd.Flags().StringVar(&debugName, "debug", "off", "Debug figure handling: off, print or plot")
	cmd.Flags().StringVar(&debugOutDir, "debug-outdir", ".", "Directory for debug figures in print mode")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagRequired("image")
	cmd.MarkFlagRequired("mask")

	return cmd
}

func run(log logger.Logger, imagePath, maskPath string, bins int, plotName, outPath, debugName, debugOutDir string) error {
	plotType, err := analysis.ParsePlotType(plotName)
	if err != nil {
		return err
	}
	debugMode, err := report.ParseMode(debugName)
	if err != nil {
		return err
	}

	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("could not read image %s", imagePath)
	}
	defer img.Close()

	mask := gocv.IMRead(maskPath, gocv.IMReadGrayScale)
	if mask.Empty() {
		return fmt.Errorf("could not read mask %s", maskPath)
	}
	defer mask.Close()

	// Any non-zero mask pixel selects; normalize to a strict 0/255 mask.
	gocv.Threshold(mask, &mask, 0, 255, gocv.ThresholdBinary)

	log.Info("analyzing image", map[string]interface{}{
		"image":     imagePath,
		"mask":      maskPath,
		"bins":      bins,
		"plot_type": plotType.String(),
		"size":      fmt.Sprintf("%dx%d", img.Cols(), img.Rows()),
	})

	store := results.NewStore()
	reporter := report.NewDebugReporter(debugMode, debugOutDir, log)
	analyzer := analysis.New(log, store, reporter)

	result, err := analyzer.Analyze(img, mask, bins, plotType)
	if err != nil {
		return err
	}

	log.Info("analysis complete", map[string]interface{}{
		"masked_pixels": result.MaskedPixels(),
		"hue_mean":      result.HueMean,
		"hue_std":       result.HueStdDev,
		"hue_median":    result.HueMedian,
	})

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return store.WriteJSON(out)
}
