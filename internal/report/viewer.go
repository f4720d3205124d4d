package report

import (
	"bytes"
	"fmt"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// showPlot renders the figure and displays it in a window. Blocks until
// the window is closed, matching the interactive debug workflow.
func showPlot(plot *HistogramPlot) error {
	var buf bytes.Buffer
	if err := plot.Render(&buf); err != nil {
		return err
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decoding rendered figure: %w", err)
	}

	viewer := app.New()
	window := viewer.NewWindow("Color histogram")

	figure := canvas.NewImageFromImage(img)
	figure.FillMode = canvas.ImageFillContain
	figure.ScaleMode = canvas.ImageScaleSmooth
	figure.SetMinSize(fyne.NewSize(float32(plotWidth)/2, float32(plotHeight)/2))

	window.SetContent(figure)
	window.Resize(fyne.NewSize(float32(plotWidth)/2, float32(plotHeight)/2))
	window.CenterOnScreen()
	window.ShowAndRun()
	return nil
}
