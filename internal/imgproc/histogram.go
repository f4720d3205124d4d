package imgproc

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MaskedHistogram counts the values of a quantized single-channel image
// into bins unit-width buckets over [0, bins). Pixels where the mask is
// zero are never counted. The returned slice always has length bins.
func MaskedHistogram(src, mask gocv.Mat, bins int) ([]int, error) {
	if src.Empty() || src.Channels() != 1 {
		return nil, fmt.Errorf("histogram failed: source must be a non-empty single-channel image")
	}
	if err := ValidateMask(mask, src); err != nil {
		return nil, fmt.Errorf("histogram failed: %w", err)
	}
	if bins < 1 || bins > 256 {
		return nil, fmt.Errorf("histogram failed: bin count must be in [1,256], got %d", bins)
	}

	hist := gocv.NewMat()
	defer hist.Close()

	gocv.CalcHist([]gocv.Mat{src}, []int{0}, mask, &hist, []int{bins}, []float64{0, float64(bins)}, false)

	counts := make([]int, bins)
	for i := 0; i < bins; i++ {
		counts[i] = int(hist.GetFloatAt(i, 0))
	}
	return counts, nil
}

// CountHueValues tallies the frequency of each hue value 0-179 across a
// single-channel hue plane. Values outside the OpenCV hue range are
// ignored. Index 0 collects both background pixels zeroed by masking and
// genuine zero-hue pixels; interpretation is up to the caller.
func CountHueValues(hue gocv.Mat) ([]int, error) {
	if hue.Empty() || hue.Channels() != 1 {
		return nil, fmt.Errorf("hue count failed: hue plane must be a non-empty single-channel image")
	}

	counts := make([]int, 180)
	rows := hue.Rows()
	cols := hue.Cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := hue.GetUCharAt(y, x)
			if int(v) < len(counts) {
				counts[v]++
			}
		}
	}
	return counts, nil
}
