package imgproc

import (
	"fmt"

	"gocv.io/x/gocv"
)

// QuantizeLUT builds the 256-entry lookup table mapping an 8-bit intensity
// v to its quantization level v*bins/256. The caller owns the returned Mat.
func QuantizeLUT(bins int) (gocv.Mat, error) {
	if bins < 1 || bins > 256 {
		return gocv.Mat{}, fmt.Errorf("bin count must be in [1,256], got %d", bins)
	}

	lut := gocv.NewMatWithSize(1, 256, gocv.MatTypeCV8UC1)
	for v := 0; v < 256; v++ {
		lut.SetUCharAt(0, v, uint8(v*bins/256))
	}
	return lut, nil
}

// Quantize maps src through lut, producing a channel whose values lie in
// [0, bins) for a table built by QuantizeLUT.
func Quantize(src, lut gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.Mat{}, fmt.Errorf("quantization failed: source is empty")
	}
	if lut.Empty() || lut.Rows()*lut.Cols() != 256 {
		return gocv.Mat{}, fmt.Errorf("quantization failed: lookup table must have 256 entries")
	}

	dst := gocv.NewMat()
	gocv.LUT(src, lut, &dst)
	return dst, nil
}
