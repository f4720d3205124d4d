// Package imgproc wraps the gocv operations used by the color analysis:
// mask application, color-space conversion, channel splitting, LUT
// quantization and masked histograms. Every function validates its inputs
// and returns wrapped errors; callers own all returned Mats and must
// Close them.
package imgproc

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ValidateColorImage checks that mat is a non-empty 3-channel 8-bit image.
func ValidateColorImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty")
	}
	if mat.Channels() != 3 {
		return fmt.Errorf("expected 3-channel color image, got %d channel(s)", mat.Channels())
	}
	return nil
}

// ValidateMask checks that mask is a non-empty single-channel image with
// the same spatial dimensions as ref.
func ValidateMask(mask, ref gocv.Mat) error {
	if mask.Empty() {
		return fmt.Errorf("mask is empty")
	}
	if mask.Channels() != 1 {
		return fmt.Errorf("mask must be single-channel, got %d channel(s)", mask.Channels())
	}
	if mask.Rows() != ref.Rows() || mask.Cols() != ref.Cols() {
		return fmt.Errorf("mask size %dx%d does not match image size %dx%d",
			mask.Cols(), mask.Rows(), ref.Cols(), ref.Rows())
	}
	return nil
}

// ApplyMask returns a copy of src with every pixel outside the mask set to
// zero.
func ApplyMask(src, mask gocv.Mat) (gocv.Mat, error) {
	if err := ValidateColorImage(src); err != nil {
		return gocv.Mat{}, fmt.Errorf("mask application failed: %w", err)
	}
	if err := ValidateMask(mask, src); err != nil {
		return gocv.Mat{}, fmt.Errorf("mask application failed: %w", err)
	}

	dst := gocv.NewMat()
	gocv.BitwiseAndWithMask(src, src, &dst, mask)
	return dst, nil
}

// ToLab converts a BGR image to the CIE Lab color space.
func ToLab(src gocv.Mat) (gocv.Mat, error) {
	if err := ValidateColorImage(src); err != nil {
		return gocv.Mat{}, fmt.Errorf("Lab conversion failed: %w", err)
	}

	dst := gocv.NewMat()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToLab)
	return dst, nil
}

// ToHSV converts a BGR image to the HSV color space. Hue values are in
// [0,180) following the OpenCV 8-bit convention.
func ToHSV(src gocv.Mat) (gocv.Mat, error) {
	if err := ValidateColorImage(src); err != nil {
		return gocv.Mat{}, fmt.Errorf("HSV conversion failed: %w", err)
	}

	dst := gocv.NewMat()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToHSV)
	return dst, nil
}
