// Package preprocess normalizes a raw drawing page into a binary edge map.
//
// The pipeline is a fixed sequence of image-to-image transforms: a small
// morphological opening, Gaussian smoothing, adaptive thresholding, a
// second opening to clean binarization artifacts, and Canny edge
// extraction. No feature interpretation happens here; given identical
// input and parameters the output is byte-identical.
package preprocess

import (
	"fmt"
	"image"

	"casting-inspector/internal/drawing"

	"gocv.io/x/gocv"
)

// Params holds the preprocessing tunables.
type Params struct {
	// Opening kernel sizes (square structuring elements)
	NoiseKernel int `yaml:"noise_kernel"` // First pass, removes isolated noise pixels
	CleanKernel int `yaml:"clean_kernel"` // Second pass, cleans binarization artifacts

	// Gaussian blur
	BlurKernel int `yaml:"blur_kernel"`

	// Adaptive threshold: local Gaussian-weighted mean over BlockSize
	// neighborhood minus Offset, inverted so line work becomes foreground
	BlockSize int     `yaml:"block_size"`
	Offset    float32 `yaml:"offset"`

	// Canny hysteresis thresholds
	CannyLow  float32 `yaml:"canny_low"`
	CannyHigh float32 `yaml:"canny_high"`
}

// DefaultParams returns parameters tuned for 300 DPI drawing scans.
func DefaultParams() Params {
	return Params{
		NoiseKernel: 3,
		CleanKernel: 2,
		BlurKernel:  5,
		BlockSize:   11,
		Offset:      2,
		CannyLow:    50,
		CannyHigh:   150,
	}
}

// EdgeMap runs the full preprocessing pipeline on a grayscale page and
// returns a binary edge map of identical dimensions. The caller owns the
// returned mat.
func EdgeMap(gray gocv.Mat, p Params) (gocv.Mat, error) {
	if err := drawing.Validate(gray); err != nil {
		return gocv.NewMat(), fmt.Errorf("preprocess: %w", err)
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.NoiseKernel, p.NoiseKernel))
	defer kernel.Close()

	cleaned := gocv.NewMat()
	defer cleaned.Close()
	gocv.MorphologyEx(gray, &cleaned, gocv.MorphOpen, kernel)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(cleaned, &blurred, image.Pt(p.BlurKernel, p.BlurKernel), 0, 0, gocv.BorderDefault)

	// Block-wise local threshold; a single global threshold fails on
	// drawings with uneven scan illumination
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.AdaptiveThreshold(blurred, &binary, 255,
		gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinaryInv, p.BlockSize, p.Offset)

	kernelClean := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.CleanKernel, p.CleanKernel))
	defer kernelClean.Close()
	gocv.MorphologyEx(binary, &binary, gocv.MorphOpen, kernelClean)

	edges := gocv.NewMat()
	gocv.Canny(binary, &edges, p.CannyLow, p.CannyHigh)

	return edges, nil
}
