// Package sensor reads one on-screen brightness sample per call. A sample
// is the 10th-percentile luminance of a small capture patch, so a scene is
// considered dark as soon as any meaningful part of the view is dark, not
// only when the whole frame is.
package sensor

import (
	"codeberg.org/orvend/gammactl/internal/errors"
)

const (
	// patchSize is the edge length of the square sampled from the
	// center of the capture region.
	patchSize = 100

	// darkPercentile selects the luminance percentile reported as the
	// sample.
	darkPercentile = 10

	bytesPerPixel = 4
	maxLuminance  = 255.0
)

const (
	ErrCaptureFailed  = errors.ErrorCode("sensor_capture_failed")
	ErrEmptyCapture   = errors.ErrorCode("sensor_empty_capture")
	ErrRegionTooSmall = errors.ErrorCode("sensor_region_too_small")
)

// Region is the absolute-coordinate rectangle of the monitor being sampled.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Source returns one brightness sample in [0,1] for a capture region.
type Source interface {
	Sample(region Region) (float64, error)
}

// patchOrigin returns the top-left corner of the capture patch centered in
// the region.
func patchOrigin(region Region) (int, int) {
	centerX := region.X + region.Width/2
	centerY := region.Y + region.Height/2

	return centerX - patchSize/2, centerY - patchSize/2
}

// brightnessFromBGRA reduces a BGRA pixel buffer to a single brightness in
// [0,1]: per-pixel mean-channel luminance, then the 10th percentile over
// the patch.
func brightnessFromBGRA(pixels []byte) (float64, error) {
	errFactory := errors.New()

	if len(pixels) < bytesPerPixel {
		return 0, errFactory.New(ErrEmptyCapture)
	}

	pixelCount := len(pixels) / bytesPerPixel

	// Luminance values are bytes, so a counting sort finds the
	// percentile without allocating per-pixel storage.
	var histogram [256]int
	for i := 0; i+bytesPerPixel <= len(pixels); i += bytesPerPixel {
		b := int(pixels[i])
		g := int(pixels[i+1])
		r := int(pixels[i+2])
		histogram[(r+g+b)/3]++
	}

	rank := pixelCount * darkPercentile / 100
	seen := 0
	for luminance, count := range histogram {
		seen += count
		if seen > rank {
			return float64(luminance) / maxLuminance, nil
		}
	}

	return 1.0, nil
}
