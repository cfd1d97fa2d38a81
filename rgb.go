// Package imgpalette extracts a representative color palette and a
// background color from a decoded raster image. The pipeline samples the
// image border and corners to estimate the background, takes a bounded
// full-image sample, clusters it with a greedy single-pass nearest merge,
// and scores, filters, and orders the resulting clusters into a palette.
package imgpalette

import (
	"fmt"
	"math"

	"github.com/wbrown/imgpalette/imageutil"
)

// RGB is the pixel value type used throughout the pipeline. It is the
// same type as imageutil.RGB so that sampled pixels flow into the
// analysis without conversion.
type RGB = imageutil.RGB

// Hex formats an RGB color as an uppercase #RRGGBB string.
func Hex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// WeightedDistance calculates the luma-weighted Euclidean distance between
// two RGB colors: sqrt(0.299*dr^2 + 0.587*dg^2 + 0.114*db^2). The channel
// weights bias the metric toward differences the eye notices most, making
// it a fast approximation of perceptual distance.
func WeightedDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(0.299*dr*dr + 0.587*dg*dg + 0.114*db*db)
}

// Luminance calculates the relative luminance of an RGB color in [0, 1]
// using sRGB gamma linearization and the Rec. 709 channel weights
// 0.2126, 0.7152, 0.0722.
func Luminance(c RGB) float64 {
	return 0.2126*srgbToLinear(float64(c.R)/255.0) +
		0.7152*srgbToLinear(float64(c.G)/255.0) +
		0.0722*srgbToLinear(float64(c.B)/255.0)
}

// srgbToLinear applies the standard sRGB gamma linearization to a
// channel value in [0, 1].
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// brightness returns the mean channel value of a color, the measure the
// black/white significance thresholds operate on.
func brightness(c RGB) float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
}

// chroma returns the spread between the largest and smallest channel,
// a cheap proxy for how colorful (non-gray) a pixel is.
func chroma(c RGB) float64 {
	maxC := math.Max(float64(c.R), math.Max(float64(c.G), float64(c.B)))
	minC := math.Min(float64(c.R), math.Min(float64(c.G), float64(c.B)))
	return maxC - minC
}

// rgbLess orders colors by (R, G, B) channel value. It is the
// deterministic tie-break used wherever equal counts or scores would
// otherwise leave the output order unspecified.
func rgbLess(a, b RGB) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

const epsilon = 0.000001 // For floating-point comparisons
