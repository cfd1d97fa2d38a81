package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		// CatmullRom provides high quality for both up and down scaling
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeToMaxDim resizes an image so that its largest dimension equals
// maxDim, preserving aspect ratio. Images already within the bound are
// returned unchanged. Analysis cost is bounded by sampling regardless of
// resolution, so this is a convenience for producing display-sized output,
// not a requirement of the pipeline.
func ResizeToMaxDim(img *RGBAImage, maxDim int, interp Interpolation) *RGBAImage {
	w, h := img.Width(), img.Height()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}
	if w >= h {
		scaled := int(float64(h) * float64(maxDim) / float64(w))
		if scaled < 1 {
			scaled = 1
		}
		return Resize(img, maxDim, scaled, interp)
	}
	scaled := int(float64(w) * float64(maxDim) / float64(h))
	if scaled < 1 {
		scaled = 1
	}
	return Resize(img, scaled, maxDim, interp)
}
