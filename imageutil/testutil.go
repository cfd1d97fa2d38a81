package imageutil

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	img.Fill(c)
	return img
}

// CreateTwoToneImage creates an image whose top half is one color and
// whose bottom half is another. Useful for vertical-position tests.
func CreateTwoToneImage(width, height int, top, bottom RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		c := top
		if y >= height/2 {
			c = bottom
		}
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateColorBarsImage creates a vertical color bars test pattern from
// the given colors, left to right in order.
func CreateColorBarsImage(width, height int, colors []RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	barWidth := width / len(colors)
	if barWidth < 1 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := x / barWidth
			if colorIdx >= len(colors) {
				colorIdx = len(colors) - 1
			}
			img.SetRGB(x, y, colors[colorIdx])
		}
	}
	return img
}

// CreateGradientImage creates a horizontal grayscale gradient test image.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateSpeckledImage creates a base-colored image with every nth pixel
// (in row-major order) replaced by the speckle color. Useful for testing
// population-fraction thresholds: the speckle fraction is 1/n.
func CreateSpeckledImage(width, height, n int, base, speckle RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (y*width+x)%n == 0 {
				img.SetRGB(x, y, speckle)
			} else {
				img.SetRGB(x, y, base)
			}
		}
	}
	return img
}
