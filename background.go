package imgpalette

// BackgroundStrategy selects how the background color is derived from
// the border and corner samples.
type BackgroundStrategy int

const (
	// BackgroundMode buckets exact pixel values and returns the most
	// frequent one. This is the default: it returns a color that
	// actually occurs in the image, which matters for flat canvases.
	BackgroundMode BackgroundStrategy = iota

	// BackgroundMean averages the samples per channel, rounded to the
	// nearest integer. Smoother on noisy scans, but may return a color
	// not present in the image.
	BackgroundMean
)

// defaultBackground is returned when there are no samples to inspect.
var defaultBackground = RGB{R: 255, G: 255, B: 255}

// DetectBackground returns the single most representative background
// color of the sample set according to the strategy. An empty sample set
// returns white rather than failing; callers never observe an error.
func DetectBackground(samples []RGB, strategy BackgroundStrategy) RGB {
	if len(samples) == 0 {
		return defaultBackground
	}
	if strategy == BackgroundMean {
		return meanColor(samples)
	}
	return modeColor(samples)
}

// modeColor returns the most frequent exact pixel value. Ties are broken
// toward the color with the higher relative luminance: when a border is
// split evenly between two colors, the lighter one is the better canvas
// guess, and the rule keeps the result deterministic.
func modeColor(samples []RGB) RGB {
	counts := make(map[RGB]int, len(samples))
	for _, c := range samples {
		counts[c]++
	}

	best := samples[0]
	bestCount := 0
	for c, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount = c, n
		case n == bestCount && betterBackgroundTie(c, best):
			best = c
		}
	}
	return best
}

// betterBackgroundTie reports whether a should replace b when their
// counts are equal: higher luminance wins, then channel order as the
// final deterministic fallback.
func betterBackgroundTie(a, b RGB) bool {
	la, lb := Luminance(a), Luminance(b)
	if la != lb {
		return la > lb
	}
	return rgbLess(a, b)
}

// meanColor averages the samples per channel with round-to-nearest.
func meanColor(samples []RGB) RGB {
	var sumR, sumG, sumB int
	for _, c := range samples {
		sumR += int(c.R)
		sumG += int(c.G)
		sumB += int(c.B)
	}
	n := len(samples)
	return RGB{
		R: uint8((sumR + n/2) / n),
		G: uint8((sumG + n/2) / n),
		B: uint8((sumB + n/2) / n),
	}
}
