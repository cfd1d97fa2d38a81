package imgpalette

// Mean-channel cutoffs for counting a pixel as near-pure white or black.
const (
	whiteBrightnessMin = 240.0
	blackBrightnessMax = 30.0
)

// monochromeFraction is the combined white+black population share above
// which an image is treated as monochrome.
const monochromeFraction = 0.90

// monoStats summarizes how much of the sampled population is near-pure
// white or black. It drives the black/white injection step and the
// relaxed filtering for monochrome images.
type monoStats struct {
	whiteCount int
	blackCount int
	total      int
}

// measureMono tallies the white and black population of a histogram.
func measureMono(samples []ColorSample) monoStats {
	var st monoStats
	for _, s := range samples {
		b := brightness(s.Color)
		switch {
		case b >= whiteBrightnessMin:
			st.whiteCount += s.Count
		case b <= blackBrightnessMax:
			st.blackCount += s.Count
		}
		st.total += s.Count
	}
	return st
}

func (st monoStats) whiteFraction() float64 {
	if st.total == 0 {
		return 0
	}
	return float64(st.whiteCount) / float64(st.total)
}

func (st monoStats) blackFraction() float64 {
	if st.total == 0 {
		return 0
	}
	return float64(st.blackCount) / float64(st.total)
}

// isMonochromatic reports whether near-pure black and white together
// dominate the image (> 90% of the sampled population). Monochrome
// images use the lowered significance threshold for black/white
// injection and skip the chroma/brightness acceptance filter, since for
// such images the remaining faint colors are the interesting part.
func (st monoStats) isMonochromatic() bool {
	return st.whiteFraction()+st.blackFraction() > monochromeFraction
}

// acceptableColor is the chroma/brightness acceptance filter applied to
// non-synthetic clusters of non-monochrome images: the cluster must be
// at least faintly colorful and sit clear of the black and white
// extremes that the injection step handles explicitly.
func acceptableColor(c RGB) bool {
	b := brightness(c)
	return chroma(c) > 5.0 && b >= 20.0 && b < 240.0
}
