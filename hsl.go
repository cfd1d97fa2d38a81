package imgpalette

import "math"

// HSL represents a color in the HSL color space. Hue is in degrees
// [0, 360); saturation and lightness are percentages in [0, 100].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts an RGB color to HSL. The conversion is the standard
// one: lightness is the midpoint of the extreme channels, saturation is
// the channel spread normalized by lightness, and hue is the angle of
// the dominant channel.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2.0

	if maxC == minC {
		// Achromatic: hue is undefined, reported as 0.
		return HSL{H: 0, S: 0, L: l * 100.0}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2.0 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	default:
		h = (r-g)/d + 4.0
	}
	h *= 60.0
	if h >= 360.0 {
		h -= 360.0
	}

	return HSL{H: h, S: s * 100.0, L: l * 100.0}
}
