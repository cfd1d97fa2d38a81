package imgpalette

import "math"

// Lab represents a color in the CIE L*a*b* color space relative to the
// D65 reference white.
type Lab struct {
	L, A, B float64
}

// D65 reference white in the XYZ color space, scaled so Y = 100.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

// RGBToLab converts an RGB color to CIE L*a*b*. The conversion goes
// sRGB -> linear RGB -> XYZ -> Lab using the D65 reference white.
func RGBToLab(c RGB) Lab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	// Linear RGB to XYZ, scaled to the 0..100 range of the reference white.
	x := (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100.0
	y := (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100.0
	z := (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100.0

	fx := labPivot(x / refWhiteX)
	fy := labPivot(y / refWhiteY)
	fz := labPivot(z / refWhiteZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// labPivot applies the piecewise cube-root transform of the XYZ -> Lab
// conversion. The 0.008856 threshold is the standard (6/29)^3 cutoff.
func labPivot(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// CIEDE2000 calculates the CIEDE2000 color difference between two Lab
// colors with the parametric factors kL = kC = kH = 1. This is the
// slower, higher-fidelity alternative to WeightedDistance and follows
// the formulation of Sharma, Wu, and Dalal (2005).
func CIEDE2000(lab1, lab2 Lab) float64 {
	const pow25to7 = 6103515625.0 // 25^7

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2.0
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1.0 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1p := (1.0 + g) * lab1.A
	a2p := (1.0 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	h1p := hueAngleDeg(lab1.B, a1p)
	h2p := hueAngleDeg(lab2.B, a2p)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	case h2p-h1p < -180:
		dhp = h2p - h1p + 360
	default:
		dhp = h2p - h1p
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(degToRad(dhp/2.0))

	lBarP := (lab1.L + lab2.L) / 2.0
	cBarP := (c1p + c2p) / 2.0

	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2.0
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2.0
	default:
		hBarP = (h1p + h2p - 360) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(degToRad(hBarP-30)) +
		0.24*math.Cos(degToRad(2*hBarP)) +
		0.32*math.Cos(degToRad(3*hBarP+6)) -
		0.20*math.Cos(degToRad(4*hBarP-63))

	dTheta := 30.0 * math.Exp(-math.Pow((hBarP-275.0)/25.0, 2))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2.0 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	sl := 1.0 + 0.015*math.Pow(lBarP-50.0, 2)/math.Sqrt(20.0+math.Pow(lBarP-50.0, 2))
	sc := 1.0 + 0.045*cBarP
	sh := 1.0 + 0.015*cBarP*t
	rt := -math.Sin(degToRad(2.0*dTheta)) * rc

	termL := dLp / sl
	termC := dCp / sc
	termH := dHp / sh
	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

// hueAngleDeg returns atan2(b, a) in degrees normalized to [0, 360).
// A zero vector has an undefined hue, reported as 0.
func hueAngleDeg(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	deg := math.Atan2(b, a) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
