package imgpalette

// ColorDistanceMethod is the pluggable similarity metric used by the
// clustering and filtering stages. The historical variants of this
// pipeline disagreed on the metric (weighted RGB in most, full CIEDE2000
// in one); both are provided here as configurations of the same pipeline.
//
// Distances from different methods live on different scales, so each
// method carries its own defaults for the merge and background
// similarity thresholds. Explicit threshold options override these.
type ColorDistanceMethod interface {
	// Name returns a short identifier for the method.
	Name() string

	// Distance returns the dissimilarity of two colors. Zero means
	// identical; larger is more different. Must be symmetric.
	Distance(a, b RGB) float64

	// DefaultMergeThreshold is the cluster merge radius appropriate
	// for this method's scale.
	DefaultMergeThreshold() float64

	// DefaultBackgroundThreshold is the background similarity radius
	// appropriate for this method's scale.
	DefaultBackgroundThreshold() float64
}

// WeightedRGBMethod measures distance with the luma-weighted Euclidean
// metric. It is the fast default.
type WeightedRGBMethod struct{}

func (WeightedRGBMethod) Name() string { return "WeightedRGB" }

func (WeightedRGBMethod) Distance(a, b RGB) float64 {
	return WeightedDistance(a, b)
}

func (WeightedRGBMethod) DefaultMergeThreshold() float64 { return 15.0 }

func (WeightedRGBMethod) DefaultBackgroundThreshold() float64 { return 30.0 }

// CIEDE2000Method measures distance with the CIEDE2000 formula over Lab
// values. Slower but perceptually more uniform; useful when the weighted
// RGB metric merges colors a viewer would distinguish.
type CIEDE2000Method struct{}

func (CIEDE2000Method) Name() string { return "CIEDE2000" }

func (CIEDE2000Method) Distance(a, b RGB) float64 {
	return CIEDE2000(RGBToLab(a), RGBToLab(b))
}

// CIEDE2000 distances run roughly 0..100 where a just-noticeable
// difference is near 2.3, so the thresholds sit well below the
// weighted-RGB ones.
func (CIEDE2000Method) DefaultMergeThreshold() float64 { return 5.0 }

func (CIEDE2000Method) DefaultBackgroundThreshold() float64 { return 10.0 }
