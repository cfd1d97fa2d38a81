package imgpalette

import "math"

// Category classifies a cluster by its HSL coordinates. The palette
// reserves minimum slots per category so that one dominant hue cannot
// crowd out the rest of the image's character.
type Category int

const (
	CategoryVibrant Category = iota
	CategoryMuted
	CategoryLight
	CategoryDark
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryVibrant:
		return "vibrant"
	case CategoryMuted:
		return "muted"
	case CategoryLight:
		return "light"
	case CategoryDark:
		return "dark"
	}
	return "unknown"
}

// categorize maps HSL coordinates to a Category. Lightness extremes win
// over saturation: a near-white vibrant pixel reads as light, not vibrant.
func categorize(hsl HSL) Category {
	switch {
	case hsl.L >= 80:
		return CategoryLight
	case hsl.L <= 20:
		return CategoryDark
	case hsl.S >= 60:
		return CategoryVibrant
	default:
		return CategoryMuted
	}
}

// cluster is the accumulator built up during the greedy merge pass: a
// population-weighted running center plus channel sums kept in floating
// point so repeated merges do not accumulate rounding error. Merging
// produces a new value rather than mutating in place, which keeps the
// pass transparent to test in isolation.
type cluster struct {
	center     RGB
	population int
	sumR       float64
	sumG       float64
	sumB       float64
	synthetic  bool // injected black/white entry, exempt from filters
}

// newCluster starts a cluster from a single histogram sample.
func newCluster(s ColorSample) cluster {
	n := float64(s.Count)
	return cluster{
		center:     s.Color,
		population: s.Count,
		sumR:       float64(s.Color.R) * n,
		sumG:       float64(s.Color.G) * n,
		sumB:       float64(s.Color.B) * n,
	}
}

// merge folds a sample into the cluster, returning the updated value.
// The center is the population-weighted average of everything merged so
// far, rounded to the nearest channel value.
func (c cluster) merge(s ColorSample) cluster {
	n := float64(s.Count)
	c.sumR += float64(s.Color.R) * n
	c.sumG += float64(s.Color.G) * n
	c.sumB += float64(s.Color.B) * n
	c.population += s.Count

	total := float64(c.population)
	c.center = RGB{
		R: uint8(math.Round(c.sumR / total)),
		G: uint8(math.Round(c.sumG / total)),
		B: uint8(math.Round(c.sumB / total)),
	}
	return c
}

// absorb folds another cluster's population into this one without moving
// the center. The dedupe sweep anchors centers this way so that its
// survivors cannot drift back within the threshold of each other, and so
// synthetic black/white centers stay exact.
func (c cluster) absorb(o cluster) cluster {
	c.population += o.population
	c.sumR += o.sumR
	c.sumG += o.sumG
	c.sumB += o.sumB
	return c
}

// Score weights for ranking clusters. Saturated, mid-brightness, warm,
// well-populated colors rise to the top.
const (
	saturationWeight = 1.2
	brightnessWeight = 0.8
	hueWeight        = 0.3
	populationWeight = 0.4
)

// scoreCluster ranks a cluster for palette inclusion given its HSL
// coordinates and population:
//
//   - saturation: s * (1 + exp(-(s-60)^2 / 800)) boosts mid-to-high
//     saturation without zeroing the rest
//   - brightness: 100 - |l - 50| peaks at mid-lightness
//   - hue: flat +20 bonus for warm hues in [0°, 60°]
//   - population: ln(population+1) * 0.5, a log so that area dominance
//     cannot drown out colorfulness
func scoreCluster(hsl HSL, population int) float64 {
	saturationScore := hsl.S * (1.0 + math.Exp(-math.Pow(hsl.S-60.0, 2)/800.0))
	brightnessScore := 100.0 - math.Abs(hsl.L-50.0)
	var hueScore float64
	if hsl.H >= 0 && hsl.H <= 60 {
		hueScore = 20.0
	}
	populationScore := math.Log(float64(population)+1.0) * 0.5

	return saturationWeight*saturationScore +
		brightnessWeight*brightnessScore +
		hueWeight*hueScore +
		populationWeight*populationScore
}
