package imgpalette

import (
	"sort"

	"github.com/wbrown/imgpalette/imageutil"
)

// Minimum palette slots reserved per category before the remaining slots
// are filled purely by score.
const (
	minVibrant = 2
	minMuted   = 2
	minLight   = 1
	minDark    = 1
)

// verticalTolerance is the pixel-match radius handed to VerticalPosition.
// VerticalPosition measures with WeightedDistance regardless of the
// configured ColorMethod, so the radius must stay on the weighted scale:
// a CIEDE2000-scale threshold would match no pixel of a merged cluster
// and collapse every position to the 0.5 fallback.
const verticalTolerance = 15.0

// extractPalette runs the clustering pipeline over a weighted pixel
// histogram. The stages run in a fixed order: greedy merge, black/white
// measurement, background and acceptance filtering, black/white
// injection, a dedupe sweep over drifted centers, scoring, category
// diversity selection, and final ordering. The input histogram must
// already be in canonical order (descending count); SampleFull and
// GridColors guarantee this.
func (a *Analyzer) extractPalette(img *imageutil.RGBAImage, samples []ColorSample, background RGB) []Entry {
	if len(samples) == 0 {
		return nil
	}

	clusters := a.clusterSamples(samples)
	st := measureMono(samples)
	mono := st.isMonochromatic()

	kept, droppedPopulation := a.filterClusters(clusters, background, mono)
	kept = a.injectBlackWhite(kept, st, mono)
	kept = a.dedupeClusters(kept)

	candidates := a.buildEntries(img, kept, st.total)
	selected := a.selectDiverse(candidates)
	a.orderEntries(selected)

	if a.IncludeBackground {
		selected = append([]Entry{a.backgroundEntry(img, background, droppedPopulation, st.total)}, selected...)
	}
	return selected
}

// clusterSamples performs the greedy single-pass nearest merge: each
// sample, in descending population order, joins the first existing
// cluster whose center lies within the merge threshold, or starts a new
// cluster. Earlier samples are never reassigned; this is deliberately
// not k-means, and the population-descending input order is what makes
// the result stable and biased toward dominant colors. Centers drift as
// samples fold in, so two clusters may finish closer than the threshold;
// dedupeClusters resolves those collisions afterwards.
func (a *Analyzer) clusterSamples(samples []ColorSample) []cluster {
	threshold := a.mergeThreshold()
	var clusters []cluster
	for _, s := range samples {
		merged := false
		for i := range clusters {
			if a.ColorMethod.Distance(clusters[i].center, s.Color) < threshold {
				clusters[i] = clusters[i].merge(s)
				merged = true
				break
			}
		}
		if !merged {
			clusters = append(clusters, newCluster(s))
		}
	}
	return clusters
}

// dedupeClusters closes a gap the greedy pass leaves open: a sample is
// only checked against cluster centers as they stood at merge time, and
// centers drift as later samples fold in, so two final centers can end
// up within the merge threshold of each other. The sweep folds each
// cluster into the first surviving cluster within the threshold,
// visiting synthetic clusters first and then by descending population.
// Absorbing never moves the absorber's center, so the survivors are
// pairwise at least the threshold apart.
func (a *Analyzer) dedupeClusters(clusters []cluster) []cluster {
	if len(clusters) < 2 {
		return clusters
	}
	sorted := make([]cluster, len(clusters))
	copy(sorted, clusters)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].synthetic != sorted[j].synthetic {
			return sorted[i].synthetic
		}
		if sorted[i].population != sorted[j].population {
			return sorted[i].population > sorted[j].population
		}
		return rgbLess(sorted[i].center, sorted[j].center)
	})

	threshold := a.mergeThreshold()
	out := make([]cluster, 0, len(sorted))
	for _, c := range sorted {
		folded := false
		for i := range out {
			if a.ColorMethod.Distance(out[i].center, c.center) < threshold {
				out[i] = out[i].absorb(c)
				folded = true
				break
			}
		}
		if !folded {
			out = append(out, c)
		}
	}
	return out
}

// filterClusters drops clusters too close to the background and, for
// non-monochrome images, clusters that fail the chroma/brightness
// acceptance filter. It returns the survivors and the total population
// removed by the background filter, which becomes the population of the
// re-added background entry when that mode is enabled.
func (a *Analyzer) filterClusters(clusters []cluster, background RGB, mono bool) ([]cluster, int) {
	threshold := a.backgroundThreshold()
	kept := make([]cluster, 0, len(clusters))
	dropped := 0
	for _, c := range clusters {
		if a.ColorMethod.Distance(c.center, background) < threshold {
			dropped += c.population
			continue
		}
		if !mono && !acceptableColor(c.center) {
			continue
		}
		kept = append(kept, c)
	}
	return kept, dropped
}

// injectBlackWhite adds synthetic pure-white and pure-black clusters
// when their population share clears the significance threshold (lowered
// for monochrome images). Synthetic clusters bypass the background and
// acceptance filters but still compete for the capped output slots.
// Natural clusters near an injected color are removed first so the
// palette never lists near-duplicates of pure black or white.
func (a *Analyzer) injectBlackWhite(kept []cluster, st monoStats, mono bool) []cluster {
	significant := a.SignificantFraction
	if mono {
		significant = a.MonoSignificantFraction
	}

	if st.whiteFraction() >= significant {
		kept = a.replaceNear(kept, RGB{R: 255, G: 255, B: 255}, st.whiteCount)
	}
	if st.blackFraction() >= significant {
		kept = a.replaceNear(kept, RGB{R: 0, G: 0, B: 0}, st.blackCount)
	}
	return kept
}

// replaceNear removes clusters within the merge threshold of color and
// appends a synthetic cluster carrying the measured population.
func (a *Analyzer) replaceNear(clusters []cluster, color RGB, population int) []cluster {
	threshold := a.mergeThreshold()
	out := clusters[:0]
	for _, c := range clusters {
		if a.ColorMethod.Distance(c.center, color) < threshold {
			continue
		}
		out = append(out, c)
	}
	synthetic := newCluster(ColorSample{Color: color, Count: population})
	synthetic.synthetic = true
	return append(out, synthetic)
}

// buildEntries derives the scored, categorized palette candidates from
// the surviving clusters. Vertical position is sampled for every
// candidate so the metadata is present regardless of the ordering mode.
func (a *Analyzer) buildEntries(img *imageutil.RGBAImage, clusters []cluster, totalPopulation int) []Entry {
	entries := make([]Entry, 0, len(clusters))
	for _, c := range clusters {
		hsl := RGBToHSL(c.center)
		var share float64
		if totalPopulation > 0 {
			share = float64(c.population) / float64(totalPopulation)
		}
		entries = append(entries, Entry{
			Color:            c.center,
			Population:       c.population,
			Share:            share,
			Category:         categorize(hsl),
			Score:            scoreCluster(hsl, c.population),
			VerticalPosition: VerticalPosition(img, c.center, verticalTolerance),
			Injected:         c.synthetic,
		})
	}
	return entries
}

// selectDiverse picks the output entries: first the top-scoring entries
// per category up to each category's reserved minimum, then the
// highest-scoring leftovers regardless of category, up to the output
// cap. When the background is re-added as an explicit entry it occupies
// one slot of the cap.
func (a *Analyzer) selectDiverse(candidates []Entry) []Entry {
	limit := a.MaxColors
	if a.IncludeBackground && limit > 0 {
		limit--
	}
	if limit <= 0 {
		return nil
	}

	pool := make([]Entry, len(candidates))
	copy(pool, candidates)
	sort.SliceStable(pool, func(i, j int) bool {
		return entryScoreLess(pool[j], pool[i])
	})

	reserved := []struct {
		category Category
		min      int
	}{
		{CategoryVibrant, minVibrant},
		{CategoryMuted, minMuted},
		{CategoryLight, minLight},
		{CategoryDark, minDark},
	}

	taken := make([]bool, len(pool))
	selected := make([]Entry, 0, limit)
	for _, r := range reserved {
		remaining := r.min
		for i := range pool {
			if remaining == 0 || len(selected) == limit {
				break
			}
			if taken[i] || pool[i].Category != r.category {
				continue
			}
			taken[i] = true
			selected = append(selected, pool[i])
			remaining--
		}
	}
	for i := range pool {
		if len(selected) == limit {
			break
		}
		if taken[i] {
			continue
		}
		taken[i] = true
		selected = append(selected, pool[i])
	}
	return selected
}

// orderEntries applies the configured output order in place: descending
// score (ties: population, then channel order) or ascending vertical
// position (ties: descending score). The two modes are mutually
// exclusive per invocation.
func (a *Analyzer) orderEntries(entries []Entry) {
	if a.Order == OrderByVerticalPosition {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].VerticalPosition != entries[j].VerticalPosition {
				return entries[i].VerticalPosition < entries[j].VerticalPosition
			}
			return entryScoreLess(entries[j], entries[i])
		})
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entryScoreLess(entries[j], entries[i])
	})
}

// entryScoreLess orders entries ascending by score with deterministic
// tie-breaks: population, then channel order.
func entryScoreLess(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Population != b.Population {
		return a.Population < b.Population
	}
	return rgbLess(b.Color, a.Color)
}

// backgroundEntry builds the explicit background entry for palettes that
// list the background. Its population is everything the background
// filter removed.
func (a *Analyzer) backgroundEntry(img *imageutil.RGBAImage, background RGB, population, totalPopulation int) Entry {
	hsl := RGBToHSL(background)
	var share float64
	if totalPopulation > 0 {
		share = float64(population) / float64(totalPopulation)
	}
	return Entry{
		Color:            background,
		Population:       population,
		Share:            share,
		Category:         categorize(hsl),
		Score:            scoreCluster(hsl, population),
		VerticalPosition: VerticalPosition(img, background, verticalTolerance),
		Background:       true,
	}
}
