package imgpalette

import (
	"sort"

	"github.com/wbrown/imgpalette/imageutil"
)

// ColorSample is one entry of a weighted pixel histogram: a pixel value
// and the number of sampled source pixels that carried it.
type ColorSample struct {
	Color RGB
	Count int
}

// BorderRing returns one RGB per pixel of the image's outer ring: the
// full top and bottom rows plus the left and right columns between them.
// Each boundary pixel appears exactly once, 2*(W+H)-4 entries for images
// at least 2x2 - O(W+H), never O(W*H). An empty image yields an empty
// slice.
func BorderRing(img *imageutil.RGBAImage) []RGB {
	if img.Empty() {
		return nil
	}
	w, h := img.Width(), img.Height()
	ring := make([]RGB, 0, 2*w+2*h)

	for x := 0; x < w; x++ {
		ring = append(ring, img.GetRGB(x, 0))
	}
	if h > 1 {
		for x := 0; x < w; x++ {
			ring = append(ring, img.GetRGB(x, h-1))
		}
	}
	for y := 1; y < h-1; y++ {
		ring = append(ring, img.GetRGB(0, y))
		if w > 1 {
			ring = append(ring, img.GetRGB(w-1, y))
		}
	}
	return ring
}

// CornerBlocks returns the pixels of four size x size blocks, one at each
// corner of the image. Blocks are clamped to the image bounds, so small
// images simply contribute fewer (possibly overlapping) pixels. Corner
// blocks give a background estimate that is robust to single-pixel noise
// on the border.
func CornerBlocks(img *imageutil.RGBAImage, size int) []RGB {
	if img.Empty() || size <= 0 {
		return nil
	}
	w, h := img.Width(), img.Height()
	bw, bh := size, size
	if bw > w {
		bw = w
	}
	if bh > h {
		bh = h
	}

	pixels := make([]RGB, 0, 4*bw*bh)
	origins := [4][2]int{
		{0, 0},
		{w - bw, 0},
		{0, h - bh},
		{w - bw, h - bh},
	}
	for _, o := range origins {
		for dy := 0; dy < bh; dy++ {
			for dx := 0; dx < bw; dx++ {
				pixels = append(pixels, img.GetRGB(o[0]+dx, o[1]+dy))
			}
		}
	}
	return pixels
}

// SampleFull walks the image at a fixed stride chosen so that roughly
// targetCount pixels are visited, and returns an exact-value histogram of
// the visited pixels. The stride is max(1, totalPixels/targetCount), so
// the cost is near-constant regardless of image resolution.
//
// The histogram is returned in a deterministic order: descending count,
// ties broken by ascending (R, G, B).
func SampleFull(img *imageutil.RGBAImage, targetCount int) []ColorSample {
	if img.Empty() {
		return nil
	}
	w, h := img.Width(), img.Height()
	total := w * h
	if targetCount < 1 {
		targetCount = 1
	}
	stride := total / targetCount
	if stride < 1 {
		stride = 1
	}

	counts := make(map[RGB]int)
	for i := 0; i < total; i += stride {
		c := img.GetRGB(i%w, i/w)
		counts[c]++
	}

	return sortedSamples(counts)
}

// GridColors partitions the image into gridSize x gridSize cells and
// returns the mean color of each cell as a histogram entry whose count is
// the cell's pixel population. Cell dimensions are floor(W/gridSize) x
// floor(H/gridSize); remainder rows and columns at the right and bottom
// edges are not sampled. The grid size is clamped so cells are at least
// one pixel.
//
// Grid averages serve as a coarser, smoother alternative input to palette
// extraction than SampleFull.
func GridColors(img *imageutil.RGBAImage, gridSize int) []ColorSample {
	if img.Empty() {
		return nil
	}
	w, h := img.Width(), img.Height()
	gridSize = clampGridSize(gridSize, w, h)
	cw, ch := w/gridSize, h/gridSize

	counts := make(map[RGB]int)
	for gy := 0; gy < gridSize; gy++ {
		for gx := 0; gx < gridSize; gx++ {
			counts[cellMean(img, gx*cw, gy*ch, cw, ch)] += cw * ch
		}
	}
	return sortedSamples(counts)
}

// SimplifyImage renders the grid-cell averages of GridColors back as an
// image: every cell is filled with its mean color. The output has the
// trimmed dimensions floor(W/gridSize)*gridSize x floor(H/gridSize)*gridSize.
func SimplifyImage(img *imageutil.RGBAImage, gridSize int) *imageutil.RGBAImage {
	if img.Empty() {
		return imageutil.NewRGBAImage(0, 0)
	}
	w, h := img.Width(), img.Height()
	gridSize = clampGridSize(gridSize, w, h)
	cw, ch := w/gridSize, h/gridSize

	out := imageutil.NewRGBAImage(cw*gridSize, ch*gridSize)
	for gy := 0; gy < gridSize; gy++ {
		for gx := 0; gx < gridSize; gx++ {
			mean := cellMean(img, gx*cw, gy*ch, cw, ch)
			for dy := 0; dy < ch; dy++ {
				for dx := 0; dx < cw; dx++ {
					out.SetRGB(gx*cw+dx, gy*ch+dy, mean)
				}
			}
		}
	}
	return out
}

// VerticalPosition scans the image at a coarse stride (every 4th row and
// column) and returns the mean normalized y coordinate, in [0, 1], of the
// pixels within tolerance (weighted-Euclidean) of target. 0 is the top
// row, 1 the bottom. If no pixel matches, it returns the neutral
// midpoint 0.5.
func VerticalPosition(img *imageutil.RGBAImage, target RGB, tolerance float64) float64 {
	if img.Empty() {
		return 0.5
	}
	w, h := img.Width(), img.Height()
	denom := float64(h - 1)
	if denom < 1 {
		denom = 1
	}

	var sum float64
	var n int
	for y := 0; y < h; y += 4 {
		for x := 0; x < w; x += 4 {
			if WeightedDistance(img.GetRGB(x, y), target) <= tolerance {
				sum += float64(y) / denom
				n++
			}
		}
	}
	if n == 0 {
		return 0.5
	}
	return sum / float64(n)
}

// cellMean computes the mean color of the cw x ch cell at (x0, y0),
// rounded to the nearest integer per channel.
func cellMean(img *imageutil.RGBAImage, x0, y0, cw, ch int) RGB {
	var sumR, sumG, sumB int
	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			c := img.GetRGB(x0+dx, y0+dy)
			sumR += int(c.R)
			sumG += int(c.G)
			sumB += int(c.B)
		}
	}
	n := cw * ch
	return RGB{
		R: uint8((sumR + n/2) / n),
		G: uint8((sumG + n/2) / n),
		B: uint8((sumB + n/2) / n),
	}
}

// clampGridSize keeps the grid within the documented 5..50 range and
// never finer than one pixel per cell.
func clampGridSize(gridSize, w, h int) int {
	if gridSize < 5 {
		gridSize = 5
	}
	if gridSize > 50 {
		gridSize = 50
	}
	if gridSize > w {
		gridSize = w
	}
	if gridSize > h {
		gridSize = h
	}
	if gridSize < 1 {
		gridSize = 1
	}
	return gridSize
}

// sortedSamples flattens a histogram map into the pipeline's canonical
// order: descending count, ties broken by ascending (R, G, B). Map
// iteration order must never leak into the output.
func sortedSamples(counts map[RGB]int) []ColorSample {
	samples := make([]ColorSample, 0, len(counts))
	for c, n := range counts {
		samples = append(samples, ColorSample{Color: c, Count: n})
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Count != samples[j].Count {
			return samples[i].Count > samples[j].Count
		}
		return rgbLess(samples[i].Color, samples[j].Color)
	})
	return samples
}
