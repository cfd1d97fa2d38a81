package imgpalette

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wbrown/imgpalette/imageutil"
)

// categoryTestImage is a white canvas with six inset 30x30 blocks chosen
// to land in all four categories: two vibrant, two muted, one light, one
// dark. Every block sits clear of the border ring and corner blocks so
// the detected background stays white.
func categoryTestImage() *imageutil.RGBAImage {
	img := imageutil.CreateSolidImage(130, 130, RGB{R: 255, G: 255, B: 255})
	blocks := []struct {
		x, y  int
		color RGB
	}{
		{15, 15, RGB{R: 220, G: 40, B: 40}},   // vibrant red
		{85, 15, RGB{R: 40, G: 40, B: 220}},   // vibrant blue
		{15, 55, RGB{R: 150, G: 120, B: 110}}, // muted warm gray
		{85, 55, RGB{R: 110, G: 130, B: 150}}, // muted cool gray
		{15, 95, RGB{R: 235, G: 205, B: 205}}, // light pink
		{85, 95, RGB{R: 60, G: 25, B: 25}},    // dark maroon
	}
	for _, b := range blocks {
		for dy := 0; dy < 30; dy++ {
			for dx := 0; dx < 30; dx++ {
				img.SetRGB(b.x+dx, b.y+dy, b.color)
			}
		}
	}
	return img
}

func TestAnalyzeDeterministic(t *testing.T) {
	img := categoryTestImage()
	a := NewAnalyzer()
	first := a.Analyze(img)
	second := a.Analyze(img)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated analysis differs:\n%s", diff)
	}
}

func TestAnalyzeUniformImage(t *testing.T) {
	img := imageutil.CreateSolidImage(64, 64, RGB{R: 200, G: 50, B: 50})
	result := NewAnalyzer().Analyze(img)
	if result.Background != (RGB{R: 200, G: 50, B: 50}) {
		t.Errorf("background = %v, want the uniform color", result.Background)
	}
	if len(result.Palette) != 0 {
		t.Errorf("uniform image produced %d palette entries, want 0", len(result.Palette))
	}
}

func TestAnalyzeExcludesBackground(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze(categoryTestImage())
	for _, e := range result.Palette {
		if e.Injected || e.Background {
			continue
		}
		d := a.ColorMethod.Distance(e.Color, result.Background)
		if d < a.backgroundThreshold() {
			t.Errorf("entry %s is %0.1f from the background, inside the %0.1f radius",
				e.Hex(), d, a.backgroundThreshold())
		}
	}
}

func TestAnalyzeBoundedOutput(t *testing.T) {
	img := categoryTestImage()
	result := NewAnalyzer().Analyze(img)
	if len(result.Palette) > 8 {
		t.Errorf("default palette has %d entries, want at most 8", len(result.Palette))
	}
	result = NewAnalyzer(WithMaxColors(4)).Analyze(img)
	if len(result.Palette) > 4 {
		t.Errorf("capped palette has %d entries, want at most 4", len(result.Palette))
	}
}

func TestAnalyzeCategoryDiversity(t *testing.T) {
	result := NewAnalyzer().Analyze(categoryTestImage())
	counts := make(map[Category]int)
	for _, e := range result.Palette {
		counts[e.Category]++
	}
	mins := map[Category]int{
		CategoryVibrant: 2,
		CategoryMuted:   2,
		CategoryLight:   1,
		CategoryDark:    1,
	}
	for cat, min := range mins {
		if counts[cat] < min {
			t.Errorf("palette has %d %v entries, want at least %d; palette: %v",
				counts[cat], cat, min, result.Palette)
		}
	}
}

func TestAnalyzeMonochromeImage(t *testing.T) {
	// 95% white, 5% black speckle: both must be injected, and nothing
	// else should appear.
	img := imageutil.CreateSpeckledImage(64, 64, 20, RGB{R: 255, G: 255, B: 255}, RGB{R: 0, G: 0, B: 0})
	result := NewAnalyzer().Analyze(img)

	if result.Background != (RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("background = %v, want white", result.Background)
	}
	if len(result.Palette) != 2 {
		t.Fatalf("monochrome palette has %d entries, want 2: %v", len(result.Palette), result.Palette)
	}
	seen := make(map[string]bool)
	for _, e := range result.Palette {
		seen[e.Hex()] = true
		if !e.Injected {
			t.Errorf("monochrome entry %s should be marked injected", e.Hex())
		}
	}
	if !seen["#FFFFFF"] || !seen["#000000"] {
		t.Errorf("palette = %v, want exactly pure white and pure black", result.Palette)
	}
}

func TestAnalyzeVerticalOrder(t *testing.T) {
	// Three horizontal bands; with the background overridden to white,
	// all three survive and must come out top to bottom.
	img := imageutil.NewRGBAImage(90, 90)
	bands := []RGB{{R: 200, G: 40, B: 40}, {R: 40, G: 200, B: 40}, {R: 40, G: 40, B: 200}}
	for y := 0; y < 90; y++ {
		for x := 0; x < 90; x++ {
			img.SetRGB(x, y, bands[y/30])
		}
	}

	result := NewAnalyzer(
		WithOrder(OrderByVerticalPosition),
		WithBackgroundOverride(RGB{R: 255, G: 255, B: 255}),
	).Analyze(img)

	if len(result.Palette) != 3 {
		t.Fatalf("got %d entries, want the 3 bands: %v", len(result.Palette), result.Palette)
	}
	for i, want := range bands {
		if result.Palette[i].Color != want {
			t.Errorf("position %d = %v, want %v", i, result.Palette[i].Color, want)
		}
	}
	for i := 1; i < len(result.Palette); i++ {
		if result.Palette[i].VerticalPosition < result.Palette[i-1].VerticalPosition {
			t.Errorf("vertical positions not ascending at %d", i)
		}
	}
}

func TestAnalyzeTwoToneVerticalPosition(t *testing.T) {
	// Blue top half over a light bottom half. The border tie breaks
	// toward the lighter color, so the light gray becomes the
	// background and the blue survives with a top-of-image position.
	img := imageutil.CreateTwoToneImage(100, 100, RGB{R: 10, G: 10, B: 200}, RGB{R: 230, G: 230, B: 230})
	result := NewAnalyzer().Analyze(img)

	if result.Background != (RGB{R: 230, G: 230, B: 230}) {
		t.Fatalf("background = %v, want the lighter tone", result.Background)
	}
	if len(result.Palette) != 1 {
		t.Fatalf("got %d entries, want just the blue tone: %v", len(result.Palette), result.Palette)
	}
	e := result.Palette[0]
	if e.Color != (RGB{R: 10, G: 10, B: 200}) {
		t.Errorf("entry = %v, want {10 10 200}", e.Color)
	}
	if math.Abs(e.VerticalPosition-0.25) > 0.05 {
		t.Errorf("vertical position = %f, want ~0.25", e.VerticalPosition)
	}
	if math.Abs(e.Share-0.5) > 0.01 {
		t.Errorf("share = %f, want ~0.5", e.Share)
	}
}

func TestAnalyzeIncludeBackground(t *testing.T) {
	img := imageutil.CreateTwoToneImage(100, 100, RGB{R: 10, G: 10, B: 200}, RGB{R: 230, G: 230, B: 230})
	result := NewAnalyzer(WithIncludeBackground(true)).Analyze(img)

	if len(result.Palette) < 2 {
		t.Fatalf("got %d entries, want background plus blue", len(result.Palette))
	}
	first := result.Palette[0]
	if !first.Background {
		t.Error("first entry should be the background entry")
	}
	if first.Color != result.Background {
		t.Errorf("background entry color = %v, want %v", first.Color, result.Background)
	}
	if first.Population == 0 {
		t.Error("background entry should carry the filtered population")
	}
	for _, e := range result.Palette[1:] {
		if e.Background {
			t.Errorf("non-first entry %s marked as background", e.Hex())
		}
	}
}

func TestAnalyzeEmptyImage(t *testing.T) {
	result := NewAnalyzer().Analyze(imageutil.NewRGBAImage(0, 0))
	if result.Background != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("empty image background = %v, want white", result.Background)
	}
	if len(result.Palette) != 0 {
		t.Errorf("empty image palette has %d entries, want 0", len(result.Palette))
	}
}

func TestAnalyzeGridSource(t *testing.T) {
	img := categoryTestImage()
	result := NewAnalyzer(WithSource(SourceGrid)).Analyze(img)
	// The grid source smooths block boundaries, but the dominant blocks
	// must still surface and the invariants still hold.
	if len(result.Palette) == 0 {
		t.Fatal("grid source produced an empty palette")
	}
	if len(result.Palette) > 8 {
		t.Errorf("grid source palette has %d entries, want at most 8", len(result.Palette))
	}
}

func TestAnalyzeCIEDE2000Method(t *testing.T) {
	img := categoryTestImage()
	result := NewAnalyzer(WithColorMethod(CIEDE2000Method{})).Analyze(img)
	if len(result.Palette) == 0 {
		t.Fatal("CIEDE2000 method produced an empty palette")
	}
	// White is still the background, so pure injected white aside, no
	// near-white entry may appear.
	for _, e := range result.Palette {
		if e.Injected {
			continue
		}
		if e.Color == (RGB{R: 255, G: 255, B: 255}) {
			t.Error("background white leaked into the palette")
		}
	}
}

func TestAnalyzeVerticalPositionCIEDE2000Merge(t *testing.T) {
	// Two blues close enough for CIEDE2000 to merge alternate across the
	// top band, so the merged center matches no pixel exactly. The
	// vertical position must still be measured on the weighted scale
	// and land near the top, not at the 0.5 no-match fallback.
	img := imageutil.NewRGBAImage(80, 80)
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			c := RGB{R: 230, G: 230, B: 230}
			if y < 40 {
				c = RGB{R: 10, G: 10, B: 200}
				if x%2 == 1 {
					c = RGB{R: 30, G: 30, B: 180}
				}
			}
			img.SetRGB(x, y, c)
		}
	}

	result := NewAnalyzer(
		WithColorMethod(CIEDE2000Method{}),
		WithOrder(OrderByVerticalPosition),
	).Analyze(img)

	if result.Background != (RGB{R: 230, G: 230, B: 230}) {
		t.Fatalf("background = %v, want the light bottom tone", result.Background)
	}
	if len(result.Palette) != 1 {
		t.Fatalf("got %d entries, want the single merged blue: %v", len(result.Palette), result.Palette)
	}
	e := result.Palette[0]
	if e.Color != (RGB{R: 20, G: 20, B: 190}) {
		t.Errorf("merged center = %v, want {20 20 190}", e.Color)
	}
	if math.Abs(e.VerticalPosition-0.23) > 0.05 {
		t.Errorf("vertical position = %f, want ~0.23 for the top band", e.VerticalPosition)
	}
}

func TestClusterDriftDeduped(t *testing.T) {
	// The 114-gray seed merges into the 100-gray cluster and drags its
	// center to 106, within the threshold of the separately seeded
	// 120-gray cluster. The dedupe sweep must fold them together.
	a := NewAnalyzer()
	samples := []ColorSample{
		{Color: RGB{R: 100, G: 100, B: 100}, Count: 10},
		{Color: RGB{R: 120, G: 120, B: 120}, Count: 9},
		{Color: RGB{R: 114, G: 114, B: 114}, Count: 8},
	}

	clusters := a.clusterSamples(samples)
	if len(clusters) != 2 {
		t.Fatalf("greedy pass produced %d clusters, want 2", len(clusters))
	}
	if d := a.ColorMethod.Distance(clusters[0].center, clusters[1].center); d >= a.mergeThreshold() {
		t.Fatalf("drift setup broken: centers %v and %v are %f apart",
			clusters[0].center, clusters[1].center, d)
	}

	deduped := a.dedupeClusters(clusters)
	if len(deduped) != 1 {
		t.Fatalf("dedupe kept %d clusters, want 1", len(deduped))
	}
	if deduped[0].center != (RGB{R: 106, G: 106, B: 106}) {
		t.Errorf("surviving center = %v, want the larger cluster's {106 106 106}", deduped[0].center)
	}
	if deduped[0].population != 27 {
		t.Errorf("surviving population = %d, want 27", deduped[0].population)
	}
}

func TestAnalyzePairwiseDistinct(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze(categoryTestImage())
	for i := 0; i < len(result.Palette); i++ {
		for j := i + 1; j < len(result.Palette); j++ {
			ci, cj := result.Palette[i].Color, result.Palette[j].Color
			if d := a.ColorMethod.Distance(ci, cj); d < a.mergeThreshold() {
				t.Errorf("entries %s and %s are %f apart, inside the %f merge radius",
					Hex(ci), Hex(cj), d, a.mergeThreshold())
			}
		}
	}
}

func TestSelectDiverseScoreOrderStable(t *testing.T) {
	result := NewAnalyzer().Analyze(categoryTestImage())
	for i := 1; i < len(result.Palette); i++ {
		a, b := result.Palette[i-1], result.Palette[i]
		if a.Score < b.Score {
			t.Errorf("score order violated at %d: %f < %f", i, a.Score, b.Score)
		}
	}
}
