package imgpalette

import (
	"github.com/wbrown/imgpalette/imageutil"
)

// SampleSource selects which sampled representation of the image feeds
// the clustering stage.
type SampleSource int

const (
	// SourceFullSample uses the strided full-image histogram. Default.
	SourceFullSample SampleSource = iota

	// SourceGrid uses per-cell grid averages, a coarser and smoother
	// input that suppresses fine texture.
	SourceGrid
)

// OrderBy selects the final palette order.
type OrderBy int

const (
	// OrderByScore orders by descending cluster score. Default.
	OrderByScore OrderBy = iota

	// OrderByVerticalPosition orders by ascending mean vertical position
	// of each color's pixels - top-of-image colors first.
	OrderByVerticalPosition
)

// Entry is one color of the extracted palette together with its
// derived metadata.
type Entry struct {
	Color            RGB
	Population       int     // sampled pixels merged into this color
	Share            float64 // Population / total sampled population
	Category         Category
	Score            float64
	VerticalPosition float64 // mean normalized y of matching pixels
	Background       bool    // true for the re-added background entry
	Injected         bool    // true for synthetic black/white entries
}

// Hex formats the entry's color as #RRGGBB.
func (e Entry) Hex() string {
	return Hex(e.Color)
}

// Analysis is the result of analyzing one image: the detected background
// color and the ordered key-color palette. An empty palette is a valid
// "no distinct colors found" outcome, not an error.
type Analysis struct {
	Background RGB
	Palette    []Entry
}

// Analyzer runs the color analysis pipeline. The zero value is not
// usable; construct with NewAnalyzer. An Analyzer holds only
// configuration, so Analyze is reentrant and an Analyzer may be reused
// across images and goroutines.
type Analyzer struct {
	// Configuration options
	MaxColors               int
	MergeThreshold          float64 // 0 selects the ColorMethod default
	BackgroundThreshold     float64 // 0 selects the ColorMethod default
	SignificantFraction     float64
	MonoSignificantFraction float64
	SampleTarget            int
	GridSize                int
	CornerSize              int
	Source                  SampleSource
	Order                   OrderBy
	BackgroundStrategy      BackgroundStrategy
	ColorMethod             ColorDistanceMethod
	IncludeBackground       bool
	BackgroundOverride      *RGB // skip detection, use this color
}

// AnalyzerOption is a functional option for configuring an Analyzer.
type AnalyzerOption func(*Analyzer)

// NewAnalyzer creates a new Analyzer with the given options.
// Default values: MaxColors=8, SignificantFraction=0.05 (0.03 for
// monochrome images), SampleTarget=10000, GridSize=20, CornerSize=10,
// Source=SourceFullSample, Order=OrderByScore,
// BackgroundStrategy=BackgroundMode, ColorMethod=WeightedRGBMethod{}.
// The merge and background thresholds default to the color method's own
// scale (15 and 30 for weighted RGB).
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		MaxColors:               8,
		SignificantFraction:     0.05,
		MonoSignificantFraction: 0.03,
		SampleTarget:            10000,
		GridSize:                20,
		CornerSize:              10,
		Source:                  SourceFullSample,
		Order:                   OrderByScore,
		BackgroundStrategy:      BackgroundMode,
		ColorMethod:             WeightedRGBMethod{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithMaxColors sets the output palette size cap.
func WithMaxColors(n int) AnalyzerOption {
	return func(a *Analyzer) { a.MaxColors = n }
}

// WithMergeThreshold sets the cluster merge radius, overriding the
// color method's default.
func WithMergeThreshold(t float64) AnalyzerOption {
	return func(a *Analyzer) { a.MergeThreshold = t }
}

// WithBackgroundThreshold sets the background similarity radius,
// overriding the color method's default.
func WithBackgroundThreshold(t float64) AnalyzerOption {
	return func(a *Analyzer) { a.BackgroundThreshold = t }
}

// WithSignificantFraction sets the population share above which pure
// black or white is injected into the palette.
func WithSignificantFraction(f float64) AnalyzerOption {
	return func(a *Analyzer) { a.SignificantFraction = f }
}

// WithSampleTarget sets the approximate number of pixels visited by the
// full-image sample.
func WithSampleTarget(n int) AnalyzerOption {
	return func(a *Analyzer) { a.SampleTarget = n }
}

// WithGridSize sets the grid dimension for the grid-average source,
// clamped to the 5..50 range.
func WithGridSize(n int) AnalyzerOption {
	return func(a *Analyzer) { a.GridSize = n }
}

// WithSource selects the sampled representation feeding the clustering.
func WithSource(s SampleSource) AnalyzerOption {
	return func(a *Analyzer) { a.Source = s }
}

// WithOrder selects the final palette order.
func WithOrder(o OrderBy) AnalyzerOption {
	return func(a *Analyzer) { a.Order = o }
}

// WithBackgroundStrategy selects mode or mean background detection.
func WithBackgroundStrategy(s BackgroundStrategy) AnalyzerOption {
	return func(a *Analyzer) { a.BackgroundStrategy = s }
}

// WithColorMethod sets the color distance calculation method.
func WithColorMethod(m ColorDistanceMethod) AnalyzerOption {
	return func(a *Analyzer) { a.ColorMethod = m }
}

// WithIncludeBackground lists the background as an explicit first
// palette entry instead of only excluding colors near it.
func WithIncludeBackground(include bool) AnalyzerOption {
	return func(a *Analyzer) { a.IncludeBackground = include }
}

// WithBackgroundOverride skips border/corner detection and treats the
// given color as the background.
func WithBackgroundOverride(c RGB) AnalyzerOption {
	return func(a *Analyzer) { a.BackgroundOverride = &c }
}

// mergeThreshold resolves the configured or method-default merge radius.
func (a *Analyzer) mergeThreshold() float64 {
	if a.MergeThreshold > 0 {
		return a.MergeThreshold
	}
	return a.ColorMethod.DefaultMergeThreshold()
}

// backgroundThreshold resolves the configured or method-default
// background similarity radius.
func (a *Analyzer) backgroundThreshold() float64 {
	if a.BackgroundThreshold > 0 {
		return a.BackgroundThreshold
	}
	return a.ColorMethod.DefaultBackgroundThreshold()
}

// Analyze extracts the background color and key-color palette from a
// decoded image. A zero-dimension image yields the default white
// background and an empty palette; decode failures are the caller's to
// handle before invoking Analyze. The computation is a single
// deterministic pass: identical input and configuration produce an
// identical Analysis.
func (a *Analyzer) Analyze(img *imageutil.RGBAImage) Analysis {
	if img.Empty() {
		return Analysis{Background: defaultBackground}
	}

	background := a.detectBackground(img)

	var samples []ColorSample
	if a.Source == SourceGrid {
		samples = GridColors(img, a.GridSize)
	} else {
		samples = SampleFull(img, a.SampleTarget)
	}

	return Analysis{
		Background: background,
		Palette:    a.extractPalette(img, samples, background),
	}
}

// detectBackground applies the override if set, otherwise detects from
// the border ring plus the four corner blocks.
func (a *Analyzer) detectBackground(img *imageutil.RGBAImage) RGB {
	if a.BackgroundOverride != nil {
		return *a.BackgroundOverride
	}
	borderSamples := BorderRing(img)
	borderSamples = append(borderSamples, CornerBlocks(img, a.CornerSize)...)
	return DetectBackground(borderSamples, a.BackgroundStrategy)
}
