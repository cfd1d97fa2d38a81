package imgpalette

import "testing"

func TestNewAnalyzerDefaults(t *testing.T) {
	a := NewAnalyzer()
	if a.MaxColors != 8 {
		t.Errorf("MaxColors = %d, want 8", a.MaxColors)
	}
	if a.SignificantFraction != 0.05 {
		t.Errorf("SignificantFraction = %f, want 0.05", a.SignificantFraction)
	}
	if a.MonoSignificantFraction != 0.03 {
		t.Errorf("MonoSignificantFraction = %f, want 0.03", a.MonoSignificantFraction)
	}
	if a.SampleTarget != 10000 {
		t.Errorf("SampleTarget = %d, want 10000", a.SampleTarget)
	}
	if a.Source != SourceFullSample {
		t.Errorf("Source = %d, want SourceFullSample", a.Source)
	}
	if a.Order != OrderByScore {
		t.Errorf("Order = %d, want OrderByScore", a.Order)
	}
	if a.BackgroundStrategy != BackgroundMode {
		t.Errorf("BackgroundStrategy = %d, want BackgroundMode", a.BackgroundStrategy)
	}
	if _, ok := a.ColorMethod.(WeightedRGBMethod); !ok {
		t.Errorf("ColorMethod = %T, want WeightedRGBMethod", a.ColorMethod)
	}
	if a.mergeThreshold() != 15 {
		t.Errorf("merge threshold = %f, want the weighted RGB default 15", a.mergeThreshold())
	}
	if a.backgroundThreshold() != 30 {
		t.Errorf("background threshold = %f, want the weighted RGB default 30", a.backgroundThreshold())
	}
}

func TestAnalyzerOptions(t *testing.T) {
	a := NewAnalyzer(
		WithMaxColors(5),
		WithMergeThreshold(12),
		WithBackgroundThreshold(40),
		WithSignificantFraction(0.1),
		WithSampleTarget(5000),
		WithGridSize(10),
		WithSource(SourceGrid),
		WithOrder(OrderByVerticalPosition),
		WithBackgroundStrategy(BackgroundMean),
		WithColorMethod(CIEDE2000Method{}),
		WithIncludeBackground(true),
		WithBackgroundOverride(RGB{R: 1, G: 2, B: 3}),
	)
	if a.MaxColors != 5 || a.MergeThreshold != 12 || a.BackgroundThreshold != 40 {
		t.Error("numeric options not applied")
	}
	if a.SignificantFraction != 0.1 || a.SampleTarget != 5000 || a.GridSize != 10 {
		t.Error("sampling options not applied")
	}
	if a.Source != SourceGrid || a.Order != OrderByVerticalPosition {
		t.Error("source/order options not applied")
	}
	if a.BackgroundStrategy != BackgroundMean || !a.IncludeBackground {
		t.Error("background options not applied")
	}
	if _, ok := a.ColorMethod.(CIEDE2000Method); !ok {
		t.Errorf("ColorMethod = %T, want CIEDE2000Method", a.ColorMethod)
	}
	if a.BackgroundOverride == nil || *a.BackgroundOverride != (RGB{R: 1, G: 2, B: 3}) {
		t.Error("background override not applied")
	}
	if a.mergeThreshold() != 12 || a.backgroundThreshold() != 40 {
		t.Error("explicit thresholds should override the method defaults")
	}
}

func TestThresholdDefaultsFollowMethod(t *testing.T) {
	a := NewAnalyzer(WithColorMethod(CIEDE2000Method{}))
	if a.mergeThreshold() != 5 {
		t.Errorf("CIEDE2000 merge threshold = %f, want 5", a.mergeThreshold())
	}
	if a.backgroundThreshold() != 10 {
		t.Errorf("CIEDE2000 background threshold = %f, want 10", a.backgroundThreshold())
	}
}

func TestEntryHex(t *testing.T) {
	e := Entry{Color: RGB{R: 255, G: 128, B: 0}}
	if e.Hex() != "#FF8000" {
		t.Errorf("Hex() = %q, want #FF8000", e.Hex())
	}
}
