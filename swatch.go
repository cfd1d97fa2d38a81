package imgpalette

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/imgpalette/imageutil"
)

// SwatchOptions configures RenderSwatches.
type SwatchOptions struct {
	// SwatchSize is the edge length in pixels of each color chip.
	SwatchSize int

	// Gap is the spacing in pixels between chips and around the sheet.
	Gap int

	// Font, when non-nil, enables a hex-code label under each chip.
	Font *truetype.Font

	// FontSize is the label point size. Defaults to 12 when a font is set.
	FontSize float64
}

// DefaultSwatchOptions returns the options used when none are given:
// 64-pixel chips with a 4-pixel gap and no labels.
func DefaultSwatchOptions() SwatchOptions {
	return SwatchOptions{SwatchSize: 64, Gap: 4}
}

// LoadFont parses a TTF file for use as the swatch label font.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

// RenderSwatches renders an analysis result as a one-row sheet of color
// chips: the background color first, then each palette entry in palette
// order. When a font is configured, each chip gets its hex code drawn
// beneath it. The sheet is what the art-viewer UI shows next to an
// artwork; here it is produced as an image the caller can save.
func RenderSwatches(analysis Analysis, opts SwatchOptions) *imageutil.RGBAImage {
	if opts.SwatchSize <= 0 {
		opts.SwatchSize = 64
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.Font != nil && opts.FontSize <= 0 {
		opts.FontSize = 12
	}

	labelHeight := 0
	if opts.Font != nil {
		labelHeight = int(opts.FontSize) + opts.Gap
	}

	chips := make([]Entry, 0, len(analysis.Palette)+1)
	chips = append(chips, Entry{Color: analysis.Background, Background: true})
	chips = append(chips, analysis.Palette...)

	size := opts.SwatchSize
	gap := opts.Gap
	width := gap + len(chips)*(size+gap)
	height := gap + size + labelHeight + gap

	sheet := imageutil.NewRGBAImage(width, height)
	sheet.Fill(RGB{R: 255, G: 255, B: 255})

	for i, chip := range chips {
		x0 := gap + i*(size+gap)
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				sheet.SetRGB(x0+dx, gap+dy, chip.Color)
			}
		}
	}

	if opts.Font != nil {
		drawLabels(sheet, chips, opts)
	}
	return sheet
}

// drawLabels renders a hex-code label under each chip with freetype.
// Label drawing failures are ignored; the sheet is still useful unlabeled.
func drawLabels(sheet *imageutil.RGBAImage, chips []Entry, opts SwatchOptions) {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(opts.Font)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(sheet.Bounds())
	ctx.SetDst(sheet.RGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	baseline := opts.Gap + opts.SwatchSize + opts.Gap + int(opts.FontSize)
	for i, chip := range chips {
		x0 := opts.Gap + i*(opts.SwatchSize+opts.Gap)
		pt := freetype.Pt(x0, baseline)
		if _, err := ctx.DrawString(Hex(chip.Color), pt); err != nil {
			return
		}
	}
}
