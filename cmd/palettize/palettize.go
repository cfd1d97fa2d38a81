package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wbrown/imgpalette"
	"github.com/wbrown/imgpalette/imageutil"
)

// jsonEntry is the JSON shape of one palette color.
type jsonEntry struct {
	Hex              string  `json:"hex"`
	Population       int     `json:"population"`
	Share            float64 `json:"share"`
	Category         string  `json:"category"`
	Score            float64 `json:"score"`
	VerticalPosition float64 `json:"verticalPosition"`
	Background       bool    `json:"background,omitempty"`
}

// jsonResult is the JSON shape of the full analysis.
type jsonResult struct {
	Background string      `json:"background"`
	Palette    []jsonEntry `json:"palette"`
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputJSON := flag.Bool("json", false,
		"Print the analysis as JSON instead of text")
	swatchFile := flag.String("swatch", "",
		"Path to save a palette swatch sheet PNG")
	simplifyFile := flag.String("simplify", "",
		"Path to save the grid-averaged (simplified) image")
	maxColors := flag.Int("colors", 8,
		"Maximum number of palette colors")
	mergeThreshold := flag.Float64("merge-threshold", 0,
		"Cluster merge radius (0 = color method default)")
	bgThreshold := flag.Float64("bg-threshold", 0,
		"Background similarity radius (0 = color method default)")
	sampleTarget := flag.Int("samples", 10000,
		"Approximate number of pixels to sample")
	gridSize := flag.Int("grid", 20,
		"Grid dimension for the grid source and -simplify (5-50)")
	source := flag.String("source", "full",
		"Sample source: full or grid")
	order := flag.String("order", "score",
		"Palette order: score or vertical")
	colorMethod := flag.String("colormethod", "weighted",
		"Color distance method: weighted or ciede2000")
	bgStrategy := flag.String("bg-strategy", "mode",
		"Background detection strategy: mode or mean")
	bgOverride := flag.String("background", "",
		"Override the background color with a hex value, e.g. '#1e1e2e'")
	includeBackground := flag.Bool("include-background", false,
		"List the background color as an explicit palette entry")
	maxDim := flag.Int("maxdim", 0,
		"Downscale the image so its largest dimension is at most this (0 = no resize)")
	fontPath := flag.String("font", "",
		"Path to a TTF font for hex labels on the swatch sheet")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := []imgpalette.AnalyzerOption{
		imgpalette.WithMaxColors(*maxColors),
		imgpalette.WithSampleTarget(*sampleTarget),
		imgpalette.WithGridSize(*gridSize),
		imgpalette.WithIncludeBackground(*includeBackground),
	}
	if *mergeThreshold > 0 {
		opts = append(opts, imgpalette.WithMergeThreshold(*mergeThreshold))
	}
	if *bgThreshold > 0 {
		opts = append(opts, imgpalette.WithBackgroundThreshold(*bgThreshold))
	}

	switch strings.ToLower(*source) {
	case "full":
		opts = append(opts, imgpalette.WithSource(imgpalette.SourceFullSample))
	case "grid":
		opts = append(opts, imgpalette.WithSource(imgpalette.SourceGrid))
	default:
		fmt.Println("Invalid source, options are full or grid")
		os.Exit(1)
	}

	switch strings.ToLower(*order) {
	case "score":
		opts = append(opts, imgpalette.WithOrder(imgpalette.OrderByScore))
	case "vertical":
		opts = append(opts, imgpalette.WithOrder(imgpalette.OrderByVerticalPosition))
	default:
		fmt.Println("Invalid order, options are score or vertical")
		os.Exit(1)
	}

	switch strings.ToLower(*colorMethod) {
	case "weighted":
		opts = append(opts, imgpalette.WithColorMethod(imgpalette.WeightedRGBMethod{}))
	case "ciede2000":
		opts = append(opts, imgpalette.WithColorMethod(imgpalette.CIEDE2000Method{}))
	default:
		fmt.Println("Invalid color distance method, options are weighted or ciede2000")
		os.Exit(1)
	}

	switch strings.ToLower(*bgStrategy) {
	case "mode":
		opts = append(opts, imgpalette.WithBackgroundStrategy(imgpalette.BackgroundMode))
	case "mean":
		opts = append(opts, imgpalette.WithBackgroundStrategy(imgpalette.BackgroundMean))
	default:
		fmt.Println("Invalid background strategy, options are mode or mean")
		os.Exit(1)
	}

	if *bgOverride != "" {
		c, err := colorful.Hex(*bgOverride)
		if err != nil {
			fmt.Printf("Invalid -background value %q: %v\n", *bgOverride, err)
			os.Exit(1)
		}
		r, g, b := c.RGB255()
		opts = append(opts, imgpalette.WithBackgroundOverride(
			imgpalette.RGB{R: r, G: g, B: b}))
	}

	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	if *maxDim > 0 {
		img = imageutil.ResizeToMaxDim(img, *maxDim, imageutil.InterpolationArea)
	}

	analyzer := imgpalette.NewAnalyzer(opts...)
	analysis := analyzer.Analyze(img)

	if *outputJSON {
		printJSON(analysis)
	} else {
		printText(analysis)
	}

	if *simplifyFile != "" {
		simplified := imgpalette.SimplifyImage(img, *gridSize)
		if err := imageutil.SavePNG(simplified.RGBA, *simplifyFile); err != nil {
			fmt.Printf("Error writing simplified image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Simplified image written to %s\n", *simplifyFile)
	}

	if *swatchFile != "" {
		swatchOpts := imgpalette.DefaultSwatchOptions()
		if *fontPath != "" {
			f, err := imgpalette.LoadFont(*fontPath)
			if err != nil {
				fmt.Printf("Error loading font: %v\n", err)
				os.Exit(1)
			}
			swatchOpts.Font = f
		}
		sheet := imgpalette.RenderSwatches(analysis, swatchOpts)
		if err := imageutil.SavePNG(sheet.RGBA, *swatchFile); err != nil {
			fmt.Printf("Error writing swatch sheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Swatch sheet written to %s\n", *swatchFile)
	}
}

func printText(analysis imgpalette.Analysis) {
	fmt.Printf("Background: %s\n", imgpalette.Hex(analysis.Background))
	if len(analysis.Palette) == 0 {
		fmt.Println("No distinct colors found")
		return
	}
	for i, e := range analysis.Palette {
		label := ""
		if e.Background {
			label = " (background)"
		}
		fmt.Printf("%2d. %s  %-7s  share=%5.1f%%  score=%6.1f  y=%.2f%s\n",
			i+1, e.Hex(), e.Category, e.Share*100, e.Score,
			e.VerticalPosition, label)
	}
}

func printJSON(analysis imgpalette.Analysis) {
	result := jsonResult{
		Background: imgpalette.Hex(analysis.Background),
		Palette:    make([]jsonEntry, 0, len(analysis.Palette)),
	}
	for _, e := range analysis.Palette {
		result.Palette = append(result.Palette, jsonEntry{
			Hex:              e.Hex(),
			Population:       e.Population,
			Share:            e.Share,
			Category:         e.Category.String(),
			Score:            e.Score,
			VerticalPosition: e.VerticalPosition,
			Background:       e.Background,
		})
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
