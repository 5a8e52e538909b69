// Command detectviz runs feature detection on a single drawing page and
// writes an annotated overlay for detector tuning.
package main

import (
	"flag"
	"fmt"
	"os"

	"casting-inspector/internal/analyze"
	"casting-inspector/internal/drawing"
	"casting-inspector/internal/render"
)

func main() {
	imagePath := flag.String("image", "", "Path to drawing page (PNG, JPEG, TIFF, or BMP)")
	outPath := flag.String("out", "detectviz.png", "Overlay output path")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: detectviz -image <path> [-out overlay.png]")
		os.Exit(1)
	}

	page, err := drawing.LoadPage(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load page: %v\n", err)
		os.Exit(1)
	}
	defer page.Close()

	fmt.Printf("Loaded page: %dx%d pixels\n", page.Gray.Cols(), page.Gray.Rows())

	opts := analyze.DefaultOptions()
	fmt.Printf("Detector caps: %d walls, %d corners, %d junctions, %d ribs, %d bosses\n",
		opts.Detect.Wall.MaxCount, opts.Detect.Corner.MaxCount,
		opts.Detect.Junction.MaxCount, opts.Detect.Rib.MaxCount, opts.Detect.Boss.MaxCount)

	result, err := analyze.AnalyzePage(*imagePath, page.Gray, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDetected %d features:\n", result.FeatureCount)
	for _, a := range result.Features {
		r := a.Feature.Region
		fmt.Printf("  %-8s conf=%.2f region=(%d,%d %dx%d)", a.Feature.Type,
			a.Feature.Confidence, r.X, r.Y, r.Width, r.Height)
		for rule, v := range a.Verdicts {
			fmt.Printf(" %s=%s", rule, v)
		}
		fmt.Println()
	}

	if err := render.Save(*outPath, page.Gray, result); err != nil {
		fmt.Fprintf(os.Stderr, "Overlay failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nOverlay written: %s\n", *outPath)
}
