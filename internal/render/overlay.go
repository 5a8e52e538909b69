// Package render draws analysis overlays onto drawing pages: one
// type-colored rectangle per feature with rule verdict glyphs. Purely a
// reporting aid; nothing downstream consumes the rendered image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"casting-inspector/internal/analyze"
	"casting-inspector/internal/detect"
	"casting-inspector/internal/rules"

	"gocv.io/x/gocv"
)

// TypeColors assigns a display color to each feature type.
var TypeColors = map[detect.FeatureType]color.RGBA{
	detect.Wall:     {B: 255, A: 255},                 // Blue
	detect.Corner:   {R: 255, A: 255},                 // Red
	detect.Junction: {G: 200, A: 255},                 // Green
	detect.Rib:      {R: 255, G: 140, A: 255},         // Orange
	detect.Boss:     {R: 160, B: 200, A: 255},         // Purple
}

var fallbackColor = color.RGBA{R: 128, G: 128, B: 128, A: 255} // Gray

// Overlay renders the page's features onto a BGR copy of the grayscale
// page. The caller owns the returned mat.
func Overlay(gray gocv.Mat, page *analyze.PageResult) gocv.Mat {
	canvas := gocv.NewMat()
	gocv.CvtColor(gray, &canvas, gocv.ColorGrayToBGR)

	for _, a := range page.Features {
		c, ok := TypeColors[a.Feature.Type]
		if !ok {
			c = fallbackColor
		}

		r := a.Feature.Region
		rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
		gocv.Rectangle(&canvas, rect, c, 2)

		label := fmt.Sprintf("%s %.2f", a.Feature.Type, a.Feature.Confidence)
		gocv.PutText(&canvas, label, image.Pt(r.X, max(r.Y-5, 10)),
			gocv.FontHersheyPlain, 1.0, c, 1)

		if glyphs := verdictGlyphs(a.Verdicts); glyphs != "" {
			gocv.PutText(&canvas, glyphs, image.Pt(r.X, r.Y+r.Height+14),
				gocv.FontHersheyPlain, 0.9, c, 1)
		}
	}
	return canvas
}

// Save renders the overlay and writes it next to the report output.
func Save(path string, gray gocv.Mat, page *analyze.PageResult) error {
	canvas := Overlay(gray, page)
	defer canvas.Close()
	if ok := gocv.IMWrite(path, canvas); !ok {
		return fmt.Errorf("write overlay %s", path)
	}
	return nil
}

// verdictGlyphs compacts a verdict map into "R5:Y R8:?" form, rules in
// sorted order.
func verdictGlyphs(verdicts map[string]rules.Verdict) string {
	if len(verdicts) == 0 {
		return ""
	}
	ids := make([]string, 0, len(verdicts))
	for id := range verdicts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := ""
	for i, id := range ids {
		if i > 0 {
			out += " "
		}
		out += id + ":" + glyph(verdicts[id])
	}
	return out
}

func glyph(v rules.Verdict) string {
	switch v {
	case rules.Yes:
		return "Y"
	case rules.No:
		return "N"
	default:
		return "?"
	}
}
