// Package measure computes type-specific quantitative metrics for
// detected casting features. Walls, corners and junctions get a second
// analysis pass over their region; ribs and bosses carry everything the
// rules need in their detector-time properties, so they measure to nil.
package measure

import (
	"image"

	"casting-inspector/internal/detect"

	"gocv.io/x/gocv"
)

// Measurement maps metric names to values, e.g. avg_thickness or
// unique_sections. Computed once per feature and never mutated.
type Measurement map[string]float64

// HoughParams holds a probabilistic Hough configuration for region
// re-analysis.
type HoughParams struct {
	VoteThreshold int     `yaml:"vote_threshold"`
	MinLength     float64 `yaml:"min_length"`
	MaxGap        float64 `yaml:"max_gap"`
}

// WallParams configures thickness sampling within a wall region.
type WallParams struct {
	CannyLow         float32 `yaml:"canny_low"`
	CannyHigh        float32 `yaml:"canny_high"`
	MinContourPoints int     `yaml:"min_contour_points"` // Shorter contours are noise, not wall outlines
}

// Params bundles the measurement tunables.
type Params struct {
	Wall     WallParams  `yaml:"wall"`
	Corner   HoughParams `yaml:"corner"`
	Junction HoughParams `yaml:"junction"`
}

// DefaultParams returns measurement parameters tuned for 300 DPI drawings.
func DefaultParams() Params {
	return Params{
		Wall: WallParams{
			CannyLow:         50,
			CannyHigh:        150,
			MinContourPoints: 10,
		},
		Corner:   HoughParams{VoteThreshold: 30, MinLength: 20, MaxGap: 5},
		Junction: HoughParams{VoteThreshold: 20, MinLength: 15, MaxGap: 3},
	}
}

// Analyze dispatches on feature type. Gray is the original intensity
// grid, edges the preprocessed edge map; both must cover the feature's
// region (the detectors guarantee clipped regions).
func Analyze(f detect.Feature, gray, edges gocv.Mat, p Params) Measurement {
	switch f.Type {
	case detect.Wall:
		return WallThickness(f.Region, gray, p.Wall)
	case detect.Corner:
		return CornerAngles(f.Region, edges, p.Corner)
	case detect.Junction:
		return JunctionComplexity(f.Region, edges, p.Junction)
	default:
		return nil
	}
}

// regionOf returns a view of the feature region within m. The caller
// must Close the returned mat.
func regionOf(m gocv.Mat, x, y, w, h int) gocv.Mat {
	return m.Region(image.Rect(x, y, x+w, y+h))
}
