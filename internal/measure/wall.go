package measure

import (
	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WallThickness samples local wall thickness inside the region and
// reports aggregate statistics. Edges are re-extracted from the
// grayscale crop; each sufficiently long contour contributes the shorter
// side of its bounding box as one thickness sample. No contours is not
// an error: all metrics report zero.
func WallThickness(region geometry.RectInt, gray gocv.Mat, p WallParams) Measurement {
	roi := regionOf(gray, region.X, region.Y, region.Width, region.Height)
	defer roi.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(roi, &edges, p.CannyLow, p.CannyHigh)

	contours := gocv.FindContours(edges, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var samples []float64
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		if contour.Size() <= p.MinContourPoints {
			continue
		}
		r := gocv.BoundingRect(contour)
		samples = append(samples, float64(min(r.Dx(), r.Dy())))
	}

	if len(samples) == 0 {
		return Measurement{
			"avg_thickness":       0,
			"min_thickness":       0,
			"max_thickness":       0,
			"thickness_variation": 0,
		}
	}
	return ThicknessStats(samples)
}

// ThicknessStats aggregates thickness samples into the wall metrics.
// Variation is the sample standard deviation; a single sample has zero
// variation by definition.
func ThicknessStats(samples []float64) Measurement {
	variation := 0.0
	if len(samples) > 1 {
		variation = stat.StdDev(samples, nil)
	}
	return Measurement{
		"avg_thickness":       stat.Mean(samples, nil),
		"min_thickness":       floats.Min(samples),
		"max_thickness":       floats.Max(samples),
		"thickness_variation": variation,
	}
}
