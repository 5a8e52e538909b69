package measure

import (
	"casting-inspector/internal/detect"
	"casting-inspector/pkg/geometry"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gocv.io/x/gocv"
)

// CornerAngles re-runs line detection inside a corner region and
// reports the minimum and mean pairwise angle plus the count of acute
// (< 90 degree) pairs. Fewer than two lines yields neutral defaults
// that map to compliant verdicts.
func CornerAngles(region geometry.RectInt, edges gocv.Mat, p HoughParams) Measurement {
	roi := regionOf(edges, region.X, region.Y, region.Width, region.Height)
	defer roi.Close()

	segments := detect.HoughSegments(roi, p.VoteThreshold, p.MinLength, p.MaxGap)
	return CornerAngleStats(segments)
}

// CornerAngleStats computes the corner metrics from detected segments.
func CornerAngleStats(segments []geometry.Segment) Measurement {
	diffs := PairwiseAngleDiffs(segments)
	if len(diffs) == 0 {
		return Measurement{
			"min_angle":    90,
			"avg_angle":    90,
			"acute_angles": 0,
		}
	}

	acute := 0
	for _, d := range diffs {
		if d < 90 {
			acute++
		}
	}
	return Measurement{
		"min_angle":    floats.Min(diffs),
		"avg_angle":    stat.Mean(diffs, nil),
		"acute_angles": float64(acute),
	}
}
