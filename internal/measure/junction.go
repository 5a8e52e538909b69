package measure

import (
	"casting-inspector/internal/detect"
	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

// Angle cluster width for junction section counting, degrees.
const junctionClusterTolerance = 15

// JunctionComplexity re-runs line detection inside a junction region and
// counts distinct wall sections by clustering line orientations. Lines
// within 15 degrees of each other belong to the same section.
func JunctionComplexity(region geometry.RectInt, edges gocv.Mat, p HoughParams) Measurement {
	roi := regionOf(edges, region.X, region.Y, region.Width, region.Height)
	defer roi.Close()

	segments := detect.HoughSegments(roi, p.VoteThreshold, p.MinLength, p.MaxGap)
	return JunctionStats(segments)
}

// JunctionStats computes the junction metrics from detected segments.
func JunctionStats(segments []geometry.Segment) Measurement {
	if len(segments) == 0 {
		return Measurement{
			"total_lines":      0,
			"unique_sections":  0,
			"complexity_score": 0,
		}
	}
	sections := ClusterAngles(NormalizedAngles(segments), junctionClusterTolerance)
	return Measurement{
		"total_lines":      float64(len(segments)),
		"unique_sections":  float64(sections),
		"complexity_score": float64(sections),
	}
}
