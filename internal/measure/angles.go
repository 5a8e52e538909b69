package measure

import (
	"math"

	"casting-inspector/pkg/geometry"
)

// PairwiseAngleDiffs returns the absolute angular difference, in
// degrees, for every unordered pair of segments. Differences above 90
// degrees are reflected into [0, 90]: a near-vertical and a
// near-horizontal line meet at the same corner angle regardless of
// which direction either was traced.
func PairwiseAngleDiffs(segments []geometry.Segment) []float64 {
	var diffs []float64
	for i := 0; i < len(segments); i++ {
		a1 := segments[i].Angle()
		for j := i + 1; j < len(segments); j++ {
			diff := math.Abs(a1-segments[j].Angle()) * 180 / math.Pi
			if diff > 90 {
				diff = 180 - diff
			}
			diffs = append(diffs, diff)
		}
	}
	return diffs
}

// NormalizedAngles returns each segment's orientation in degrees,
// folded into [0, 180) so direction of travel does not matter.
func NormalizedAngles(segments []geometry.Segment) []float64 {
	angles := make([]float64, len(segments))
	for i, s := range segments {
		a := s.AngleDegrees()
		if a < 0 {
			a += 180
		}
		angles[i] = a
	}
	return angles
}

// ClusterAngles greedily groups angles differing by less than tolerance
// degrees and returns the number of distinct clusters. Each angle seeds
// a cluster only if no earlier cluster already absorbed it, so the
// count is deterministic for a fixed input order.
func ClusterAngles(angles []float64, tolerance float64) int {
	clusters := 0
	assigned := make([]bool, len(angles))
	for i, a := range angles {
		if assigned[i] {
			continue
		}
		clusters++
		assigned[i] = true
		for j := i + 1; j < len(angles); j++ {
			if !assigned[j] && math.Abs(a-angles[j]) < tolerance {
				assigned[j] = true
			}
		}
	}
	return clusters
}
