package detect

import (
	"math"

	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

const ribConfidence = 0.7

// DetectRibs finds closely-spaced parallel line pairs indicative of
// reinforcing ribs. Segments come from a looser Hough pass than the wall
// detector; pairing is greedy in detection order: the first valid
// partner wins and both segments are consumed, so no segment appears in
// more than one pair.
func DetectRibs(edges gocv.Mat, p RibParams) []Feature {
	if edges.Empty() {
		return nil
	}
	width, height := edges.Cols(), edges.Rows()

	segments := HoughSegments(edges, p.VoteThreshold, p.MinLength, p.MaxGap)
	if len(segments) > p.MaxSegments {
		segments = segments[:p.MaxSegments]
	}

	pairs := PairParallel(segments, p.AngleTolerance, p.MinSpacing, p.MaxSpacing)
	if len(pairs) > p.MaxCount {
		pairs = pairs[:p.MaxCount]
	}

	features := make([]Feature, 0, len(pairs))
	for _, pair := range pairs {
		region := geometry.SegmentBounds(pair.First, pair.Second).
			Pad(p.Padding).ClipTo(width, height)
		if region.Empty() {
			continue
		}
		features = append(features, Feature{
			Region:     region,
			Type:       Rib,
			Confidence: ribConfidence,
			Properties: map[string]float64{
				"spacing": pair.Spacing,
				"angle":   pair.Angle,
			},
		})
	}
	return features
}

// RibPair is a pair of near-parallel segments with their perpendicular
// separation and the first segment's orientation in radians.
type RibPair struct {
	First, Second geometry.Segment
	Spacing       float64
	Angle         float64
}

// PairParallel greedily pairs segments whose orientations differ by less
// than angleTol radians and whose perpendicular separation falls inside
// [minSpacing, maxSpacing]. Pairing is order-dependent: each segment
// takes its first valid partner and neither is reused.
func PairParallel(segments []geometry.Segment, angleTol, minSpacing, maxSpacing float64) []RibPair {
	consumed := make([]bool, len(segments))
	var pairs []RibPair

	for i, first := range segments {
		if consumed[i] {
			continue
		}
		angle1 := first.Angle()

		for j := i + 1; j < len(segments); j++ {
			if consumed[j] {
				continue
			}
			second := segments[j]
			if math.Abs(angle1-second.Angle()) >= angleTol {
				continue
			}
			spacing := first.PerpendicularDistance(second.X1, second.Y1)
			if spacing <= minSpacing || spacing >= maxSpacing {
				continue
			}
			pairs = append(pairs, RibPair{
				First:   first,
				Second:  second,
				Spacing: spacing,
				Angle:   angle1,
			})
			consumed[i] = true
			consumed[j] = true
			break
		}
	}
	return pairs
}
