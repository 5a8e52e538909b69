package detect

import (
	"sort"

	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

const wallConfidence = 0.8

// DetectWalls finds straight line segments representing wall edges.
// Segments shorter than the minimum length or touching the border margin
// (drawing frames and annotations, not casting geometry) are discarded.
// When more than MaxCount survive, the longest are retained; ties break
// by lowest top-left y then x so output order is reproducible.
func DetectWalls(edges gocv.Mat, p WallParams) []Feature {
	if edges.Empty() {
		return nil
	}
	width, height := edges.Cols(), edges.Rows()

	segments := HoughSegments(edges, p.VoteThreshold, p.MinLength, p.MaxGap)

	kept := segments[:0]
	for _, s := range segments {
		if s.Length() < p.MinLength {
			continue
		}
		if nearBorder(s, width, height, p.BorderMargin) {
			continue
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		li, lj := kept[i].Length(), kept[j].Length()
		if li != lj {
			return li > lj
		}
		bi, bj := kept[i].Bounds(), kept[j].Bounds()
		if bi.Y != bj.Y {
			return bi.Y < bj.Y
		}
		return bi.X < bj.X
	})
	if len(kept) > p.MaxCount {
		kept = kept[:p.MaxCount]
	}

	features := make([]Feature, 0, len(kept))
	for _, s := range kept {
		region := s.Bounds().Pad(p.Padding).ClipTo(width, height)
		if region.Empty() {
			continue
		}
		features = append(features, Feature{
			Region:     region,
			Type:       Wall,
			Confidence: wallConfidence,
			Properties: map[string]float64{
				"length": s.Length(),
				"angle":  s.AngleDegrees(),
			},
		})
	}
	return features
}

// nearBorder reports whether either endpoint lies within margin pixels
// of the image border.
func nearBorder(s geometry.Segment, width, height, margin int) bool {
	for _, pt := range [][2]int{{s.X1, s.Y1}, {s.X2, s.Y2}} {
		x, y := pt[0], pt[1]
		if x < margin || y < margin || x > width-margin || y > height-margin {
			return true
		}
	}
	return false
}
