package detect

import (
	"math"

	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

// HoughSegments runs the probabilistic Hough transform over a binary
// edge map and returns the detected segments in accumulator order.
// The measurement analyzer reuses this on region crops, with looser
// thresholds than the detectors.
func HoughSegments(edges gocv.Mat, threshold int, minLength, maxGap float64) []geometry.Segment {
	if edges.Empty() {
		return nil
	}

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(edges, &lines, 1, math.Pi/180, threshold,
		float32(minLength), float32(maxGap))

	segments := make([]geometry.Segment, 0, lines.Rows())
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		segments = append(segments, geometry.Segment{
			X1: int(v[0]), Y1: int(v[1]),
			X2: int(v[2]), Y2: int(v[3]),
		})
	}
	return segments
}
