package detect

import (
	"sort"

	"gocv.io/x/gocv"
)

const bossConfidence = 0.6

// DetectBosses finds solid circular/elliptical pads via blob detection.
// Bosses are filled features, so detection runs on the grayscale grid
// rather than the edge map; outline-only shapes fail the convexity
// filter. The MaxCount largest detections survive.
func DetectBosses(gray gocv.Mat, p BossParams) []Feature {
	if gray.Empty() {
		return nil
	}
	width, height := gray.Cols(), gray.Rows()

	params := gocv.NewSimpleBlobDetectorParams()
	params.SetFilterByArea(true)
	params.SetMinArea(p.MinArea)
	params.SetMaxArea(p.MaxArea)
	params.SetFilterByCircularity(false)
	params.SetFilterByConvexity(true)
	params.SetMinConvexity(p.MinConvexity)

	detector := gocv.NewSimpleBlobDetectorWithParams(params)
	defer detector.Close()

	keypoints := detector.Detect(gray)

	sort.SliceStable(keypoints, func(i, j int) bool {
		if keypoints[i].Size != keypoints[j].Size {
			return keypoints[i].Size > keypoints[j].Size
		}
		if keypoints[i].Y != keypoints[j].Y {
			return keypoints[i].Y < keypoints[j].Y
		}
		return keypoints[i].X < keypoints[j].X
	})
	if len(keypoints) > p.MaxCount {
		keypoints = keypoints[:p.MaxCount]
	}

	features := make([]Feature, 0, len(keypoints))
	for _, kp := range keypoints {
		size := int(kp.Size)
		if size <= 0 {
			continue
		}
		// Region spans twice the characteristic radius around the centroid
		region := squareAt(int(kp.X), int(kp.Y), 2*size).ClipTo(width, height)
		if region.Empty() {
			continue
		}
		features = append(features, Feature{
			Region:     region,
			Type:       Boss,
			Confidence: bossConfidence,
			Properties: map[string]float64{
				"size":     kp.Size,
				"response": kp.Response,
			},
		})
	}
	return features
}
