package detect

import (
	"image"
	"sort"

	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

const junctionConfidence = 0.6

// DetectJunctions finds T- and cross-junctions where wall sections meet.
// A morphological top-hat with a cross-shaped structuring element leaves
// only the junction cores; their external contours become candidates.
// The largest MaxCount contours above the noise area survive.
func DetectJunctions(edges gocv.Mat, p JunctionParams) []Feature {
	if edges.Empty() {
		return nil
	}
	width, height := edges.Cols(), edges.Rows()

	kernel := gocv.GetStructuringElement(gocv.MorphCross, image.Pt(p.KernelSize, p.KernelSize))
	defer kernel.Close()

	tophat := gocv.NewMat()
	defer tophat.Close()
	gocv.MorphologyEx(edges, &tophat, gocv.MorphTophat, kernel)

	contours := gocv.FindContours(tophat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	type blob struct {
		area   float64
		bounds geometry.RectInt
	}
	blobs := make([]blob, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		area := gocv.ContourArea(contour)
		r := gocv.BoundingRect(contour)
		blobs = append(blobs, blob{
			area: area,
			bounds: geometry.RectInt{
				X: r.Min.X, Y: r.Min.Y,
				Width: r.Dx(), Height: r.Dy(),
			},
		})
	}

	sort.SliceStable(blobs, func(i, j int) bool {
		if blobs[i].area != blobs[j].area {
			return blobs[i].area > blobs[j].area
		}
		if blobs[i].bounds.Y != blobs[j].bounds.Y {
			return blobs[i].bounds.Y < blobs[j].bounds.Y
		}
		return blobs[i].bounds.X < blobs[j].bounds.X
	})
	if len(blobs) > p.MaxCount {
		blobs = blobs[:p.MaxCount]
	}

	features := make([]Feature, 0, len(blobs))
	for _, b := range blobs {
		if b.area <= p.MinArea {
			continue
		}
		region := b.bounds.Pad(p.Padding).ClipTo(width, height)
		if region.Empty() {
			continue
		}
		features = append(features, Feature{
			Region:     region,
			Type:       Junction,
			Confidence: junctionConfidence,
			Properties: map[string]float64{
				"area": b.area,
			},
		})
	}
	return features
}
