package detect

import (
	"image"
	"sort"

	"gocv.io/x/gocv"
)

const cornerConfidence = 0.7

// DetectCorners finds sharp curvature maxima via the Harris corner
// response over the edge map. Responses inside the border margin are
// discarded (corner false-positives cluster near drawing frames); at
// most MaxCount survive, strongest response first.
func DetectCorners(edges gocv.Mat, p CornerParams) []Feature {
	if edges.Empty() {
		return nil
	}
	width, height := edges.Cols(), edges.Rows()

	response := harrisResponse(edges, p.BlockSize, p.KSize, p.K)
	defer response.Close()

	// Dilate so each local maximum covers its neighborhood, as the
	// response peaks are single pixels otherwise
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()
	gocv.Dilate(response, &response, kernel)

	_, maxVal, _, _ := gocv.MinMaxLoc(response)
	if maxVal <= 0 {
		return nil
	}
	cutoff := float32(p.ResponseFrac) * maxVal

	type candidate struct {
		x, y     int
		strength float32
	}
	yMax := min(height-p.BorderMargin, height-1)
	xMax := min(width-p.BorderMargin, width-1)
	var candidates []candidate
	for y := p.BorderMargin; y <= yMax; y++ {
		for x := p.BorderMargin; x <= xMax; x++ {
			if v := response.GetFloatAt(y, x); v > cutoff {
				candidates = append(candidates, candidate{x: x, y: y, strength: v})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].strength != candidates[j].strength {
			return candidates[i].strength > candidates[j].strength
		}
		if candidates[i].y != candidates[j].y {
			return candidates[i].y < candidates[j].y
		}
		return candidates[i].x < candidates[j].x
	})
	if len(candidates) > p.MaxCount {
		candidates = candidates[:p.MaxCount]
	}

	features := make([]Feature, 0, len(candidates))
	for _, c := range candidates {
		region := squareAt(c.x, c.y, p.BoxSize).ClipTo(width, height)
		if region.Empty() {
			continue
		}
		features = append(features, Feature{
			Region:     region,
			Type:       Corner,
			Confidence: cornerConfidence,
			Properties: map[string]float64{
				"corner_response": float64(c.strength),
			},
		})
	}
	return features
}

// harrisResponse computes the Harris corner response det(M) - k*trace(M)^2,
// where M is the structure tensor of Sobel derivatives averaged over a
// blockSize window. The caller must Close the returned CV_32F mat.
func harrisResponse(src gocv.Mat, blockSize, ksize int, k float64) gocv.Mat {
	f := gocv.NewMat()
	defer f.Close()
	src.ConvertTo(&f, gocv.MatTypeCV32F)

	ix := gocv.NewMat()
	defer ix.Close()
	iy := gocv.NewMat()
	defer iy.Close()
	gocv.Sobel(f, &ix, gocv.MatTypeCV32F, 1, 0, ksize, 1, 0, gocv.BorderDefault)
	gocv.Sobel(f, &iy, gocv.MatTypeCV32F, 0, 1, ksize, 1, 0, gocv.BorderDefault)

	ixx := gocv.NewMat()
	defer ixx.Close()
	iyy := gocv.NewMat()
	defer iyy.Close()
	ixy := gocv.NewMat()
	defer ixy.Close()
	gocv.Multiply(ix, ix, &ixx)
	gocv.Multiply(iy, iy, &iyy)
	gocv.Multiply(ix, iy, &ixy)

	// Averaging instead of summing scales det and trace^2 by the same
	// factor, so the relative cutoff downstream is unaffected
	window := image.Pt(blockSize, blockSize)
	gocv.BoxFilter(ixx, &ixx, -1, window)
	gocv.BoxFilter(iyy, &iyy, -1, window)
	gocv.BoxFilter(ixy, &ixy, -1, window)

	det := gocv.NewMat()
	defer det.Close()
	gocv.Multiply(ixx, iyy, &det)
	shear := gocv.NewMat()
	defer shear.Close()
	gocv.Multiply(ixy, ixy, &shear)
	gocv.Subtract(det, shear, &det)

	tr := gocv.NewMat()
	defer tr.Close()
	gocv.Add(ixx, iyy, &tr)
	gocv.Multiply(tr, tr, &tr)

	response := gocv.NewMat()
	gocv.AddWeighted(det, 1, tr, -k, 0, &response)
	return response
}
