// Package detect finds candidate casting features on a preprocessed
// drawing page. Each detector is a pure function from an edge map (or the
// grayscale grid, for solid features) to a list of candidate features;
// no detector holds state across calls.
package detect

import (
	"casting-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

// FeatureType identifies which detector produced a candidate feature.
type FeatureType string

const (
	Wall     FeatureType = "wall"
	Corner   FeatureType = "corner"
	Junction FeatureType = "junction"
	Rib      FeatureType = "rib"
	Boss     FeatureType = "boss"
)

// Feature is a candidate casting feature: a typed, axis-aligned region
// with a confidence score and detector-specific numeric properties.
// Features are never mutated after creation.
type Feature struct {
	Region     geometry.RectInt   `json:"region"`
	Type       FeatureType        `json:"type"`
	Confidence float64            `json:"confidence"`
	Properties map[string]float64 `json:"properties,omitempty"`
}

// squareAt returns a size x size square centered on (x, y), unclipped.
func squareAt(x, y, size int) geometry.RectInt {
	return geometry.RectInt{
		X:      x - size/2,
		Y:      y - size/2,
		Width:  size,
		Height: size,
	}
}

// All runs the five detectors in fixed order (wall, corner, junction,
// rib, boss) and concatenates their results. The edge map and grayscale
// grid must have identical dimensions.
func All(edges, gray gocv.Mat, p Params) []Feature {
	features := DetectWalls(edges, p.Wall)
	features = append(features, DetectCorners(edges, p.Corner)...)
	features = append(features, DetectJunctions(edges, p.Junction)...)
	features = append(features, DetectRibs(edges, p.Rib)...)
	features = append(features, DetectBosses(gray, p.Boss)...)
	return features
}
