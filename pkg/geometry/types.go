// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RectInt represents an axis-aligned rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty returns true if the rectangle has no area.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the center point of the rectangle.
func (r RectInt) Center() PointInt {
	return PointInt{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Pad returns the rectangle grown by margin pixels on every side.
func (r RectInt) Pad(margin int) RectInt {
	return RectInt{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// ClipTo clips the rectangle to a width x height image. The result never
// has negative coordinates and never extends past the image bounds.
func (r RectInt) ClipTo(width, height int) RectInt {
	x1 := max(r.X, 0)
	y1 := max(r.Y, 0)
	x2 := min(r.X+r.Width, width)
	y2 := min(r.Y+r.Height, height)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return RectInt{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest rectangle containing both rectangles.
func (r RectInt) Union(other RectInt) RectInt {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.X+r.Width, other.X+other.Width)
	y2 := max(r.Y+r.Height, other.Y+other.Height)
	return RectInt{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Segment represents a line segment with integer endpoints, as produced
// by the probabilistic Hough transform.
type Segment struct {
	X1, Y1 int
	X2, Y2 int
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx := float64(s.X2 - s.X1)
	dy := float64(s.Y2 - s.Y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the segment orientation in radians, measured from the
// horizontal axis in (-pi, pi].
func (s Segment) Angle() float64 {
	return math.Atan2(float64(s.Y2-s.Y1), float64(s.X2-s.X1))
}

// AngleDegrees returns the segment orientation in degrees.
func (s Segment) AngleDegrees() float64 {
	return s.Angle() * 180 / math.Pi
}

// Bounds returns the axis-aligned bounding box of the segment endpoints.
func (s Segment) Bounds() RectInt {
	x1 := min(s.X1, s.X2)
	y1 := min(s.Y1, s.Y2)
	return RectInt{
		X:      x1,
		Y:      y1,
		Width:  abs(s.X2 - s.X1),
		Height: abs(s.Y2 - s.Y1),
	}
}

// PerpendicularDistance returns the perpendicular distance from point
// (px, py) to the infinite line through the segment. A zero-length
// segment reports the distance to its single endpoint.
func (s Segment) PerpendicularDistance(px, py int) float64 {
	length := s.Length()
	if length == 0 {
		return Point2D{X: float64(s.X1), Y: float64(s.Y1)}.
			Distance(Point2D{X: float64(px), Y: float64(py)})
	}
	num := float64((s.Y2-s.Y1)*px - (s.X2-s.X1)*py + s.X2*s.Y1 - s.Y2*s.X1)
	return math.Abs(num) / length
}

// SegmentBounds returns the bounding box of all endpoints of the given segments.
func SegmentBounds(segments ...Segment) RectInt {
	if len(segments) == 0 {
		return RectInt{}
	}
	r := segments[0].Bounds()
	for _, s := range segments[1:] {
		r = r.Union(s.Bounds())
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
