package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntClipTo(t *testing.T) {
	tests := []struct {
		name string
		in   RectInt
		want RectInt
	}{
		{"inside", RectInt{X: 10, Y: 10, Width: 20, Height: 20}, RectInt{X: 10, Y: 10, Width: 20, Height: 20}},
		{"negative origin", RectInt{X: -5, Y: -5, Width: 20, Height: 20}, RectInt{X: 0, Y: 0, Width: 15, Height: 15}},
		{"overhang", RectInt{X: 90, Y: 90, Width: 20, Height: 20}, RectInt{X: 90, Y: 90, Width: 10, Height: 10}},
		{"fully outside", RectInt{X: 200, Y: 200, Width: 20, Height: 20}, RectInt{X: 100, Y: 100, Width: 0, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClipTo(100, 100)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.X, 0)
			assert.GreaterOrEqual(t, got.Y, 0)
			assert.LessOrEqual(t, got.X+got.Width, 100)
			assert.LessOrEqual(t, got.Y+got.Height, 100)
		})
	}
}

func TestRectIntPad(t *testing.T) {
	r := RectInt{X: 50, Y: 60, Width: 10, Height: 20}.Pad(5)
	assert.Equal(t, RectInt{X: 45, Y: 55, Width: 20, Height: 30}, r)
}

func TestRectIntUnion(t *testing.T) {
	a := RectInt{X: 0, Y: 0, Width: 10, Height: 10}
	b := RectInt{X: 20, Y: 5, Width: 10, Height: 10}
	assert.Equal(t, RectInt{X: 0, Y: 0, Width: 30, Height: 15}, a.Union(b))
}

func TestSegmentLengthAngle(t *testing.T) {
	horizontal := Segment{X1: 0, Y1: 0, X2: 100, Y2: 0}
	assert.InDelta(t, 100, horizontal.Length(), 1e-9)
	assert.InDelta(t, 0, horizontal.AngleDegrees(), 1e-9)

	diagonal := Segment{X1: 0, Y1: 0, X2: 30, Y2: 30}
	assert.InDelta(t, 30*math.Sqrt2, diagonal.Length(), 1e-9)
	assert.InDelta(t, 45, diagonal.AngleDegrees(), 1e-9)
}

func TestSegmentPerpendicularDistance(t *testing.T) {
	horizontal := Segment{X1: 0, Y1: 10, X2: 100, Y2: 10}
	assert.InDelta(t, 25, horizontal.PerpendicularDistance(50, 35), 1e-9)

	degenerate := Segment{X1: 5, Y1: 5, X2: 5, Y2: 5}
	assert.InDelta(t, 5, degenerate.PerpendicularDistance(8, 9), 1e-9)
}

func TestSegmentBounds(t *testing.T) {
	a := Segment{X1: 10, Y1: 40, X2: 30, Y2: 20}
	b := Segment{X1: 15, Y1: 45, X2: 35, Y2: 25}
	bounds := SegmentBounds(a, b)
	assert.Equal(t, RectInt{X: 10, Y: 20, Width: 25, Height: 25}, bounds)

	assert.Equal(t, RectInt{}, SegmentBounds())
}
