package measure

import (
	"testing"

	"casting-inspector/pkg/geometry"

	"github.com/stretchr/testify/assert"
)

func TestThicknessStatsUniform(t *testing.T) {
	m := ThicknessStats([]float64{5.0, 5.1, 4.9, 5.0})
	assert.InDelta(t, 5.0, m["avg_thickness"], 1e-9)
	assert.InDelta(t, 4.9, m["min_thickness"], 1e-9)
	assert.InDelta(t, 5.1, m["max_thickness"], 1e-9)
	assert.InDelta(t, 0.0816, m["thickness_variation"], 0.001)
}

func TestThicknessStatsSpread(t *testing.T) {
	m := ThicknessStats([]float64{3.0, 12.0})
	assert.InDelta(t, 7.5, m["avg_thickness"], 1e-9)
	assert.Greater(t, m["thickness_variation"], 5.0)
}

func TestThicknessStatsSingleSample(t *testing.T) {
	m := ThicknessStats([]float64{4.0})
	assert.Equal(t, 4.0, m["avg_thickness"])
	assert.Equal(t, 0.0, m["thickness_variation"])
}

func TestCornerAngleStatsNeutralDefaults(t *testing.T) {
	// Fewer than two lines cannot form an angle; defaults must read as
	// compliant, not as missing data
	for _, segments := range [][]geometry.Segment{
		nil,
		{{X1: 0, Y1: 0, X2: 50, Y2: 0}},
	} {
		m := CornerAngleStats(segments)
		assert.Equal(t, 90.0, m["min_angle"])
		assert.Equal(t, 90.0, m["avg_angle"])
		assert.Equal(t, 0.0, m["acute_angles"])
	}
}

func TestCornerAngleStatsAcuteCount(t *testing.T) {
	segments := []geometry.Segment{
		{X1: 0, Y1: 0, X2: 100, Y2: 0},  // 0 degrees
		{X1: 0, Y1: 0, X2: 100, Y2: 30}, // ~16.7 degrees
		{X1: 0, Y1: 0, X2: 0, Y2: 100},  // 90 degrees
	}
	m := CornerAngleStats(segments)
	// Pairs: (0,16.7)=16.7, (0,90)=90, (16.7,90)=73.3, two acute
	assert.Equal(t, 2.0, m["acute_angles"])
	assert.InDelta(t, 16.7, m["min_angle"], 0.1)
}

func TestJunctionStats(t *testing.T) {
	segments := []geometry.Segment{
		{X1: 0, Y1: 0, X2: 100, Y2: 0},   // 0 degrees
		{X1: 0, Y1: 10, X2: 100, Y2: 12}, // ~1 degree, same section
		{X1: 0, Y1: 0, X2: 0, Y2: 100},   // 90 degrees
	}
	m := JunctionStats(segments)
	assert.Equal(t, 3.0, m["total_lines"])
	assert.Equal(t, 2.0, m["unique_sections"])
	assert.Equal(t, m["unique_sections"], m["complexity_score"])
}

func TestJunctionStatsEmpty(t *testing.T) {
	m := JunctionStats(nil)
	assert.Equal(t, 0.0, m["total_lines"])
	assert.Equal(t, 0.0, m["unique_sections"])
}
