package report

import (
	"path/filepath"
	"strings"
	"testing"

	"casting-inspector/internal/analyze"
	"casting-inspector/internal/detect"
	"casting-inspector/internal/rules"
	"casting-inspector/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *analyze.DocumentResult {
	return &analyze.DocumentResult{
		PageCount:         2,
		TotalFeatureCount: 1,
		Pages: []*analyze.PageResult{
			{
				ImageRef:     "page1.png",
				FeatureCount: 1,
				Features: []analyze.Analysis{{
					Feature: detect.Feature{
						Region:     geometry.RectInt{X: 10, Y: 20, Width: 100, Height: 50},
						Type:       detect.Wall,
						Confidence: 0.8,
						Properties: map[string]float64{"length": 120, "angle": 0},
					},
					Verdicts: map[string]rules.Verdict{"R5": rules.Yes},
				}},
			},
			{ImageRef: "page2.png", Failure: "invalid image"},
		},
		RuleTally: map[string]analyze.Tally{"R5": {Yes: 1}},
	}
}

func TestWriteToAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteTo(path, sampleDocument()))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, loaded.Version)
	require.NotNil(t, loaded.Document)
	assert.Equal(t, 2, loaded.Document.PageCount)
	require.Len(t, loaded.Document.Pages, 2)
	assert.Equal(t, detect.Wall, loaded.Document.Pages[0].Features[0].Feature.Type)
	assert.Equal(t, rules.Yes, loaded.Document.Pages[0].Features[0].Verdicts["R5"])
	assert.True(t, loaded.Document.Pages[1].Failed())
	assert.Equal(t, 1, loaded.Document.RuleTally["R5"].Yes)
}

func TestWriteTimestampedName(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "analysis_"))
	assert.True(t, strings.HasSuffix(name, ".json"))

	_, err = Load(path)
	assert.NoError(t, err)
}
