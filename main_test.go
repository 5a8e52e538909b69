package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"casting-inspector/internal/analyze"
	"casting-inspector/internal/drawing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBlankPage(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 300, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	path := filepath.Join(dir, "page.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadPagesUnreadableFileKeepsSlot(t *testing.T) {
	dir := t.TempDir()
	good := writeBlankPage(t, dir)
	missing := filepath.Join(dir, "absent.png")

	pages := loadPages([]string{good, missing}, zap.NewNop())
	defer func() {
		for i := range pages {
			pages[i].Close()
		}
	}()
	require.Len(t, pages, 2)

	// The placeholder carries a valid empty mat, so validation reports
	// the page invalid rather than dereferencing a nil handle
	assert.NoError(t, drawing.Validate(pages[0].Gray))
	assert.ErrorIs(t, drawing.Validate(pages[1].Gray), drawing.ErrInvalidImage)

	runner := analyze.NewRunner(analyze.DefaultOptions(), 1, nil, nil)
	doc, err := runner.AnalyzeDocument(context.Background(), pages)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.False(t, doc.Pages[0].Failed())
	assert.Equal(t, missing, doc.Pages[1].ImageRef)
	assert.True(t, doc.Pages[1].Failed())
}
