package drawing

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	img.SetGray(3, 2, color.Gray{Y: 200})

	page, err := FromImage("test", img)
	require.NoError(t, err)
	defer page.Close()

	assert.Equal(t, 6, page.Gray.Rows())
	assert.Equal(t, 8, page.Gray.Cols())
	assert.Equal(t, uint8(200), page.Gray.GetUCharAt(2, 3))
	assert.Equal(t, uint8(0), page.Gray.GetUCharAt(0, 0))
}

func TestFromImageZeroArea(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 0, 0))
	_, err := FromImage("empty", img)
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestFromImageNil(t *testing.T) {
	_, err := FromImage("nil", nil)
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestValidate(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	assert.ErrorIs(t, Validate(empty), ErrInvalidImage)

	ok := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8U)
	defer ok.Close()
	assert.NoError(t, Validate(ok))
}

func TestLoadPagePNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		img.SetGray(x, 5, color.Gray{Y: 255})
	}

	path := filepath.Join(t.TempDir(), "page.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	page, err := LoadPage(path)
	require.NoError(t, err)
	defer page.Close()

	assert.Equal(t, path, page.Ref)
	assert.Equal(t, 10, page.Gray.Rows())
	assert.Equal(t, 20, page.Gray.Cols())
}

func TestPageCloseUninitialized(t *testing.T) {
	placeholder := Page{Ref: "placeholder", Gray: gocv.NewMat()}
	assert.NotPanics(t, func() { placeholder.Close() })

	var zero Page
	assert.NotPanics(t, func() { zero.Close() })
}

func TestLoadPageMissing(t *testing.T) {
	_, err := LoadPage(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
