// Package drawing loads rasterized drawing pages for analysis.
//
// Pages arrive as image files produced by an external rasterizer
// (nominally 300 DPI). All analysis runs on single-channel grayscale
// mats; color input is converted on load.
package drawing

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gocv.io/x/gocv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrInvalidImage marks a page that cannot be decoded or has zero area.
// A failed page never aborts sibling pages in a multi-page run.
var ErrInvalidImage = errors.New("invalid image")

// Page holds one drawing sheet as a grayscale pixel grid.
type Page struct {
	Ref  string   // Source path or caller-supplied identifier
	Gray gocv.Mat // Single-channel 8-bit intensity grid
}

// Close releases the underlying mat. Safe on a page whose mat was
// never initialized.
func (p *Page) Close() {
	p.Gray.Close()
}

// Validate reports ErrInvalidImage for empty or zero-area grids.
func Validate(m gocv.Mat) error {
	if m.Empty() || m.Rows() <= 0 || m.Cols() <= 0 {
		return ErrInvalidImage
	}
	return nil
}

// LoadPage reads an image file into a grayscale page. PNG and JPEG are
// decoded by OpenCV directly; TIFF and BMP scanner output falls back to
// the registered Go decoders.
func LoadPage(path string) (Page, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	if !mat.Empty() {
		return Page{Ref: path, Gray: mat}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Page{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Page{}, fmt.Errorf("%w: decode %s: %v", ErrInvalidImage, path, err)
	}
	return FromImage(path, img)
}

// FromImage converts a decoded Go image into a grayscale page.
func FromImage(ref string, img image.Image) (Page, error) {
	if img == nil {
		return Page{}, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return Page{}, fmt.Errorf("%w: zero-area image %dx%d", ErrInvalidImage, w, h)
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// ITU-R BT.601 luma, matching OpenCV's grayscale conversion
			luma := (299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000
			mat.SetUCharAt(y, x, uint8(luma))
		}
	}
	return Page{Ref: ref, Gray: mat}, nil
}
