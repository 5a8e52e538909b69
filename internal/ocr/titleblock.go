// Package ocr extracts title-block text from drawing sheets using
// Tesseract. Engineering drawings carry their number, title, and
// revision in a block at the bottom-right corner of the sheet.
package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// Engine wraps a Tesseract client configured for drawing title blocks.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates a title-block OCR engine.
func NewEngine() (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("set OCR language: %w", err)
	}

	// Drawing numbers aren't dictionary words; stop Tesseract from
	// "correcting" them
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// ExtractTitleBlock reads text from the bottom-right quadrant of the
// sheet, where title blocks conventionally sit.
func (e *Engine) ExtractTitleBlock(gray gocv.Mat) (string, error) {
	if gray.Empty() {
		return "", fmt.Errorf("empty page")
	}

	h, w := gray.Rows(), gray.Cols()
	block := gray.Region(image.Rect(w/2, h/2, w, h))
	defer block.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, block)
	if err != nil {
		return "", fmt.Errorf("encode title block: %w", err)
	}
	defer buf.Close()

	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("set OCR image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR title block: %w", err)
	}
	return strings.TrimSpace(text), nil
}
