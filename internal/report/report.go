// Package report serializes document analysis results.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"casting-inspector/internal/analyze"
)

// File is the persisted document report.
type File struct {
	Version   int                     `json:"version"`
	Generated time.Time               `json:"generated"`
	Document  *analyze.DocumentResult `json:"document"`
}

// Write saves the document report as indented JSON under dir, using a
// timestamped filename, and returns the written path.
func Write(dir string, doc *analyze.DocumentResult) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("report dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("analysis_%s.json", time.Now().Format("20060102_150405")))
	if err := WriteTo(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// WriteTo saves the document report to an explicit path.
func WriteTo(path string, doc *analyze.DocumentResult) error {
	f := File{
		Version:   1,
		Generated: time.Now(),
		Document:  doc,
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a previously written report.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &f, nil
}
