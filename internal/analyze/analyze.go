// Package analyze runs the per-page analysis pipeline and aggregates
// multi-page documents. Data flows strictly forward, from grayscale
// grid to edge map to candidate features to measurements to verdicts.
package analyze

import (
	"fmt"

	"casting-inspector/internal/detect"
	"casting-inspector/internal/drawing"
	"casting-inspector/internal/measure"
	"casting-inspector/internal/preprocess"
	"casting-inspector/internal/rules"

	"gocv.io/x/gocv"
)

// Options bundles every tunable of the pipeline. All values are
// read-only configuration, not runtime state.
type Options struct {
	Preprocess preprocess.Params `yaml:"preprocess"`
	Detect     detect.Params     `yaml:"detect"`
	Measure    measure.Params    `yaml:"measure"`
	Rules      rules.Thresholds  `yaml:"rules"`
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Preprocess: preprocess.DefaultParams(),
		Detect:     detect.DefaultParams(),
		Measure:    measure.DefaultParams(),
		Rules:      rules.DefaultThresholds(),
	}
}

// Analysis is the per-feature result unit: the detected feature, its
// measurements, and its rule verdicts. Read-only after construction.
type Analysis struct {
	Feature     detect.Feature           `json:"feature"`
	Measurement measure.Measurement      `json:"measurements,omitempty"`
	Verdicts    map[string]rules.Verdict `json:"rule_compliance,omitempty"`
}

// PageResult holds the analysis of one drawing page. A page that failed
// to decode carries a failure marker instead of features; failed pages
// never abort their siblings.
type PageResult struct {
	ImageRef     string     `json:"image_ref"`
	Failure      string     `json:"failure,omitempty"`
	Features     []Analysis `json:"features"`
	FeatureCount int        `json:"feature_count"`
	TitleBlock   string     `json:"title_block,omitempty"`
}

// Failed reports whether the page carries a failure marker.
func (p *PageResult) Failed() bool {
	return p.Failure != ""
}

// CountsByType tallies the page's features per feature type.
func (p *PageResult) CountsByType() map[detect.FeatureType]int {
	counts := make(map[detect.FeatureType]int)
	for _, a := range p.Features {
		counts[a.Feature.Type]++
	}
	return counts
}

// AnalyzePage runs the full pipeline on one grayscale page: preprocess,
// the five detectors in fixed order, per-feature measurement, and rule
// evaluation. A blank page legitimately yields zero features.
func AnalyzePage(ref string, gray gocv.Mat, opts Options) (*PageResult, error) {
	if err := drawing.Validate(gray); err != nil {
		return nil, fmt.Errorf("page %s: %w", ref, err)
	}

	edges, err := preprocess.EdgeMap(gray, opts.Preprocess)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", ref, err)
	}
	defer edges.Close()

	features := detect.All(edges, gray, opts.Detect)

	analyses := make([]Analysis, 0, len(features))
	for _, f := range features {
		m := measure.Analyze(f, gray, edges, opts.Measure)
		analyses = append(analyses, Analysis{
			Feature:     f,
			Measurement: m,
			Verdicts:    rules.Evaluate(f, m, opts.Rules),
		})
	}

	return &PageResult{
		ImageRef:     ref,
		Features:     analyses,
		FeatureCount: len(analyses),
	}, nil
}
