package analyze

import (
	"context"
	"runtime"
	"sort"

	"casting-inspector/internal/drawing"
	"casting-inspector/internal/rules"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gocv.io/x/gocv"
)

// Tally counts verdict occurrences for one rule across a document.
type Tally struct {
	Yes         int `json:"yes"`
	No          int `json:"no"`
	NeedsReview int `json:"needs_review"`
}

// Total returns the number of verdicts counted.
func (t Tally) Total() int {
	return t.Yes + t.No + t.NeedsReview
}

// DocumentResult aggregates per-page results and per-rule tallies.
// Page order is preserved exactly as provided; identical features on
// different pages are never deduplicated.
type DocumentResult struct {
	PageCount         int              `json:"page_count"`
	TotalFeatureCount int              `json:"total_feature_count"`
	Pages             []*PageResult    `json:"pages"`
	RuleTally         map[string]Tally `json:"rule_tally"`
}

// RuleIDs returns the tallied rule identifiers in sorted order.
func (d *DocumentResult) RuleIDs() []string {
	ids := make([]string, 0, len(d.RuleTally))
	for id := range d.RuleTally {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TitleReader extracts title-block text from a page. Nil disables the
// extraction.
type TitleReader interface {
	ExtractTitleBlock(gray gocv.Mat) (string, error)
}

// Runner processes multi-page documents.
type Runner struct {
	opts    Options
	workers int
	titles  TitleReader
	log     *zap.Logger
}

// NewRunner creates a document runner. Workers <= 0 uses one worker per
// CPU; pages are independent, so they parallelize with no locking.
func NewRunner(opts Options, workers int, titles TitleReader, log *zap.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{opts: opts, workers: workers, titles: titles, log: log}
}

// AnalyzeDocument analyzes all pages concurrently and computes the
// per-rule tallies once every page task has completed. A page that
// fails to decode yields a failure-marked PageResult; its siblings are
// unaffected and the totals cover valid pages only.
func (r *Runner) AnalyzeDocument(ctx context.Context, pages []drawing.Page) (*DocumentResult, error) {
	results := make([]*PageResult, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page := pages[i]

			result, err := AnalyzePage(page.Ref, page.Gray, r.opts)
			if err != nil {
				r.log.Warn("page analysis failed",
					zap.String("page", page.Ref), zap.Error(err))
				results[i] = &PageResult{ImageRef: page.Ref, Failure: err.Error()}
				return nil
			}

			if r.titles != nil {
				title, err := r.titles.ExtractTitleBlock(page.Gray)
				if err != nil {
					r.log.Warn("title-block extraction failed",
						zap.String("page", page.Ref), zap.Error(err))
				} else {
					result.TitleBlock = title
				}
			}

			r.log.Info("page analyzed",
				zap.String("page", page.Ref),
				zap.Int("features", result.FeatureCount))
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &DocumentResult{
		PageCount: len(results),
		Pages:     results,
		RuleTally: make(map[string]Tally),
	}
	for _, page := range results {
		if page.Failed() {
			continue
		}
		doc.TotalFeatureCount += page.FeatureCount
		for _, a := range page.Features {
			for rule, v := range a.Verdicts {
				tally := doc.RuleTally[rule]
				switch v {
				case rules.Yes:
					tally.Yes++
				case rules.No:
					tally.No++
				case rules.NeedsReview:
					tally.NeedsReview++
				}
				doc.RuleTally[rule] = tally
			}
		}
	}
	return doc, nil
}
