package analyze

import (
	"context"
	"testing"

	"casting-inspector/internal/drawing"

	"gocv.io/x/gocv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankPage(t *testing.T, ref string) drawing.Page {
	t.Helper()
	gray := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0), 300, 300, gocv.MatTypeCV8U)
	t.Cleanup(func() { gray.Close() })
	return drawing.Page{Ref: ref, Gray: gray}
}

func TestAnalyzePageBlank(t *testing.T) {
	page := blankPage(t, "blank.png")

	result, err := AnalyzePage(page.Ref, page.Gray, DefaultOptions())
	require.NoError(t, err)

	// A blank drawing legitimately yields zero features, not an error
	assert.Equal(t, 0, result.FeatureCount)
	assert.Empty(t, result.Features)
	assert.False(t, result.Failed())
}

func TestAnalyzePageInvalid(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	_, err := AnalyzePage("broken.png", empty, DefaultOptions())
	assert.ErrorIs(t, err, drawing.ErrInvalidImage)
}

func TestAnalyzeDocumentFailedPageDoesNotAbortSiblings(t *testing.T) {
	invalid := gocv.NewMat()
	defer invalid.Close()

	pages := []drawing.Page{
		blankPage(t, "page1.png"),
		{Ref: "page2.png", Gray: invalid},
		blankPage(t, "page3.png"),
	}

	runner := NewRunner(DefaultOptions(), 2, nil, nil)
	doc, err := runner.AnalyzeDocument(context.Background(), pages)
	require.NoError(t, err)

	require.Equal(t, 3, doc.PageCount)
	require.Len(t, doc.Pages, 3)

	// Page order preserved exactly as provided
	assert.Equal(t, "page1.png", doc.Pages[0].ImageRef)
	assert.Equal(t, "page2.png", doc.Pages[1].ImageRef)
	assert.Equal(t, "page3.png", doc.Pages[2].ImageRef)

	assert.False(t, doc.Pages[0].Failed())
	assert.True(t, doc.Pages[1].Failed())
	assert.NotEmpty(t, doc.Pages[1].Failure)
	assert.False(t, doc.Pages[2].Failed())

	// Totals cover valid pages only; blank pages have no verdicts so
	// the tally stays empty rather than reporting 0/0/0 rows
	assert.Equal(t, 0, doc.TotalFeatureCount)
	assert.Empty(t, doc.RuleTally)
}

func TestAnalyzeDocumentEmpty(t *testing.T) {
	runner := NewRunner(DefaultOptions(), 0, nil, nil)
	doc, err := runner.AnalyzeDocument(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.PageCount)
	assert.Empty(t, doc.RuleTally)
}

func TestDocumentResultRuleIDsSorted(t *testing.T) {
	doc := &DocumentResult{RuleTally: map[string]Tally{
		"R9": {Yes: 1}, "R10": {No: 2}, "R3": {NeedsReview: 1},
	}}
	assert.Equal(t, []string{"R10", "R3", "R9"}, doc.RuleIDs())
}

func TestTallyTotal(t *testing.T) {
	assert.Equal(t, 6, Tally{Yes: 1, No: 2, NeedsReview: 3}.Total())
}
