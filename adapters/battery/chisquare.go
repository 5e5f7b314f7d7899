package battery

import (
	"context"
	"fmt"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// ChiSquareTest checks goodness of fit of the entry frequency distribution
// against a uniform expectation over the observed symbols.
type ChiSquareTest struct{}

// NewChiSquareTest creates a new chi-square goodness-of-fit test
func NewChiSquareTest() *ChiSquareTest {
	return &ChiSquareTest{}
}

func (t *ChiSquareTest) ID() core.TestID {
	return TestChiSquare
}

func (t *ChiSquareTest) Description() string {
	return "Chi-square goodness of fit of symbol frequencies against uniform"
}

// Evaluate uses degrees of freedom = distinct symbol count - 1. Fewer than
// two distinct symbols leaves nothing to fit, so the outcome records the
// degenerate condition instead of fabricating a statistic.
func (t *ChiSquareTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	entries := ds.Entries()
	total := len(entries)
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Raw]++
	}
	distinct := len(counts)
	if distinct < 2 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Passed:     false,
			Confidence: 0,
			Detail:     "fewer than two distinct symbols; uniform fit is undefined",
		}
	}

	expected := float64(total) / float64(distinct)
	chiSq := 0.0
	for _, c := range counts {
		diff := float64(c) - expected
		chiSq += diff * diff / expected
	}
	confidence := chiSquareSurvival(chiSq, float64(distinct-1))

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  chiSq,
		Detail:     fmt.Sprintf("chi-square %.2f over %d distinct symbols (%d entries)", chiSq, distinct, total),
	}
}
