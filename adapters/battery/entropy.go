package battery

import (
	"context"
	"fmt"
	"math"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// EntropyTest computes empirical Shannon entropy over the distribution of
// raw entries (symbol level, not bits) and scores it against the maximum
// possible entropy for the observed alphabet.
type EntropyTest struct{}

// NewEntropyTest creates a new symbol-entropy test
func NewEntropyTest() *EntropyTest {
	return &EntropyTest{}
}

func (t *EntropyTest) ID() core.TestID {
	return TestEntropy
}

func (t *EntropyTest) Description() string {
	return "Symbol entropy: bits per entry relative to the maximum for the observed alphabet"
}

func (t *EntropyTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	entries := ds.Entries()
	total := len(entries)
	if total < 2 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     "fewer than two entries; symbol entropy is uninformative",
		}
	}

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
			Detail:     "all entries identical; entropy is zero",
		}
	}

	entropy := shannonEntropy(counts, total)
	maxEntropy := math.Log2(float64(distinct))
	confidence := clamp01(entropy / maxEntropy)

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  entropy,
		Detail:     fmt.Sprintf("entropy %.3f bits/entry (max %.3f for %d distinct symbols)", entropy, maxEntropy, distinct),
	}
}

func shannonEntropy(counts map[string]int, total int) float64 {
	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}
