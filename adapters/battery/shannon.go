package battery

import (
	"context"
	"fmt"
	"math"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// ShannonTest computes Shannon entropy over the byte encoding of the
// dataset. It complements EntropyTest: that one looks at whole entries as
// symbols, this one at the underlying byte stream.
type ShannonTest struct{}

// NewShannonTest creates a new byte-entropy test
func NewShannonTest() *ShannonTest {
	return &ShannonTest{}
}

func (t *ShannonTest) ID() core.TestID {
	return TestShannon
}

func (t *ShannonTest) Description() string {
	return "Shannon entropy of the canonical byte encoding relative to the observed byte alphabet"
}

func (t *ShannonTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	data := ds.Bytes()
	total := len(data)
	if total == 0 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     "no byte data; result is maximally uncertain",
		}
	}

	var counts [256]int
	distinct := 0
	for _, b := range data {
		if counts[b] == 0 {
			distinct++
		}
		counts[b]++
	}
	if distinct < 2 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Passed:     false,
			Confidence: 0,
			Detail:     "single byte value present; entropy is zero",
		}
	}

	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	maxEntropy := math.Log2(float64(distinct))
	confidence := clamp01(entropy / maxEntropy)

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  entropy,
		Detail:     fmt.Sprintf("byte entropy %.3f bits (max %.3f over %d distinct bytes)", entropy, maxEntropy, distinct),
	}
}
