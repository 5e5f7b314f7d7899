package battery

import (
	"context"
	"fmt"
	"math"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// MonobitTest compares the proportion of one-bits in the encoded dataset to
// the 0.5 expected of a random bit stream.
type MonobitTest struct{}

// NewMonobitTest creates a new monobit frequency test
func NewMonobitTest() *MonobitTest {
	return &MonobitTest{}
}

func (t *MonobitTest) ID() core.TestID {
	return TestMonobit
}

func (t *MonobitTest) Description() string {
	return "Frequency test: proportion of one-bits versus the 0.5 expected under randomness"
}

// Evaluate computes the normalized bit-count statistic s = |ones - zeros| / sqrt(n)
// and derives confidence from the two-sided normal tail probability.
func (t *MonobitTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	bits := ds.Bits()
	n := len(bits)
	if n == 0 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     "no bit data available; result is maximally uncertain",
		}
	}

	sum := 0
	for _, b := range bits {
		if b == 1 {
			sum++
		} else {
			sum--
		}
	}
	sObs := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	confidence := twoSidedNormalP(sObs)

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  sObs,
		Detail:     fmt.Sprintf("monobit statistic %.3f over %d bits", sObs, n),
	}
}
