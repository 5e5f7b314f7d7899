package battery

import (
	"context"
	"fmt"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// SerialTest examines overlapping m-bit patterns and measures how far their
// frequencies drift from the uniform distribution.
type SerialTest struct{}

// NewSerialTest creates a new serial pattern test
func NewSerialTest() *SerialTest {
	return &SerialTest{}
}

func (t *SerialTest) ID() core.TestID {
	return TestSerial
}

func (t *SerialTest) Description() string {
	return "Serial test: chi-square discrepancy of overlapping m-bit pattern frequencies from uniform"
}

func (t *SerialTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	m := params.SerialBlock
	if m < 1 {
		m = 2
	}
	bits := ds.Bits()
	n := len(bits)
	if n < m+1 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     fmt.Sprintf("need more than %d bits for %d-bit patterns; result is maximally uncertain", m, m),
		}
	}

	patterns := 1 << uint(m)
	counts := make([]int, patterns)
	window := 0
	mask := patterns - 1
	for i := 0; i < n; i++ {
		window = ((window << 1) | int(bits[i])) & mask
		if i >= m-1 {
			counts[window]++
		}
	}

	total := n - m + 1
	expected := float64(total) / float64(patterns)
	chiSq := 0.0
	for _, c := range counts {
		diff := float64(c) - expected
		chiSq += diff * diff / expected
	}
	confidence := chiSquareSurvival(chiSq, float64(patterns-1))

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  chiSq,
		Detail:     fmt.Sprintf("chi-square %.2f across %d overlapping %d-bit patterns", chiSq, total, m),
	}
}
