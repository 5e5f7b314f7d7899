package battery

import (
	"context"
	"fmt"
	"math"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// RunsTest counts maximal runs of identical bits and compares the observed
// count to its expectation under the random-bit null hypothesis.
type RunsTest struct{}

// NewRunsTest creates a new runs test
func NewRunsTest() *RunsTest {
	return &RunsTest{}
}

func (t *RunsTest) ID() core.TestID {
	return TestRuns
}

func (t *RunsTest) Description() string {
	return "Runs test: number of maximal identical-bit runs versus expectation"
}

// Evaluate reads the bit proportion derived once at dataset construction.
// A degenerate proportion (all zeros or all ones) short-circuits to FAIL
// instead of dividing by zero; a proportion outside the NIST precondition
// band fails without computing the run statistic, since the frequency
// imbalance already rules out randomness at this test's sensitivity.
func (t *RunsTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	bits := ds.Bits()
	n := len(bits)
	if n < 2 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     "fewer than two bits; runs are undefined",
		}
	}

	pi := ds.BitProportion()
	if pi == 0 || pi == 1 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Passed:     false,
			Confidence: 0,
			Detail:     "all bits identical; sequence is certainly non-random at bit level",
		}
	}
	if math.Abs(pi-0.5) >= 2/math.Sqrt(float64(n)) {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Passed:     false,
			Confidence: 0,
			Statistic:  pi,
			Detail:     fmt.Sprintf("precondition failed: one-bit proportion %.4f too far from 0.5", pi),
		}
	}

	runs := 1
	for i := 1; i < n; i++ {
		if bits[i] != bits[i-1] {
			runs++
		}
	}
	nf := float64(n)
	expected := 2 * nf * pi * (1 - pi)
	z := math.Abs(float64(runs)-expected) / (2 * math.Sqrt(nf) * pi * (1 - pi))
	confidence := twoSidedNormalP(z)

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  float64(runs),
		Detail:     fmt.Sprintf("observed %d runs, expected %.2f over %d bits", runs, expected, n),
	}
}
