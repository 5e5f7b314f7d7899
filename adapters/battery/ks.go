package battery

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// KolmogorovSmirnovTest compares the empirical CDF of the numeric entries to
// a uniform distribution over the observed value range. Only meaningful for
// all-numeric datasets; anything else yields a not-applicable outcome rather
// than a coerced result.
type KolmogorovSmirnovTest struct{}

// NewKolmogorovSmirnovTest creates a new KS uniformity test
func NewKolmogorovSmirnovTest() *KolmogorovSmirnovTest {
	return &KolmogorovSmirnovTest{}
}

func (t *KolmogorovSmirnovTest) ID() core.TestID {
	return TestKolmogorovSmirnov
}

func (t *KolmogorovSmirnovTest) Description() string {
	return "Kolmogorov-Smirnov distance between the numeric ECDF and the uniform CDF"
}

func (t *KolmogorovSmirnovTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	values := ds.NumericValues()
	if values == nil {
		return verdict.TestOutcome{
			TestID:        t.ID(),
			NotApplicable: true,
			Detail:        "not applicable: dataset is not purely numeric",
		}
	}
	n := len(values)
	if n < 2 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     "fewer than two numeric entries; ECDF comparison is uninformative",
		}
	}

	minimum, _ := stats.Min(values)
	maximum, _ := stats.Max(values)
	if maximum-minimum < 1e-12 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Passed:     false,
			Confidence: 0,
			Detail:     "all numeric values identical; KS distance is undefined",
		}
	}

	scaled := make([]float64, n)
	for i, v := range values {
		scaled[i] = (v - minimum) / (maximum - minimum)
	}
	sort.Float64s(scaled)

	maxDiff := 0.0
	for i, v := range scaled {
		upper := math.Abs(float64(i+1)/float64(n) - v)
		lower := math.Abs(float64(i)/float64(n) - v)
		maxDiff = math.Max(maxDiff, math.Max(upper, lower))
	}
	statistic := math.Sqrt(float64(n)) * maxDiff
	// First term of the Kolmogorov distribution series; adequate for scoring.
	confidence := clamp01(2 * math.Exp(-2*statistic*statistic))

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  statistic,
		Detail:     fmt.Sprintf("KS statistic %.3f (max ECDF distance %.3f) on %d values", statistic, maxDiff, n),
	}
}
