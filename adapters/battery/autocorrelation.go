package battery

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// AutocorrelationTest measures lag-k serial correlation. Purely numeric
// datasets are correlated on their values; everything else falls back to the
// canonical bit sequence.
type AutocorrelationTest struct{}

// NewAutocorrelationTest creates a new lag-k autocorrelation test
func NewAutocorrelationTest() *AutocorrelationTest {
	return &AutocorrelationTest{}
}

func (t *AutocorrelationTest) ID() core.TestID {
	return TestAutocorrelation
}

func (t *AutocorrelationTest) Description() string {
	return "Lag-k autocorrelation of the value or bit sequence"
}

func (t *AutocorrelationTest) Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome {
	lag := params.AutocorrLag
	if lag < 1 {
		lag = 1
	}

	series := ds.NumericValues()
	source := "numeric values"
	if series == nil {
		bits := ds.Bits()
		series = make([]float64, len(bits))
		for i, b := range bits {
			series[i] = float64(b)
		}
		source = "bit sequence"
	}

	n := len(series)
	if n < lag+2 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Confidence: 0.5,
			Detail:     fmt.Sprintf("too few samples for lag-%d autocorrelation; result is maximally uncertain", lag),
		}
	}

	mean, _ := stats.Mean(series)
	variance, _ := stats.PopulationVariance(series)
	if variance == 0 {
		return verdict.TestOutcome{
			TestID:     t.ID(),
			Passed:     false,
			Confidence: 0,
			Detail:     "zero variance; all samples identical",
		}
	}

	numerator := 0.0
	for i := 0; i+lag < n; i++ {
		numerator += (series[i] - mean) * (series[i+lag] - mean)
	}
	r := numerator / (float64(n-lag) * variance)
	statistic := math.Abs(r) * math.Sqrt(float64(n-lag))
	confidence := twoSidedNormalP(statistic)

	return verdict.TestOutcome{
		TestID:     t.ID(),
		Passed:     confidence >= params.Alpha,
		Confidence: confidence,
		Statistic:  r,
		Detail:     fmt.Sprintf("lag-%d autocorrelation %.4f over %s (%d samples)", lag, r, source, n),
	}
}
