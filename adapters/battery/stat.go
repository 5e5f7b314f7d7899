package battery

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// clamp01 keeps probabilities inside [0,1]; the distribution survival
// functions can drift a few ulps outside under extreme statistics.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// twoSidedNormalP returns the two-sided tail probability of a standard
// normal statistic.
func twoSidedNormalP(z float64) float64 {
	return clamp01(2 * distuv.UnitNormal.Survival(math.Abs(z)))
}

// chiSquareSurvival returns P(X >= stat) for a chi-squared distribution with
// df degrees of freedom.
func chiSquareSurvival(stat float64, df float64) float64 {
	if df <= 0 || stat < 0 {
		return 1
	}
	dist := distuv.ChiSquared{K: df}
	return clamp01(dist.Survival(stat))
}
