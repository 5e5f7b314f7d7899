package battery

import (
	"math"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// Catalog identifiers for the built-in tests.
const (
	TestMonobit           core.TestID = "monobit"
	TestRuns              core.TestID = "runs"
	TestSerial            core.TestID = "serial"
	TestEntropy           core.TestID = "entropy"
	TestShannon           core.TestID = "shannon"
	TestChiSquare         core.TestID = "chi_square"
	TestKolmogorovSmirnov core.TestID = "kolmogorov_smirnov"
	TestAutocorrelation   core.TestID = "autocorrelation"
)

func catalogOrder() []core.TestID {
	return []core.TestID{
		TestMonobit,
		TestRuns,
		TestSerial,
		TestEntropy,
		TestShannon,
		TestChiSquare,
		TestKolmogorovSmirnov,
		TestAutocorrelation,
	}
}

// requiredKinds maps tests that only apply to particular data kinds.
// Absent entries accept every kind.
var requiredKinds = map[core.TestID][]sample.DataKind{
	TestKolmogorovSmirnov: {sample.KindNumeric},
}

// Resolve validates the configuration against the catalog and returns one
// TestSpec per configured test, preserving configuration order. Unknown test
// identifiers and invalid weights fail with a configuration error instead of
// being ignored. Disabled tests are retained with weight zero so reporting
// can show them as skipped.
func Resolve(cfg verdict.SuiteConfig) ([]verdict.TestSpec, error) {
	known := map[core.TestID]bool{}
	for _, id := range catalogOrder() {
		known[id] = true
	}

	for id := range cfg.Weights {
		if !known[core.TestID(id)] {
			return nil, core.NewUnknownTestError(id)
		}
	}

	specs := make([]verdict.TestSpec, 0, len(cfg.Tests))
	enabled := 0
	for _, toggle := range cfg.Tests {
		id := core.TestID(toggle.ID)
		if !known[id] {
			return nil, core.NewUnknownTestError(toggle.ID)
		}
		spec := verdict.TestSpec{ID: id, Enabled: toggle.Enabled, Kinds: requiredKinds[id]}
		if toggle.Enabled {
			weight, ok := cfg.Weights[toggle.ID]
			if !ok {
				return nil, core.NewMissingWeightError(toggle.ID)
			}
			if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
				return nil, core.NewInvalidWeightError(toggle.ID, weight)
			}
			spec.Weight = weight
			enabled++
		}
		specs = append(specs, spec)
	}
	if enabled == 0 {
		return nil, core.ErrNoTestsEnabled
	}
	return specs, nil
}
