package battery

import (
	"context"
	"strings"

	"golang.org/x/sync/semaphore"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// Params carries the tunable knobs shared by the evaluators.
type Params struct {
	Alpha       float64 // per-test pass cutoff: a test passes when confidence >= Alpha
	SerialBlock int     // pattern length m for the serial test
	AutocorrLag int     // lag k for the autocorrelation test
	MaxParallel int64   // concurrent evaluator limit, <=0 means sequential
}

// DefaultParams returns the conventional defaults (p >= 0.01 pass rule,
// 2-bit serial patterns, lag-1 autocorrelation).
func DefaultParams() Params {
	return Params{Alpha: 0.01, SerialBlock: 2, AutocorrLag: 1, MaxParallel: 4}
}

// RandomnessTest is implemented by each statistical evaluator. Evaluators are
// pure: they read only the dataset encodings they need and have no data
// dependency on each other, so the engine may run them concurrently.
type RandomnessTest interface {
	ID() core.TestID
	Description() string
	Evaluate(ctx context.Context, ds *sample.Dataset, params Params) verdict.TestOutcome
}

// Engine runs the configured battery against a dataset.
type Engine struct {
	tests map[core.TestID]RandomnessTest
}

// NewEngine creates an engine over the full built-in catalog.
func NewEngine() *Engine {
	e := &Engine{tests: make(map[core.TestID]RandomnessTest)}
	for _, t := range []RandomnessTest{
		NewMonobitTest(),
		NewRunsTest(),
		NewSerialTest(),
		NewEntropyTest(),
		NewShannonTest(),
		NewChiSquareTest(),
		NewKolmogorovSmirnovTest(),
		NewAutocorrelationTest(),
	} {
		e.tests[t.ID()] = t
	}
	return e
}

// Run evaluates every enabled spec against the dataset and returns one
// outcome per enabled spec, in spec order. Specs whose kind requirements the
// dataset cannot satisfy produce a not-applicable outcome without invoking
// the evaluator. Execution is fanned out on goroutines bounded by a weighted
// semaphore; ordering of the returned slice does not depend on scheduling.
func (e *Engine) Run(ctx context.Context, ds *sample.Dataset, specs []verdict.TestSpec, params Params) ([]verdict.TestOutcome, error) {
	type job struct {
		idx  int
		spec verdict.TestSpec
		test RandomnessTest
	}

	jobs := make([]job, 0, len(specs))
	outcomes := make([]verdict.TestOutcome, 0, len(specs))
	for _, spec := range specs {
		if !spec.Enabled {
			continue
		}
		test, ok := e.tests[spec.ID]
		if !ok {
			return nil, core.NewUnknownTestError(spec.ID.String())
		}
		if !spec.Applicable(ds) {
			outcomes = append(outcomes, notApplicableOutcome(spec))
			continue
		}
		outcomes = append(outcomes, verdict.TestOutcome{TestID: spec.ID})
		jobs = append(jobs, job{idx: len(outcomes) - 1, spec: spec, test: test})
	}

	limit := params.MaxParallel
	if limit <= 0 {
		limit = 1
	}
	sem := semaphore.NewWeighted(limit)

	type indexed struct {
		idx     int
		outcome verdict.TestOutcome
	}
	results := make(chan indexed, len(jobs))

	for _, j := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(j job) {
			defer sem.Release(1)
			results <- indexed{idx: j.idx, outcome: j.test.Evaluate(ctx, ds, params)}
		}(j)
	}
	for range jobs {
		res := <-results
		outcomes[res.idx] = res.outcome
	}
	return outcomes, nil
}

// ListTests returns the catalog identifiers in canonical order.
func (e *Engine) ListTests() []core.TestID {
	return catalogOrder()
}

func notApplicableOutcome(spec verdict.TestSpec) verdict.TestOutcome {
	kinds := make([]string, len(spec.Kinds))
	for i, k := range spec.Kinds {
		kinds[i] = string(k)
	}
	return verdict.TestOutcome{
		TestID:        spec.ID,
		NotApplicable: true,
		Detail:        "not applicable: dataset has no " + strings.Join(kinds, "/") + " entries",
	}
}
