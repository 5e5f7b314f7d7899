// Package analysis merges per-test outcomes into one weighted verdict.
package analysis

import (
	"math"
	"time"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// MixedDataNote is attached to results for heterogeneous datasets so reports
// can explain why the overall confidence stays conservative.
const MixedDataNote = "input mixes data kinds; weighted signals are retained so the overall confidence remains conservative"

// DefaultThreshold is the decision threshold applied when none is configured.
const DefaultThreshold = 0.5

// Options controls a single aggregation.
type Options struct {
	Threshold float64     // decision threshold; zero means DefaultThreshold
	Backend   StatBackend // nil means the vectorized backend
	RunID     core.RunID  // zero means a fresh id is generated
	StartedAt core.Timestamp
	Duration  time.Duration
}

// Aggregate merges the battery's outcomes into an EvaluationResult.
//
// Outcomes are filtered to those whose spec is enabled and applicable and
// which are not marked not-applicable; excluded outcomes contribute neither
// to the confidence sum nor to the weight normalization denominator, but stay
// in the result for reporting. The verdict is conservative: RANDOM requires
// the weighted confidence to exceed the threshold strictly AND a strict
// weighted majority of passing tests. Equality on either signal resolves to
// NON-RANDOM.
func Aggregate(ds *sample.Dataset, outcomes []verdict.TestOutcome, specs []verdict.TestSpec, opts Options) (*verdict.EvaluationResult, error) {
	backend := opts.Backend
	if backend == nil {
		backend = VectorBackend{}
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	specByID := make(map[core.TestID]verdict.TestSpec, len(specs))
	for _, s := range specs {
		specByID[s.ID] = s
	}

	var confidences, weights []float64
	passWeight := 0.0
	for _, o := range outcomes {
		spec, ok := specByID[o.TestID]
		if !ok || !spec.Enabled || o.NotApplicable || !spec.Applicable(ds) {
			continue
		}
		confidences = append(confidences, clamp01(o.Confidence))
		weights = append(weights, spec.Weight)
		if o.Passed {
			passWeight += spec.Weight
		}
	}
	if len(confidences) == 0 {
		return nil, core.ErrNoApplicableOutcomes
	}

	totalWeight := backend.Sum(weights)
	if totalWeight <= 0 {
		return nil, core.ErrZeroTotalWeight
	}

	confidence := clamp01(backend.Dot(confidences, weights) / totalWeight)
	passShare := passWeight / totalWeight

	overall := verdict.VerdictNonRandom
	if confidence > threshold && passShare > 0.5 {
		overall = verdict.VerdictRandom
	}

	runID := opts.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}

	result := &verdict.EvaluationResult{
		RunID:             runID,
		OverallVerdict:    overall,
		OverallConfidence: confidence,
		Outcomes:          outcomes,
		EntryCount:        ds.Len(),
		DatasetKinds:      ds.Kinds(),
		Threshold:         threshold,
		StartedAt:         opts.StartedAt,
		Duration:          opts.Duration,
	}
	if ds.Mixed() {
		result.Notes = append(result.Notes, MixedDataNote)
	}
	return result, nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
