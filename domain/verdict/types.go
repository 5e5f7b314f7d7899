package verdict

import (
	"time"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
)

// Verdict is the overall judgment on a dataset
type Verdict string

const (
	VerdictRandom    Verdict = "RANDOM"
	VerdictNonRandom Verdict = "NON-RANDOM"
)

// Toggle is one ordered entry of the configuration's tests section.
type Toggle struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// SuiteConfig is the structured two-section configuration the registry
// validates: which tests run, and how their outcomes are weighted. The raw
// file format is the config collaborator's concern.
type SuiteConfig struct {
	Tests   []Toggle           `json:"tests"`
	Weights map[string]float64 `json:"weights"`
}

// TestSpec describes one configured test: identity, whether it runs, and how
// much its outcome contributes to the overall confidence. Disabled tests keep
// their spec (weight treated as zero) so reports can show them as skipped.
type TestSpec struct {
	ID      core.TestID       `json:"id"`
	Enabled bool              `json:"enabled"`
	Weight  float64           `json:"weight"`
	Kinds   []sample.DataKind `json:"kinds,omitempty"` // nil means applicable to every kind
}

// Applicable reports whether the spec's kind requirements are satisfiable by
// the dataset. A spec with no declared kinds accepts every dataset.
func (s TestSpec) Applicable(ds *sample.Dataset) bool {
	if len(s.Kinds) == 0 {
		return true
	}
	for _, kind := range s.Kinds {
		if ds.HasKind(kind) {
			return true
		}
	}
	return false
}

// TestOutcome is the normalized result of one statistical test. Confidence is
// always confidence that the data is random, in [0,1]. Produced once per run
// by a single evaluator and never mutated.
type TestOutcome struct {
	TestID        core.TestID `json:"test_id"`
	Passed        bool        `json:"passed"`
	Confidence    float64     `json:"confidence"`
	Statistic     float64     `json:"statistic"`
	Detail        string      `json:"detail"`
	NotApplicable bool        `json:"not_applicable,omitempty"`
	Notes         []string    `json:"notes,omitempty"`
}

// EvaluationResult is the terminal artifact of one evaluation run. Created by
// the aggregator; reporting and logging collaborators read it but never
// modify it. Outcomes keep the registry's resolved order.
type EvaluationResult struct {
	RunID             core.RunID        `json:"run_id"`
	OverallVerdict    Verdict           `json:"overall_verdict"`
	OverallConfidence float64           `json:"overall_confidence"`
	Outcomes          []TestOutcome     `json:"outcomes"`
	EntryCount        int               `json:"entry_count"`
	DatasetKinds      []sample.DataKind `json:"dataset_kinds"`
	Threshold         float64           `json:"threshold"`
	Notes             []string          `json:"notes,omitempty"`
	StartedAt         core.Timestamp    `json:"started_at"`
	Duration          time.Duration     `json:"duration"`
}

// IsRandom reports whether the overall verdict asserts randomness.
func (r *EvaluationResult) IsRandom() bool {
	return r.OverallVerdict == VerdictRandom
}

// Outcome returns the outcome for a test id, if present.
func (r *EvaluationResult) Outcome(id core.TestID) (TestOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.TestID == id {
			return o, true
		}
	}
	return TestOutcome{}, false
}
