package ports

import (
	"context"

	"randomcheck/domain/verdict"
)

// EvaluationRequest captures one engine invocation: the raw entry lines plus
// the structured suite configuration.
type EvaluationRequest struct {
	InputName string
	Lines     []string
	Suite     verdict.SuiteConfig
	Threshold float64 // zero means the configured default
	Alpha     float64 // zero means the configured default
}

// EvaluatorPort runs the classification, battery, and aggregation pipeline.
type EvaluatorPort interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (*verdict.EvaluationResult, error)
}
