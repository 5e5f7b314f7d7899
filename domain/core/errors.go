package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Classification errors
	ErrClassification  = errors.New("classification failed")
	ErrEmptyDataset    = fmt.Errorf("%w: no non-empty entries", ErrClassification)
	ErrKindUnavailable = fmt.Errorf("%w: required data kind absent", ErrClassification)

	// Configuration errors
	ErrConfiguration  = errors.New("invalid configuration")
	ErrUnknownTest    = fmt.Errorf("%w: unknown test identifier", ErrConfiguration)
	ErrInvalidWeight  = fmt.Errorf("%w: invalid test weight", ErrConfiguration)
	ErrNoTestsEnabled = fmt.Errorf("%w: no tests enabled", ErrConfiguration)

	// Aggregation errors
	ErrAggregation          = errors.New("aggregation failed")
	ErrNoApplicableOutcomes = fmt.Errorf("%w: no applicable outcomes", ErrAggregation)
	ErrZeroTotalWeight      = fmt.Errorf("%w: enabled applicable weights sum to zero", ErrAggregation)

	// Input errors
	ErrMissingFile   = errors.New("input file not found")
	ErrInputTooLarge = errors.New("input exceeds entry limit")
)

// Error constructors with context
func NewClassificationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrClassification, reason)
}

func NewUnknownTestError(testID string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTest, testID)
}

func NewInvalidWeightError(testID string, weight float64) error {
	return fmt.Errorf("%w: test %q has weight %v", ErrInvalidWeight, testID, weight)
}

func NewMissingWeightError(testID string) error {
	return fmt.Errorf("%w: no weight provided for enabled test %q", ErrInvalidWeight, testID)
}

func NewKindUnavailableError(testID, kind string) error {
	return fmt.Errorf("%w: test %q requires %s entries", ErrKindUnavailable, testID, kind)
}

// Error checking helpers
func IsClassificationError(err error) bool {
	return errors.Is(err, ErrClassification)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsAggregationError(err error) bool {
	return errors.Is(err, ErrAggregation)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingFile) || errors.Is(err, ErrInputTooLarge)
}
