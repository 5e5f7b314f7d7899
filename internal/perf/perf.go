// Package perf provides timing helpers for the CLI bench command.
package perf

import (
	"time"

	"github.com/montanaflynn/stats"

	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
	"randomcheck/internal/analysis"
	"randomcheck/internal/classify"
)

// Timing summarizes repeated measurements of one operation.
type Timing struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// Measure runs fn repeat times and summarizes the wall-clock durations.
func Measure(repeat int, fn func()) Timing {
	if repeat < 1 {
		repeat = 1
	}
	samples := make([]float64, repeat)
	for i := 0; i < repeat; i++ {
		start := time.Now()
		fn()
		samples[i] = float64(time.Since(start))
	}
	minimum, _ := stats.Min(samples)
	maximum, _ := stats.Max(samples)
	mean, _ := stats.Mean(samples)
	return Timing{
		Min:  time.Duration(minimum),
		Max:  time.Duration(maximum),
		Mean: time.Duration(mean),
	}
}

// MeasureClassification times the classifier on the given lines.
func MeasureClassification(lines []string, repeat int) Timing {
	return Measure(repeat, func() {
		_, _ = classify.Classify(lines)
	})
}

// MeasureAggregation times the weighted merge on prepared outcomes.
func MeasureAggregation(ds *sample.Dataset, outcomes []verdict.TestOutcome, specs []verdict.TestSpec, repeat int) Timing {
	return Measure(repeat, func() {
		_, _ = analysis.Aggregate(ds, outcomes, specs, analysis.Options{})
	})
}
