package perf

import (
	"testing"

	"randomcheck/internal/testkit"
)

func TestMeasure(t *testing.T) {
	calls := 0
	timing := Measure(5, func() { calls++ })

	if calls != 5 {
		t.Errorf("expected 5 invocations, got %d", calls)
	}
	if timing.Min > timing.Mean || timing.Mean > timing.Max {
		t.Errorf("expected min <= mean <= max, got %v %v %v", timing.Min, timing.Mean, timing.Max)
	}
}

func TestMeasure_ClampsRepeat(t *testing.T) {
	calls := 0
	Measure(0, func() { calls++ })
	if calls != 1 {
		t.Errorf("expected one invocation for non-positive repeat, got %d", calls)
	}
}

func TestMeasureClassification(t *testing.T) {
	timing := MeasureClassification(testkit.UniformNumbers(1, 100, 1000), 3)
	if timing.Mean <= 0 {
		t.Errorf("expected positive mean duration, got %v", timing.Mean)
	}
}
