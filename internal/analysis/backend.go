package analysis

import (
	"gonum.org/v1/gonum/floats"
)

// StatBackend abstracts the low-level reductions the aggregator performs so
// a vectorized implementation can be swapped in at startup. Both
// implementations must agree within floating-point tolerance; the test suite
// verifies this equivalence.
type StatBackend interface {
	Name() string
	Sum(values []float64) float64
	Dot(x, y []float64) float64
}

// ScalarBackend is the plain-loop reference implementation.
type ScalarBackend struct{}

func (ScalarBackend) Name() string { return "scalar" }

func (ScalarBackend) Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func (ScalarBackend) Dot(x, y []float64) float64 {
	total := 0.0
	for i := range x {
		total += x[i] * y[i]
	}
	return total
}

// VectorBackend delegates to gonum's floats kernels.
type VectorBackend struct{}

func (VectorBackend) Name() string { return "vector" }

func (VectorBackend) Sum(values []float64) float64 {
	return floats.Sum(values)
}

func (VectorBackend) Dot(x, y []float64) float64 {
	return floats.Dot(x, y)
}

// SelectBackend resolves a backend by name, defaulting to the vectorized one.
func SelectBackend(name string) StatBackend {
	if name == "scalar" {
		return ScalarBackend{}
	}
	return VectorBackend{}
}
