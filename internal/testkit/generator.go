// Package testkit generates synthetic input sequences with known randomness
// characteristics for tests and benchmarks.
package testkit

import (
	"math/rand"
	"strconv"
)

// UniformNumbers returns n pseudo-random integers in [0, bound) rendered as
// decimal strings. A fixed seed keeps fixtures deterministic.
func UniformNumbers(seed int64, n, bound int) []string {
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strconv.Itoa(rng.Intn(bound))
	}
	return lines
}

// UniformFloats returns n pseudo-random floats in [0,1) as decimal strings.
func UniformFloats(seed int64, n int) []string {
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strconv.FormatFloat(rng.Float64(), 'f', 6, 64)
	}
	return lines
}

// ConstantLines returns n copies of the same value, a maximally non-random
// sequence.
func ConstantLines(value string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = value
	}
	return lines
}

// AlternatingBinary returns the perfectly periodic sequence 0,1,0,1,...
// It is balanced for monobit but strongly autocorrelated.
func AlternatingBinary(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strconv.Itoa(i % 2)
	}
	return lines
}

// RandomTokens returns n pseudo-random lowercase tokens of the given length.
func RandomTokens(seed int64, n, length int) []string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	buf := make([]byte, length)
	for i := range lines {
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		lines[i] = string(buf)
	}
	return lines
}
