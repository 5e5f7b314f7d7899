package battery

import (
	"context"
	"testing"

	"randomcheck/internal/classify"
	"randomcheck/internal/testkit"
)

func BenchmarkEngineRun(b *testing.B) {
	ds, err := classify.Classify(testkit.UniformNumbers(1, 10000, 1000000))
	if err != nil {
		b.Fatal(err)
	}
	engine := NewEngine()
	specs := enabledSpecs(TestMonobit, TestRuns, TestSerial, TestEntropy, TestShannon, TestChiSquare, TestKolmogorovSmirnov, TestAutocorrelation)
	params := DefaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Run(context.Background(), ds, specs, params); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMonobit(b *testing.B) {
	ds, err := classify.Classify(testkit.UniformNumbers(2, 10000, 1000000))
	if err != nil {
		b.Fatal(err)
	}
	test := NewMonobitTest()
	params := DefaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		test.Evaluate(context.Background(), ds, params)
	}
}
