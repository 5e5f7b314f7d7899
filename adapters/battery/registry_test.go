package battery

import (
	"testing"

	"randomcheck/domain/core"
	"randomcheck/domain/verdict"
)

func suiteConfig(weights map[string]float64, toggles ...verdict.Toggle) verdict.SuiteConfig {
	return verdict.SuiteConfig{Tests: toggles, Weights: weights}
}

func TestResolve_PreservesConfigurationOrder(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{"entropy": 0.5, "monobit": 0.3, "runs": 0.2},
		verdict.Toggle{ID: "entropy", Enabled: true},
		verdict.Toggle{ID: "monobit", Enabled: true},
		verdict.Toggle{ID: "runs", Enabled: true},
	)

	specs, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []core.TestID{TestEntropy, TestMonobit, TestRuns}
	if len(specs) != len(want) {
		t.Fatalf("expected %d specs, got %d", len(want), len(specs))
	}
	for i, id := range want {
		if specs[i].ID != id {
			t.Errorf("spec %d: expected %s, got %s", i, id, specs[i].ID)
		}
	}
}

func TestResolve_UnknownTestID(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{"xyz": 1},
		verdict.Toggle{ID: "xyz", Enabled: true},
	)

	_, err := Resolve(cfg)
	if err == nil {
		t.Fatal("expected error for unknown test id")
	}
	if !core.IsConfigurationError(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestResolve_UnknownWeightKey(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{"monobit": 0.5, "bogus": 0.5},
		verdict.Toggle{ID: "monobit", Enabled: true},
	)

	if _, err := Resolve(cfg); !core.IsConfigurationError(err) {
		t.Errorf("expected configuration error for unknown weight key, got %v", err)
	}
}

func TestResolve_RejectsNegativeWeight(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{"monobit": -0.5},
		verdict.Toggle{ID: "monobit", Enabled: true},
	)

	if _, err := Resolve(cfg); !core.IsConfigurationError(err) {
		t.Errorf("expected configuration error for negative weight, got %v", err)
	}
}

func TestResolve_MissingWeightForEnabledTest(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{},
		verdict.Toggle{ID: "runs", Enabled: true},
	)

	if _, err := Resolve(cfg); !core.IsConfigurationError(err) {
		t.Errorf("expected configuration error for missing weight, got %v", err)
	}
}

func TestResolve_DisabledTestKeptWithZeroWeight(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{"monobit": 1},
		verdict.Toggle{ID: "monobit", Enabled: true},
		verdict.Toggle{ID: "shannon", Enabled: false},
	)

	specs, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected both specs retained, got %d", len(specs))
	}
	if specs[1].Enabled || specs[1].Weight != 0 {
		t.Errorf("disabled spec should carry weight 0, got enabled=%v weight=%f", specs[1].Enabled, specs[1].Weight)
	}
}

func TestResolve_AllDisabled(t *testing.T) {
	cfg := suiteConfig(
		map[string]float64{},
		verdict.Toggle{ID: "monobit", Enabled: false},
	)

	if _, err := Resolve(cfg); err != core.ErrNoTestsEnabled {
		t.Errorf("expected ErrNoTestsEnabled, got %v", err)
	}
}
