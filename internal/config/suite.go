package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"randomcheck/domain/core"
	"randomcheck/domain/verdict"
)

// Suite is the parsed test-suite configuration: which tests run, how their
// outcomes are weighted, and how the overall verdict is decided. The engine
// validates identifiers and weights against the catalog; this loader only
// handles the file format.
type Suite struct {
	Battery   verdict.SuiteConfig
	Threshold float64 // decision threshold for the RANDOM verdict
	Alpha     float64 // per-test pass cutoff
	Warnings  []string
}

type suiteOutput struct {
	ConfidenceThreshold *float64 `yaml:"confidence_threshold"`
	Alpha               *float64 `yaml:"alpha"`
}

// LoadSuiteFile reads and parses a YAML suite configuration.
func LoadSuiteFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingFile, path)
		}
		return nil, fmt.Errorf("reading suite config %s: %w", path, err)
	}
	return ParseSuite(data)
}

// ParseSuite parses the YAML document. The tests section is decoded through
// yaml.Node so the file's declaration order is preserved; that order is the
// reporting order for the whole run.
func ParseSuite(data []byte) (*Suite, error) {
	var doc struct {
		Tests   yaml.Node          `yaml:"tests"`
		Weights map[string]float64 `yaml:"weights"`
		Output  suiteOutput        `yaml:"output"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfiguration, err)
	}
	if doc.Tests.Kind == 0 {
		return nil, fmt.Errorf("%w: missing required tests section", core.ErrConfiguration)
	}
	if doc.Tests.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: tests section must be a mapping", core.ErrConfiguration)
	}

	suite := &Suite{
		Battery:   verdict.SuiteConfig{Weights: doc.Weights},
		Threshold: 0.5,
		Alpha:     0.01,
	}

	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(doc.Tests.Content); i += 2 {
		keyNode := doc.Tests.Content[i]
		valNode := doc.Tests.Content[i+1]
		var enabled bool
		if err := valNode.Decode(&enabled); err != nil {
			return nil, fmt.Errorf("%w: test %q must map to a boolean", core.ErrConfiguration, keyNode.Value)
		}
		suite.Battery.Tests = append(suite.Battery.Tests, verdict.Toggle{
			ID:      keyNode.Value,
			Enabled: enabled,
		})
	}

	if doc.Output.ConfidenceThreshold != nil {
		t := *doc.Output.ConfidenceThreshold
		if t < 0 || t > 1 || math.IsNaN(t) {
			return nil, fmt.Errorf("%w: confidence_threshold must be within [0,1]", core.ErrConfiguration)
		}
		suite.Threshold = t
	}
	if doc.Output.Alpha != nil {
		a := *doc.Output.Alpha
		if a < 0 || a > 1 || math.IsNaN(a) {
			return nil, fmt.Errorf("%w: alpha must be within [0,1]", core.ErrConfiguration)
		}
		suite.Alpha = a
	}

	suite.Warnings = append(suite.Warnings, normalizationWarnings(suite.Battery)...)
	return suite, nil
}

// normalizationWarnings records when enabled weights do not sum to one. The
// aggregator normalizes internally, so this is informational only.
func normalizationWarnings(cfg verdict.SuiteConfig) []string {
	total := 0.0
	counted := 0
	for _, toggle := range cfg.Tests {
		if !toggle.Enabled {
			continue
		}
		if w, ok := cfg.Weights[toggle.ID]; ok {
			total += w
			counted++
		}
	}
	if counted == 0 {
		return nil
	}
	if math.Abs(total-1.0) > 1e-9 {
		return []string{fmt.Sprintf("enabled test weights sum to %.4f, not 1.0; they are normalized during aggregation", total)}
	}
	return nil
}
