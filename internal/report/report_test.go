package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

func sampleResult() *verdict.EvaluationResult {
	return &verdict.EvaluationResult{
		RunID:             "0195-test-run",
		OverallVerdict:    verdict.VerdictNonRandom,
		OverallConfidence: 0.375,
		Threshold:         0.5,
		EntryCount:        9,
		DatasetKinds:      []sample.DataKind{sample.KindNumeric},
		Outcomes: []verdict.TestOutcome{
			{TestID: "monobit", Passed: false, Confidence: 0.01, Detail: "bit proportion far from one half"},
			{TestID: "entropy", Passed: true, Confidence: 0.98, Detail: "near-uniform symbol distribution"},
			{TestID: "kolmogorov_smirnov", NotApplicable: true, Confidence: 0.5, Detail: "requires numeric entries"},
		},
		Notes:     []string{"weights were normalized"},
		StartedAt: core.NewTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		Duration:  125 * time.Millisecond,
	}
}

func TestBuildMarkdown_Sections(t *testing.T) {
	md := BuildMarkdown(sampleResult(), Meta{
		InputPath:  "data/sample.txt",
		ConfigPath: "randomcheck.yaml",
		Skipped:    []verdict.TestSpec{{ID: "shannon"}},
	})

	assert.Contains(t, md, "# Randomness Checker Report")
	assert.Contains(t, md, "**Result:** NON-RANDOM")
	assert.Contains(t, md, "**Weighted confidence:** 37.50%")
	assert.Contains(t, md, "| monobit | 1.00 | FAIL |")
	assert.Contains(t, md, "| entropy | 98.00 | PASS |")
	assert.Contains(t, md, "| kolmogorov_smirnov | 50.00 | NOT APPLICABLE |")
	assert.Contains(t, md, "| shannon | - | SKIPPED |")
	assert.Contains(t, md, "data/sample.txt")
	assert.Contains(t, md, "weights were normalized")
}

func TestBuildHTML_RendersTable(t *testing.T) {
	out := BuildHTML(sampleResult(), Meta{})
	assert.Contains(t, string(out), "<table>")
	assert.Contains(t, string(out), "NON-RANDOM")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, sampleResult())
	assert.Equal(t, "Result: NON-RANDOM | Confidence: 37.5%\n", buf.String())
}

func TestPrintVerbose_PerTestBreakdown(t *testing.T) {
	var buf bytes.Buffer
	PrintVerbose(&buf, sampleResult())
	out := buf.String()
	assert.Contains(t, out, "monobit: FAIL")
	assert.Contains(t, out, "entropy: PASS")
	assert.Contains(t, out, "kolmogorov_smirnov: N/A")
	assert.Contains(t, out, "note: weights were normalized")
}

func TestResolvePath_SanitizesStem(t *testing.T) {
	ts := core.NewTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	path := ResolvePath("reports", "/tmp/my data (v2).txt", ts)
	assert.Equal(t, filepath.Join("reports", "my-data-v2-20250601-120000.md"), path)

	fallback := ResolvePath("reports", "///.txt", ts)
	assert.Equal(t, filepath.Join("reports", "analysis-20250601-120000.md"), fallback)
}

func TestWriteMarkdown_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.md")
	require.NoError(t, WriteMarkdown(sampleResult(), Meta{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "NON-RANDOM")
}
