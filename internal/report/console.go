// Package report renders EvaluationResults for humans: console summaries,
// markdown reports, HTML, and spreadsheet exports. Everything here is
// derived read-only from the result.
package report

import (
	"fmt"
	"io"

	"randomcheck/domain/verdict"
)

// PrintSummary writes the one-line verdict summary.
func PrintSummary(w io.Writer, result *verdict.EvaluationResult) {
	fmt.Fprintf(w, "Result: %s | Confidence: %.1f%%\n", result.OverallVerdict, result.OverallConfidence*100)
}

// PrintVerbose writes the summary followed by a per-test breakdown.
func PrintVerbose(w io.Writer, result *verdict.EvaluationResult) {
	PrintSummary(w, result)
	fmt.Fprintf(w, "Entries: %d | Kinds: %s\n", result.EntryCount, kindList(result.DatasetKinds))
	for _, o := range result.Outcomes {
		status := "PASS"
		switch {
		case o.NotApplicable:
			status = "N/A"
		case !o.Passed:
			status = "FAIL"
		}
		fmt.Fprintf(w, " - %s: %s (%.1f%%)\n", o.TestID, status, o.Confidence*100)
		if o.Detail != "" {
			fmt.Fprintf(w, "   %s\n", o.Detail)
		}
		for _, note := range o.Notes {
			fmt.Fprintf(w, "   note: %s\n", note)
		}
	}
	for _, note := range result.Notes {
		fmt.Fprintf(w, "note: %s\n", note)
	}
	fmt.Fprintf(w, "Threshold: %.2f%%\n", result.Threshold*100)
}
