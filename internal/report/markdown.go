package report

import (
	"fmt"
	"strings"
	"time"

	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// Meta carries run context the result itself does not know about.
type Meta struct {
	InputPath  string
	ConfigPath string
	Warnings   []string
	Skipped    []verdict.TestSpec // disabled specs, shown as skipped rows
}

// BuildMarkdown renders the full markdown report.
func BuildMarkdown(result *verdict.EvaluationResult, meta Meta) string {
	var b strings.Builder

	b.WriteString("# Randomness Checker Report\n\n")

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Result:** %s\n", result.OverallVerdict)
	fmt.Fprintf(&b, "- **Weighted confidence:** %.2f%%\n", result.OverallConfidence*100)
	fmt.Fprintf(&b, "- **Confidence threshold:** %.2f%%\n\n", result.Threshold*100)

	b.WriteString("## Run Metadata\n")
	fmt.Fprintf(&b, "- **Run ID:** %s\n", result.RunID)
	if meta.InputPath != "" {
		fmt.Fprintf(&b, "- **Input file:** %s\n", meta.InputPath)
	}
	if meta.ConfigPath != "" {
		fmt.Fprintf(&b, "- **Configuration:** %s\n", meta.ConfigPath)
	}
	fmt.Fprintf(&b, "- **Total entries:** %d\n", result.EntryCount)
	fmt.Fprintf(&b, "- **Data kinds:** %s\n\n", kindList(result.DatasetKinds))

	b.WriteString("## Test Results\n")
	b.WriteString("| Test | Confidence (%) | Outcome |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, o := range result.Outcomes {
		outcome := "PASS"
		switch {
		case o.NotApplicable:
			outcome = "NOT APPLICABLE"
		case !o.Passed:
			outcome = "FAIL"
		}
		fmt.Fprintf(&b, "| %s | %.2f | %s |\n", o.TestID, o.Confidence*100, outcome)
	}
	for _, spec := range meta.Skipped {
		fmt.Fprintf(&b, "| %s | - | SKIPPED |\n", spec.ID)
	}
	b.WriteString("\n")

	notes := collectNotes(result, meta)
	b.WriteString("## Interpretations\n")
	if len(notes) == 0 {
		b.WriteString("- No additional interpretations were recorded.\n")
	}
	for _, note := range notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}
	b.WriteString("\n### Details\n")
	for _, o := range result.Outcomes {
		if o.Detail == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", o.TestID, o.Detail)
	}

	fmt.Fprintf(&b, "\n_Generated on %s (duration: %s)._\n",
		result.StartedAt.UTCString(), formatDuration(result.Duration))
	return b.String()
}

func collectNotes(result *verdict.EvaluationResult, meta Meta) []string {
	var notes []string
	notes = append(notes, meta.Warnings...)
	notes = append(notes, result.Notes...)
	for _, o := range result.Outcomes {
		notes = append(notes, o.Notes...)
	}
	return notes
}

func kindList(kinds []sample.DataKind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}
