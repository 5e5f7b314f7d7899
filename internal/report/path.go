package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"randomcheck/domain/core"
	"randomcheck/domain/verdict"
)

var unsafeStem = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// ResolvePath derives the markdown report location for a run: a sanitized
// input stem plus a UTC timestamp under dir.
func ResolvePath(dir, inputPath string, startedAt core.Timestamp) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stem = strings.Trim(unsafeStem.ReplaceAllString(stem, "-"), "-")
	if stem == "" {
		stem = "analysis"
	}
	ts := startedAt.Time().UTC().Format("20060102-150405")
	return filepath.Join(dir, stem+"-"+ts+".md")
}

// WriteMarkdown renders the report and persists it at path, creating parent
// directories as needed.
func WriteMarkdown(result *verdict.EvaluationResult, meta Meta, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("preparing report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(BuildMarkdown(result, meta)), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
