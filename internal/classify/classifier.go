// Package classify turns raw input lines into a typed, encoded dataset for
// the statistical battery.
package classify

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

// Classify inspects raw lines and assigns each one a data kind. Lines are
// trimmed first; lines that are blank after trimming are skipped rather than
// rejected. Inference order is fixed: numeric parse, then single character,
// then string token. Returns ErrEmptyDataset when nothing survives trimming.
func Classify(rawLines []string) (*sample.Dataset, error) {
	entries := make([]sample.Entry, 0, len(rawLines))
	for _, line := range rawLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		entries = append(entries, classifyEntry(trimmed))
	}
	if len(entries) == 0 {
		return nil, core.ErrEmptyDataset
	}
	return sample.NewDataset(entries), nil
}

func classifyEntry(trimmed string) sample.Entry {
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return sample.Entry{
			Raw:   trimmed,
			Kind:  sample.KindNumeric,
			Value: float64(i),
			IsInt: true,
			Int:   i,
		}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return sample.Entry{Raw: trimmed, Kind: sample.KindNumeric, Value: f}
	}
	if utf8.RuneCountInString(trimmed) == 1 {
		return sample.Entry{Raw: trimmed, Kind: sample.KindChar}
	}
	return sample.Entry{Raw: trimmed, Kind: sample.KindString}
}

// ValidateRequiredKinds surfaces a classification error when none of the
// enabled tests can run against the dataset's kinds. A single inapplicable
// test among applicable ones is not an error here: it is reported as a
// not-applicable outcome and excluded during aggregation instead.
func ValidateRequiredKinds(ds *sample.Dataset, specs []verdict.TestSpec) error {
	enabled := 0
	var firstUnsatisfied *verdict.TestSpec
	for i, spec := range specs {
		if !spec.Enabled {
			continue
		}
		enabled++
		if spec.Applicable(ds) {
			return nil
		}
		if firstUnsatisfied == nil {
			firstUnsatisfied = &specs[i]
		}
	}
	if enabled == 0 {
		return core.ErrNoTestsEnabled
	}
	return core.NewKindUnavailableError(firstUnsatisfied.ID.String(), string(firstUnsatisfied.Kinds[0]))
}
