package classify

import (
	"errors"
	"testing"

	"randomcheck/domain/core"
	"randomcheck/domain/sample"
	"randomcheck/domain/verdict"
)

func TestClassify_Kinds(t *testing.T) {
	cases := []struct {
		raw  string
		kind sample.DataKind
	}{
		{"42", sample.KindNumeric},
		{"-7", sample.KindNumeric},
		{"3.14", sample.KindNumeric},
		{"1e3", sample.KindNumeric},
		{"a", sample.KindChar},
		{"€", sample.KindChar},
		{"hello", sample.KindString},
		{"12ab", sample.KindString},
	}

	for _, tc := range cases {
		ds, err := Classify([]string{tc.raw})
		if err != nil {
			t.Fatalf("Classify(%q): %v", tc.raw, err)
		}
		if got := ds.Entries()[0].Kind; got != tc.kind {
			t.Errorf("Classify(%q): expected %s, got %s", tc.raw, tc.kind, got)
		}
	}
}

func TestClassify_NumericPrecedence(t *testing.T) {
	// Single digits parse as numbers, not chars.
	ds, err := Classify([]string{"5"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	e := ds.Entries()[0]
	if e.Kind != sample.KindNumeric || !e.IsInt || e.Int != 5 {
		t.Errorf("expected integer numeric 5, got kind=%s isInt=%v int=%d", e.Kind, e.IsInt, e.Int)
	}
}

func TestClassify_SkipsBlankLines(t *testing.T) {
	ds, err := Classify([]string{"1", "", "  ", "\t", "2"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("expected 2 entries after skipping blanks, got %d", ds.Len())
	}
}

func TestClassify_TrimsWhitespace(t *testing.T) {
	ds, err := Classify([]string{"  42  "})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if ds.Entries()[0].Raw != "42" {
		t.Errorf("expected trimmed raw value, got %q", ds.Entries()[0].Raw)
	}
}

func TestClassify_EmptyDataset(t *testing.T) {
	for _, lines := range [][]string{nil, {}, {"", "   "}} {
		if _, err := Classify(lines); !errors.Is(err, core.ErrEmptyDataset) {
			t.Errorf("Classify(%q): expected ErrEmptyDataset, got %v", lines, err)
		}
	}
}

func TestClassify_MixedKinds(t *testing.T) {
	ds, err := Classify([]string{"42", "x", "word"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !ds.Mixed() {
		t.Error("expected mixed dataset")
	}
	for _, kind := range []sample.DataKind{sample.KindNumeric, sample.KindChar, sample.KindString} {
		if !ds.HasKind(kind) {
			t.Errorf("expected dataset to contain %s entries", kind)
		}
	}
}

func TestValidateRequiredKinds_SomeApplicable(t *testing.T) {
	ds, err := Classify([]string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	specs := []verdict.TestSpec{
		{ID: "entropy", Enabled: true, Weight: 0.5},
		{ID: "kolmogorov_smirnov", Enabled: true, Weight: 0.5, Kinds: []sample.DataKind{sample.KindNumeric}},
	}

	// One inapplicable test is tolerated while another can still run.
	if err := ValidateRequiredKinds(ds, specs); err != nil {
		t.Errorf("expected no error while another test is applicable, got %v", err)
	}
}

func TestValidateRequiredKinds_NoneApplicable(t *testing.T) {
	ds, err := Classify([]string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	specs := []verdict.TestSpec{
		{ID: "kolmogorov_smirnov", Enabled: true, Weight: 1, Kinds: []sample.DataKind{sample.KindNumeric}},
	}

	err = ValidateRequiredKinds(ds, specs)
	if !errors.Is(err, core.ErrKindUnavailable) {
		t.Errorf("expected ErrKindUnavailable, got %v", err)
	}
}
