package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"randomcheck/domain/verdict"
)

// WriteWorkbook exports the result as an xlsx workbook with a summary sheet
// and the per-test table.
func WriteWorkbook(result *verdict.EvaluationResult, meta Meta, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Run ID", result.RunID.String()},
		{"Result", string(result.OverallVerdict)},
		{"Weighted confidence (%)", result.OverallConfidence * 100},
		{"Threshold (%)", result.Threshold * 100},
		{"Entries", result.EntryCount},
		{"Data kinds", kindList(result.DatasetKinds)},
		{"Input file", meta.InputPath},
		{"Generated", result.StartedAt.UTCString()},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	tests := "Tests"
	if _, err := f.NewSheet(tests); err != nil {
		return fmt.Errorf("creating tests sheet: %w", err)
	}
	header := []interface{}{"Test", "Confidence (%)", "Statistic", "Outcome", "Detail"}
	if err := f.SetSheetRow(tests, "A1", &header); err != nil {
		return fmt.Errorf("writing tests header: %w", err)
	}
	for i, o := range result.Outcomes {
		outcome := "PASS"
		switch {
		case o.NotApplicable:
			outcome = "NOT APPLICABLE"
		case !o.Passed:
			outcome = "FAIL"
		}
		row := []interface{}{o.TestID.String(), o.Confidence * 100, o.Statistic, outcome, o.Detail}
		if err := f.SetSheetRow(tests, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("writing test row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
