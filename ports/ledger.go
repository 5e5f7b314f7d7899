package ports

import (
	"context"

	"randomcheck/domain/core"
)

// RunRecord is one row of the bounded run history.
type RunRecord struct {
	RunID      core.RunID     `json:"run_id" db:"run_id"`
	Timestamp  core.Timestamp `json:"timestamp" db:"timestamp"`
	InputName  string         `json:"input_file" db:"input_file"`
	Verdict    string         `json:"result" db:"result"`
	Confidence float64        `json:"confidence" db:"confidence"`
	ReportPath string         `json:"report_path" db:"report_path"`
}

// RunLedgerPort records one entry per evaluation run and enforces the
// configured retention. Entirely outside the engine's responsibility.
type RunLedgerPort interface {
	Append(ctx context.Context, record RunRecord) error
	Recent(ctx context.Context, limit int) ([]RunRecord, error)
}
