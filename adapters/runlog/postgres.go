package runlog

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"randomcheck/domain/core"
	"randomcheck/ports"
)

// PostgresLedger stores run history in a table, trimming to the retention
// bound after each append so the table mirrors the file ledger's semantics.
type PostgresLedger struct {
	db        *sqlx.DB
	retention int
}

// NewPostgresLedger connects to the database and ensures the history table
// exists.
func NewPostgresLedger(url string, retention int) (*PostgresLedger, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("connecting run ledger database: %w", err)
	}
	ledger := &PostgresLedger{db: db, retention: retention}
	if err := ledger.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return ledger, nil
}

func (l *PostgresLedger) migrate() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS run_history (
			id BIGSERIAL PRIMARY KEY,
			run_id TEXT NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL,
			input_file TEXT NOT NULL,
			result TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			report_path TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("creating run_history table: %w", err)
	}
	return nil
}

// Append inserts the record and deletes rows beyond the retention bound.
func (l *PostgresLedger) Append(ctx context.Context, record ports.RunRecord) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO run_history (run_id, recorded_at, input_file, result, confidence, report_path)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, record.RunID.String(), record.Timestamp.Time(), record.InputName, record.Verdict, record.Confidence, record.ReportPath)
	if err != nil {
		return fmt.Errorf("appending run record: %w", err)
	}
	_, err = l.db.ExecContext(ctx, `
		DELETE FROM run_history
		WHERE id NOT IN (SELECT id FROM run_history ORDER BY id DESC LIMIT $1)
	`, l.retention)
	if err != nil {
		return fmt.Errorf("trimming run history: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest last.
func (l *PostgresLedger) Recent(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	if limit <= 0 {
		limit = l.retention
	}
	var rows []struct {
		RunID      string    `db:"run_id"`
		RecordedAt time.Time `db:"recorded_at"`
		InputFile  string    `db:"input_file"`
		Result     string    `db:"result"`
		Confidence float64   `db:"confidence"`
		ReportPath string    `db:"report_path"`
	}
	err := l.db.SelectContext(ctx, &rows, `
		SELECT run_id, recorded_at, input_file, result, confidence, report_path
		FROM run_history
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	records := make([]ports.RunRecord, len(rows))
	for i, row := range rows {
		// Reverse so callers see oldest first, matching the file ledger.
		records[len(rows)-1-i] = ports.RunRecord{
			RunID:      core.RunID(row.RunID),
			Timestamp:  core.NewTimestamp(row.RecordedAt),
			InputName:  row.InputFile,
			Verdict:    row.Result,
			Confidence: row.Confidence,
			ReportPath: row.ReportPath,
		}
	}
	return records, nil
}

// Close releases the database connection.
func (l *PostgresLedger) Close() error {
	return l.db.Close()
}
