// Package runlog persists the bounded per-run history.
package runlog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"randomcheck/domain/core"
	"randomcheck/ports"
)

// DefaultRetention matches the documented history bound of 100 runs.
const DefaultRetention = 100

var csvHeader = []string{"run_id", "timestamp", "input_file", "result", "confidence", "report_path"}

// FileLedger appends run records to a JSONL or CSV file and trims it to the
// retention bound after every append.
type FileLedger struct {
	path      string
	format    string // "jsonl" or "csv"
	retention int

	mu sync.Mutex
}

// NewFileLedger creates a file-backed ledger. Format must be jsonl or csv.
func NewFileLedger(path, format string, retention int) (*FileLedger, error) {
	if format != "jsonl" && format != "csv" {
		return nil, fmt.Errorf("%w: unsupported run log format %q", core.ErrConfiguration, format)
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &FileLedger{path: path, format: format, retention: retention}, nil
}

// Append writes the record and trims history to the last retention entries.
func (l *FileLedger) Append(ctx context.Context, record ports.RunRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("preparing run log dir: %w", err)
	}
	records, err := l.read()
	if err != nil {
		return err
	}
	records = append(records, record)
	if len(records) > l.retention {
		records = records[len(records)-l.retention:]
	}
	return l.write(records)
}

// Recent returns up to limit records, newest last.
func (l *FileLedger) Recent(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

func (l *FileLedger) read() ([]ports.RunRecord, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading run log: %w", err)
	}
	if l.format == "jsonl" {
		return parseJSONL(data)
	}
	return parseCSV(data)
}

func (l *FileLedger) write(records []ports.RunRecord) error {
	var sb strings.Builder
	if l.format == "jsonl" {
		for _, r := range records {
			line, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("encoding run record: %w", err)
			}
			sb.Write(line)
			sb.WriteByte('\n')
		}
	} else {
		w := csv.NewWriter(&sb)
		if err := w.Write(csvHeader); err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				r.RunID.String(),
				r.Timestamp.UTCString(),
				r.InputName,
				r.Verdict,
				strconv.FormatFloat(r.Confidence, 'f', -1, 64),
				r.ReportPath,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	return os.WriteFile(l.path, []byte(sb.String()), 0o644)
}

func parseJSONL(data []byte) ([]ports.RunRecord, error) {
	var records []ports.RunRecord
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var r ports.RunRecord
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("decoding run log line: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}

func parseCSV(data []byte) ([]ports.RunRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decoding run log csv: %w", err)
	}
	var records []ports.RunRecord
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue // header or malformed row
		}
		ts, _ := time.Parse(time.RFC3339, row[1])
		conf, _ := strconv.ParseFloat(row[4], 64)
		records = append(records, ports.RunRecord{
			RunID:      core.RunID(row[0]),
			Timestamp:  core.NewTimestamp(ts),
			InputName:  row[2],
			Verdict:    row[3],
			Confidence: conf,
			ReportPath: row[5],
		})
	}
	return records, nil
}
