// Package app wires the classifier, battery, and aggregator into complete
// evaluation runs and hands results to the reporting and ledger
// collaborators.
package app

import (
	"context"
	"time"

	"randomcheck/adapters/battery"
	"randomcheck/domain/core"
	"randomcheck/domain/verdict"
	"randomcheck/internal/analysis"
	"randomcheck/internal/classify"
	"randomcheck/internal/config"
	"randomcheck/internal/input"
	"randomcheck/internal/logging"
	"randomcheck/internal/report"
	"randomcheck/ports"
)

// Service runs evaluations. It holds no per-run state; concurrent runs are
// safe because every run's data lives on its own stack.
type Service struct {
	engine  *battery.Engine
	backend analysis.StatBackend
	ledger  ports.RunLedgerPort // optional
	log     *logging.Logger
	cfg     *config.Config
}

// NewService creates a service from the application configuration. The
// ledger may be nil when run history is disabled.
func NewService(cfg *config.Config, ledger ports.RunLedgerPort, log *logging.Logger) *Service {
	return &Service{
		engine:  battery.NewEngine(),
		backend: analysis.SelectBackend(cfg.Engine.Backend),
		ledger:  ledger,
		log:     log,
		cfg:     cfg,
	}
}

// Evaluate runs the full pipeline on raw lines: resolve the suite, classify,
// run the battery, aggregate. Configuration errors surface before any test
// executes.
func (s *Service) Evaluate(ctx context.Context, req ports.EvaluationRequest) (*verdict.EvaluationResult, error) {
	started := core.Now()

	specs, err := battery.Resolve(req.Suite)
	if err != nil {
		return nil, err
	}
	ds, err := classify.Classify(req.Lines)
	if err != nil {
		return nil, err
	}
	if err := classify.ValidateRequiredKinds(ds, specs); err != nil {
		return nil, err
	}

	params := battery.DefaultParams()
	params.MaxParallel = s.cfg.Engine.MaxParallel
	if req.Alpha > 0 {
		params.Alpha = req.Alpha
	}

	outcomes, err := s.engine.Run(ctx, ds, specs, params)
	if err != nil {
		return nil, err
	}

	result, err := analysis.Aggregate(ds, outcomes, specs, analysis.Options{
		Threshold: req.Threshold,
		Backend:   s.backend,
		StartedAt: started,
		Duration:  time.Since(started.Time()),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("run %s: %s at %.1f%% confidence (%d entries)",
		result.RunID, result.OverallVerdict, result.OverallConfidence*100, result.EntryCount)
	return result, nil
}

// RunSummary bundles everything a reporting surface needs about a finished
// file evaluation.
type RunSummary struct {
	Result     *verdict.EvaluationResult
	ReportPath string
	Meta       report.Meta
}

// EvaluateFile loads an input file, evaluates it against the suite, persists
// the markdown report, and records the run in the ledger.
func (s *Service) EvaluateFile(ctx context.Context, inputPath string, suite *config.Suite) (*RunSummary, error) {
	lines, err := input.ReadLines(inputPath, s.cfg.Engine.MaxEntries)
	if err != nil {
		return nil, err
	}

	result, err := s.Evaluate(ctx, ports.EvaluationRequest{
		InputName: inputPath,
		Lines:     lines,
		Suite:     suite.Battery,
		Threshold: suite.Threshold,
		Alpha:     suite.Alpha,
	})
	if err != nil {
		return nil, err
	}

	meta := report.Meta{
		InputPath: inputPath,
		Warnings:  suite.Warnings,
		Skipped:   skippedSpecs(suite.Battery),
	}
	reportPath := report.ResolvePath(s.cfg.Runs.ReportDir, inputPath, result.StartedAt)
	if err := report.WriteMarkdown(result, meta, reportPath); err != nil {
		return nil, err
	}

	if s.ledger != nil {
		record := ports.RunRecord{
			RunID:      result.RunID,
			Timestamp:  result.StartedAt,
			InputName:  inputPath,
			Verdict:    string(result.OverallVerdict),
			Confidence: result.OverallConfidence,
			ReportPath: reportPath,
		}
		if err := s.ledger.Append(ctx, record); err != nil {
			// History is best-effort; a full report already exists on disk.
			s.log.Warn("recording run history: %v", err)
		}
	}

	return &RunSummary{Result: result, ReportPath: reportPath, Meta: meta}, nil
}

func skippedSpecs(cfg verdict.SuiteConfig) []verdict.TestSpec {
	var skipped []verdict.TestSpec
	for _, toggle := range cfg.Tests {
		if !toggle.Enabled {
			skipped = append(skipped, verdict.TestSpec{ID: core.TestID(toggle.ID)})
		}
	}
	return skipped
}
