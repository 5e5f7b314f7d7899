package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"randomcheck/adapters/runlog"
	"randomcheck/app"
	"randomcheck/internal/config"
	"randomcheck/internal/input"
	"randomcheck/internal/logging"
	"randomcheck/internal/perf"
	"randomcheck/internal/report"
	"randomcheck/ports"
	"randomcheck/ui"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "randomcheck",
		Short: "Evaluate whether a sequence of values exhibits statistical randomness",
	}
	rootCmd.AddCommand(
		newEvaluateCmd(),
		newServeCmd(),
		newHistoryCmd(),
		newBenchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, *app.Service, ports.RunLedgerPort, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log := logging.NewDefault()

	var ledger ports.RunLedgerPort
	if cfg.Runs.PostgresURL != "" {
		pg, err := runlog.NewPostgresLedger(cfg.Runs.PostgresURL, cfg.Runs.Retention)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		ledger = pg
	} else {
		file, err := runlog.NewFileLedger(cfg.Runs.LogPath, cfg.Runs.LogFormat, cfg.Runs.Retention)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		ledger = file
	}

	return cfg, app.NewService(cfg, ledger, log), ledger, log, nil
}

func newEvaluateCmd() *cobra.Command {
	var configPath string
	var verbose bool
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "evaluate [input-file]",
		Short: "Run the configured test battery against an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, _, _, err := bootstrap()
			if err != nil {
				return err
			}
			suite, err := config.LoadSuiteFile(configPath)
			if err != nil {
				return err
			}

			summary, err := service.EvaluateFile(cmd.Context(), args[0], suite)
			if err != nil {
				return err
			}
			summary.Meta.ConfigPath = configPath

			if verbose {
				report.PrintVerbose(os.Stdout, summary.Result)
			} else {
				report.PrintSummary(os.Stdout, summary.Result)
			}
			fmt.Printf("Report written to %s\n", summary.ReportPath)

			if xlsxPath != "" {
				if err := report.WriteWorkbook(summary.Result, summary.Meta, xlsxPath); err != nil {
					return err
				}
				fmt.Printf("Workbook written to %s\n", xlsxPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "randomcheck.yaml", "suite configuration file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the per-test breakdown")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also export the result as an xlsx workbook")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, service, ledger, log, err := bootstrap()
			if err != nil {
				return err
			}
			server := ui.NewServer(service, ledger, log)
			return server.ListenAndServe(cfg.Server.Port)
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent evaluation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, ledger, _, err := bootstrap()
			if err != nil {
				return err
			}
			records, err := ledger.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s  %-10s %6.1f%%  %s\n",
					r.Timestamp.UTCString(), r.Verdict, r.Confidence*100, r.InputName)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum records to show")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench [input-file]",
		Short: "Benchmark classification on an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, _, err := bootstrap()
			if err != nil {
				return err
			}
			lines, err := input.ReadLines(args[0], cfg.Engine.MaxEntries)
			if err != nil {
				return err
			}
			timing := perf.MeasureClassification(lines, repeat)
			fmt.Printf("classification over %d lines (x%d): min %s, mean %s, max %s\n",
				len(lines), repeat, timing.Min, timing.Mean, timing.Max)
			return nil
		},
	}
	cmd.Flags().IntVarP(&repeat, "repeat", "r", 5, "number of repetitions")
	return cmd
}
