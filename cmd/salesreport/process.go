package main

import (
	"fmt"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"monthly-sales-report/internal/config"
	"monthly-sales-report/internal/domain"
	"monthly-sales-report/internal/gateway"
	"monthly-sales-report/internal/layout"
	"monthly-sales-report/internal/logger"
	"monthly-sales-report/internal/usecase"
)

var log = logging.MustGetLogger("salesreport")

var (
	dryRun    bool
	onlyStore string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Generate the sales summary report from store extracts",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "run the pipeline without writing the report")
	processCmd.Flags().StringVar(&onlyStore, "store", "", "process only the store with this ID")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Init(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if verbose {
		cfg.LogLevel = "DEBUG"
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	tables := layout.Default()
	if cfg.LayoutPath != "" {
		tables, err = layout.Load(cfg.LayoutPath)
		if err != nil {
			return fmt.Errorf("failed to load table layout: %w", err)
		}
	}

	// --- Dependency Injection ---
	source := gateway.NewFileTableSource(tables)
	pipeline := usecase.NewStorePipeline(source, usecase.Options{FilterStage: cfg.FilterStage})
	runner := usecase.NewRunner(pipeline, cfg.Workers)
	sink, err := buildSink(cfg)
	if err != nil {
		return err
	}

	stores, diags := gateway.DiscoverStores(cfg.InputDir)
	for _, d := range diags {
		log.Warningf("%s", d)
	}
	if onlyStore != "" {
		stores = selectStore(stores, onlyStore)
		if len(stores) == 0 {
			return fmt.Errorf("store %q not found under %s", onlyStore, cfg.InputDir)
		}
	}
	log.Infof("processing %d store(s) from %s", len(stores), cfg.InputDir)

	report := runner.Run(cmd.Context(), stores)
	report.Rows = usecase.FilterRowsByPeriod(report.Rows, cfg.Year, cfg.Month)

	if dryRun {
		log.Infof("dry run: %d row(s) not written", len(report.Rows))
		return nil
	}
	if err := sink.Write(cmd.Context(), report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("report written to %s", describeSink(cfg))
	return nil
}

func buildSink(cfg *config.Config) (usecase.ReportSink, error) {
	switch cfg.OutputFormat {
	case config.FormatCSV:
		return gateway.NewCSVReportWriter(cfg.OutputPath), nil
	case config.FormatXLSX:
		return gateway.NewXLSXReportWriter(cfg.OutputPath), nil
	case config.FormatPostgres:
		return gateway.NewPostgresReportWriter(cfg.PostgresDSN), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", cfg.OutputFormat)
	}
}

func describeSink(cfg *config.Config) string {
	if cfg.OutputFormat == config.FormatPostgres {
		return "postgres table sales_summary"
	}
	return cfg.OutputPath
}

func selectStore(stores []domain.StoreRef, id string) []domain.StoreRef {
	for _, s := range stores {
		if s.ID == id {
			return []domain.StoreRef{s}
		}
	}
	return nil
}
