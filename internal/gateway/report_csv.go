package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"monthly-sales-report/internal/domain"
)

// CSVReportWriter persists the final report as a UTF-8 CSV file with one
// header row and the columns in the fixed report order. An empty report
// still produces the header row.
type CSVReportWriter struct {
	Path string
}

// NewCSVReportWriter creates a writer targeting the given file path.
func NewCSVReportWriter(path string) *CSVReportWriter {
	return &CSVReportWriter{Path: path}
}

// Write serializes the report. This is the only step of a run whose failure
// is fatal.
func (w *CSVReportWriter) Write(ctx context.Context, report *domain.Report) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", w.Path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.ReportColumns); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range report.Rows {
		if err := writer.Write(encodeSummaryRow(row)); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report file %s: %w", w.Path, err)
	}
	return file.Close()
}

// encodeSummaryRow renders one row in the fixed column order; nil date and
// type serialize as empty cells.
func encodeSummaryRow(row domain.SummaryRow) []string {
	return []string{
		row.StoreID,
		row.StoreName,
		derefOrEmpty(row.Date),
		derefOrEmpty(row.Type),
		strconv.FormatFloat(row.SaleAmount, 'f', -1, 64),
		strconv.Itoa(row.SaleCount),
		row.Currency,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
