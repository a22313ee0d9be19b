package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"monthly-sales-report/internal/domain"
)

const summarySheet = "Summary"

// XLSXReportWriter persists the final report as a single-sheet workbook
// with the same header and column order as the CSV sink.
type XLSXReportWriter struct {
	Path string
}

// NewXLSXReportWriter creates a writer targeting the given file path.
func NewXLSXReportWriter(path string) *XLSXReportWriter {
	return &XLSXReportWriter{Path: path}
}

// Write serializes the report into a workbook.
func (w *XLSXReportWriter) Write(ctx context.Context, report *domain.Report) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}

	header := make([]interface{}, len(domain.ReportColumns))
	for i, col := range domain.ReportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for i, row := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		values := []interface{}{
			row.StoreID,
			row.StoreName,
			cellOrNil(row.Date),
			cellOrNil(row.Type),
			row.SaleAmount,
			row.SaleCount,
			row.Currency,
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(w.Path); err != nil {
		return fmt.Errorf("failed to save report workbook %s: %w", w.Path, err)
	}
	return nil
}

func cellOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
