package gateway

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"monthly-sales-report/internal/domain"
)

const salesSummaryDDL = `
CREATE TABLE IF NOT EXISTS sales_summary (
	run_id      TEXT,
	store_id    TEXT,
	store_name  TEXT,
	date        TEXT,
	type        TEXT,
	sale_amount DOUBLE PRECISION,
	sale_count  INT,
	currency    TEXT
)`

var salesSummaryColumns = []string{
	"run_id", "store_id", "store_name", "date", "type", "sale_amount", "sale_count", "currency",
}

// PostgresReportWriter loads the final report into a sales_summary table,
// one batch per run, tagged with the run ID.
type PostgresReportWriter struct {
	DSN string
}

// NewPostgresReportWriter creates a writer for the given connection string.
func NewPostgresReportWriter(dsn string) *PostgresReportWriter {
	return &PostgresReportWriter{DSN: dsn}
}

// Write copies all rows inside one transaction via the COPY protocol.
func (w *PostgresReportWriter) Write(ctx context.Context, report *domain.Report) error {
	conn, err := pgx.Connect(ctx, w.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, salesSummaryDDL); err != nil {
		return fmt.Errorf("failed to ensure sales_summary table: %w", err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	records := make([][]interface{}, 0, len(report.Rows))
	for _, row := range report.Rows {
		records = append(records, []interface{}{
			report.RunID,
			row.StoreID,
			row.StoreName,
			row.Date,
			row.Type,
			row.SaleAmount,
			row.SaleCount,
			row.Currency,
		})
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"sales_summary"}, salesSummaryColumns, pgx.CopyFromRows(records))
	if err != nil {
		return fmt.Errorf("failed to copy report rows: %w", err)
	}
	if n != int64(len(records)) {
		return fmt.Errorf("copied %d of %d report rows", n, len(records))
	}
	return tx.Commit(ctx)
}
