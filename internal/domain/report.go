package domain

import "time"

// StoreRef identifies one store extract: the directory name doubles as the
// store identifier.
type StoreRef struct {
	ID  string `json:"store_id"`
	Dir string `json:"dir"`
}

// CurrencyCode is stamped on every summary row.
const CurrencyCode = "USD"

// ReportColumns is the fixed output column order for the persisted report.
var ReportColumns = []string{
	"store_id", "store_name", "date", "type", "sale_amount", "sale_count", "currency",
}

// SummaryRow is the final output unit: one aggregated row per store, date
// and sale type. All seven fields are always populated; Date and Type are
// nil only when the corresponding grouping dimension was absent for the
// store.
type SummaryRow struct {
	StoreID    string  `json:"store_id"`
	StoreName  string  `json:"store_name"`
	Date       *string `json:"date"`
	Type       *string `json:"type"`
	SaleAmount float64 `json:"sale_amount"`
	SaleCount  int     `json:"sale_count"`
	Currency   string  `json:"currency"`
}

// StoreResult is the outcome of one store's pipeline run.
type StoreResult struct {
	Store       StoreRef     `json:"store"`
	Rows        []SummaryRow `json:"rows"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Report is the union of all per-store results for one processing run.
type Report struct {
	RunID         string       `json:"run_id"`
	GeneratedAt   time.Time    `json:"generated_at"`
	Rows          []SummaryRow `json:"rows"`
	SkippedStores []string     `json:"skipped_stores,omitempty"`
}
