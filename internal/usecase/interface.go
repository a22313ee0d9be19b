package usecase

import (
	"context"

	"monthly-sales-report/internal/domain"
	"monthly-sales-report/internal/layout"
)

// TableSource supplies the raw tables of a store extract. Implementations
// must never fail for an absent or unreadable table: the contract is an
// empty table plus diagnostics describing the degradation.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=interface.go TableSource
type TableSource interface {
	Read(ctx context.Context, store domain.StoreRef, role layout.Role) (domain.Table, []domain.Diagnostic)
}

// ReportSink persists the final report. A sink failure is the only fatal
// error of a run.
type ReportSink interface {
	Write(ctx context.Context, report *domain.Report) error
}
