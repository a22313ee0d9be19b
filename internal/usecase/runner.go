package usecase

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"monthly-sales-report/internal/domain"
)

var log = logging.MustGetLogger("salesreport")

// Runner fans the per-store pipeline out across a bounded worker pool.
// Stores share no state, so the only coordination is collecting finished
// results; each worker writes into its own slot and the union preserves
// discovery order.
type Runner struct {
	pipeline *StorePipeline
	workers  int
}

// NewRunner creates a runner. workers <= 0 means one worker per CPU.
func NewRunner(pipeline *StorePipeline, workers int) *Runner {
	return &Runner{pipeline: pipeline, workers: workers}
}

// Run processes every store and unions the rows into one report. Store
// failures never fail the run: a structurally broken store is logged,
// recorded as skipped, and its siblings proceed.
func (r *Runner) Run(ctx context.Context, stores []domain.StoreRef) *domain.Report {
	report := &domain.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
	log.Infof("run %s: processing %d stores", report.RunID, len(stores))

	workers := r.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*domain.StoreResult, len(stores))
	failures := make([]error, len(stores))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, store := range stores {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[i] = err
				return nil
			}
			result, err := r.pipeline.Process(ctx, store)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	for i, store := range stores {
		if failures[i] != nil {
			log.Warningf("skipping store %s: %v", store.ID, failures[i])
			report.SkippedStores = append(report.SkippedStores, store.ID)
			continue
		}
		result := results[i]
		for _, d := range result.Diagnostics {
			log.Warningf("%s", d)
		}
		log.Debugf("store %s: %d summary rows", store.ID, len(result.Rows))
		report.Rows = append(report.Rows, result.Rows...)
	}

	log.Infof("run %s: %d rows from %d stores (%d skipped)",
		report.RunID, len(report.Rows), len(stores)-len(report.SkippedStores), len(report.SkippedStores))
	return report
}

// FilterRowsByPeriod keeps only rows whose date starts with the YYYY-MM
// prefix built from the year and month selectors; with only a year the
// prefix is YYYY-. This is a post-filter over the finished result, not part
// of the aggregation. An empty year disables it. Rows with a null date
// never match an active filter.
func FilterRowsByPeriod(rows []domain.SummaryRow, year, month string) []domain.SummaryRow {
	if year == "" {
		return rows
	}
	prefix := year + "-"
	if month != "" {
		if len(month) == 1 {
			month = "0" + month
		}
		prefix = fmt.Sprintf("%s-%s", year, month)
	}

	var kept []domain.SummaryRow
	for _, row := range rows {
		if row.Date == nil || !strings.HasPrefix(*row.Date, prefix) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
