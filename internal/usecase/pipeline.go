package usecase

import (
	"context"
	"fmt"

	"monthly-sales-report/internal/domain"
	"monthly-sales-report/internal/layout"
)

// Filter stages for the category inclusion filter.
const (
	// FilterStageEvents applies the filter to reconstructed events,
	// preserving row adjacency during reconstruction.
	FilterStageEvents = "events"
	// FilterStageRecords applies the filter to journal rows before
	// reconstruction, the historical record-level behavior.
	FilterStageRecords = "records"
)

// Options tune the per-store pipeline.
type Options struct {
	FilterStage string
}

// StorePipeline runs the full read, normalize, reconstruct, join, filter
// and aggregate sequence for one store. Stages run strictly in order: the
// reconstructor depends on global row order, so nothing may reorder rows
// between stages.
type StorePipeline struct {
	source TableSource
	opts   Options
}

// NewStorePipeline creates a pipeline reading from the given source.
func NewStorePipeline(source TableSource, opts Options) *StorePipeline {
	if opts.FilterStage == "" {
		opts.FilterStage = FilterStageEvents
	}
	return &StorePipeline{source: source, opts: opts}
}

// Process produces the summary rows for one store. The returned error is
// reserved for structural failures (unreadable directory or journal); every
// other degradation surfaces as diagnostics on the result.
func (p *StorePipeline) Process(ctx context.Context, store domain.StoreRef) (*domain.StoreResult, error) {
	result := &domain.StoreResult{Store: store}

	// Step 1: Journal Ingestion
	rawJournal, readDiags := p.source.Read(ctx, store, layout.RoleJournal)
	result.Diagnostics = append(result.Diagnostics, readDiags...)
	for _, d := range readDiags {
		if d.Kind == domain.StructuralFailure {
			return nil, fmt.Errorf("store %s: %s", store.ID, d.Detail)
		}
	}
	if rawJournal.Empty() {
		if len(readDiags) == 0 {
			result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
				Kind:    domain.MissingOptionalInput,
				Store:   store.ID,
				Subject: string(layout.RoleJournal),
				Detail:  "table holds no rows",
			})
		}
		return result, nil
	}

	// Step 2: Schema Normalization
	journal, jfb, diags := NormalizeTable(store.ID, rawJournal, JournalFields)
	result.Diagnostics = append(result.Diagnostics, diags...)
	if jfb.Has(domain.ColPrice) && jfb.Has(domain.ColAmt) {
		result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
			Kind:    domain.UnrecognizedSchema,
			Store:   store.ID,
			Subject: string(layout.RoleJournal),
			Detail:  "neither PRICE nor AMT present; amounts default to 0",
		})
	}

	// Step 3: Store Name Lookup
	storeName := p.resolveStoreName(ctx, store, result)

	// Step 4: Date Backfill from the Journal Header
	journal = p.backfillDates(ctx, store, journal, jfb, result)

	// Step 5: Category Index
	index := p.buildCategoryIndex(ctx, store, jfb, result)
	if p.opts.FilterStage == FilterStageRecords {
		journal = FilterJournalRecords(journal, index)
	}

	// Step 6: Sale-Event Reconstruction
	events := ReconstructEvents(journal, jfb)

	// Step 7: Reference Join & Category Filter
	events = ResolveCategories(events, index)
	if p.opts.FilterStage == FilterStageEvents {
		events = FilterEventsByCategory(events, index)
	}
	descriptPresent := !jfb.Has(domain.ColDescript)
	events = ApplyTypeFallback(events, descriptPresent)

	// Step 8: Aggregation
	dims := GroupDims{
		Date: !jfb.Has(domain.ColDate) || !columnAllNull(journal, domain.ColDate),
		Type: descriptPresent || index != nil,
	}
	groups := Aggregate(events, dims)
	result.Rows = BuildSummaryRows(store, storeName, groups)
	return result, nil
}

func (p *StorePipeline) resolveStoreName(ctx context.Context, store domain.StoreRef, result *domain.StoreResult) string {
	raw, diags := p.source.Read(ctx, store, layout.RoleStore)
	result.Diagnostics = append(result.Diagnostics, diags...)
	ref, _, normDiags := NormalizeTable(store.ID, raw, StoreFields)
	result.Diagnostics = append(result.Diagnostics, normDiags...)
	return StoreName(store, ref)
}

func (p *StorePipeline) backfillDates(ctx context.Context, store domain.StoreRef, journal domain.Table, jfb Fallbacks, result *domain.StoreResult) domain.Table {
	needsDates := jfb.Has(domain.ColDate) || columnAllNull(journal, domain.ColDate)
	if !needsDates {
		return journal
	}

	raw, diags := p.source.Read(ctx, store, layout.RoleHeader)
	result.Diagnostics = append(result.Diagnostics, diags...)
	header, hfb, normDiags := NormalizeTable(store.ID, raw, HeaderFields)
	result.Diagnostics = append(result.Diagnostics, normDiags...)

	out, applied := BackfillDates(journal, jfb, header, hfb)
	if !applied && !raw.Empty() {
		result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
			Kind:    domain.MissingOptionalInput,
			Store:   store.ID,
			Subject: string(layout.RoleHeader),
			Detail:  "date backfill skipped; sale or date column unavailable",
		})
	}
	return out
}

// buildCategoryIndex prepares the category lookup. The filter is skipped
// entirely, never applied as drop-everything, when the journal has no
// category column or the category table cannot supply keys.
func (p *StorePipeline) buildCategoryIndex(ctx context.Context, store domain.StoreRef, jfb Fallbacks, result *domain.StoreResult) CategoryIndex {
	raw, diags := p.source.Read(ctx, store, layout.RoleCategory)
	result.Diagnostics = append(result.Diagnostics, diags...)
	if raw.Empty() {
		return nil
	}

	if jfb.Has(domain.ColCat) {
		result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
			Kind:    domain.MissingOptionalInput,
			Store:   store.ID,
			Subject: string(layout.RoleCategory),
			Detail:  "journal has no category column; filter skipped",
		})
		return nil
	}

	cat, cfb, normDiags := NormalizeTable(store.ID, raw, CategoryFields)
	result.Diagnostics = append(result.Diagnostics, normDiags...)

	index := BuildCategoryIndex(cat, cfb)
	if index == nil {
		result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
			Kind:    domain.MissingOptionalInput,
			Store:   store.ID,
			Subject: string(layout.RoleCategory),
			Detail:  "category filter skipped; key column unavailable",
		})
	}
	return index
}
