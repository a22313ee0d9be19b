package usecase

import (
	"monthly-sales-report/internal/domain"
)

// StoreName resolves the display name for a store: the first row of the
// normalized store reference table when one exists, otherwise the store ID
// itself. This substitution never fails.
func StoreName(store domain.StoreRef, ref domain.Table) string {
	if !ref.Empty() {
		if name, ok := ref.Rows[0].Text(domain.ColName); ok {
			return name
		}
	}
	return store.ID
}

// CategoryEntry is one resolved category: its inclusion code and display
// name, either of which may be null in the source.
type CategoryEntry struct {
	Code *string
	Name *string
}

// CategoryIndex maps a category key to its entry. A nil index means the
// category dimension is unavailable and both enrichment and filtering are
// skipped.
type CategoryIndex map[string]CategoryEntry

// BuildCategoryIndex indexes the normalized category table by key, first
// row per key winning. It returns nil when the table is empty or its key
// column was injected, so callers can distinguish "cannot filter" from
// "nothing matches".
func BuildCategoryIndex(cat domain.Table, fb Fallbacks) CategoryIndex {
	if cat.Empty() || fb.Has(domain.ColCat) {
		return nil
	}

	index := make(CategoryIndex, len(cat.Rows))
	for _, row := range cat.Rows {
		key, ok := row.Text(domain.ColCat)
		if !ok {
			continue
		}
		if _, exists := index[key]; exists {
			continue
		}
		entry := CategoryEntry{}
		if code, ok := row.Text(domain.ColCode); ok {
			entry.Code = &code
		}
		if name, ok := row.Text(domain.ColName); ok {
			entry.Name = &name
		}
		index[key] = entry
	}
	return index
}

// ResolveCategories enriches events with their category display name,
// left-join style: events with no key or no match keep a null name. The
// input slice is not modified.
func ResolveCategories(events []domain.SaleEvent, index CategoryIndex) []domain.SaleEvent {
	if index == nil {
		return events
	}
	out := make([]domain.SaleEvent, len(events))
	for i, event := range events {
		if event.CategoryKey != nil {
			if entry, ok := index[*event.CategoryKey]; ok {
				event.CategoryName = entry.Name
			}
		}
		out[i] = event
	}
	return out
}

// FilterEventsByCategory keeps only events whose resolved inclusion code
// equals the reportable code. Events with no key, no match, or a null code
// are dropped: an equality filter, exactly as the source system applies it.
// A nil index disables the filter entirely rather than dropping everything.
func FilterEventsByCategory(events []domain.SaleEvent, index CategoryIndex) []domain.SaleEvent {
	if index == nil {
		return events
	}
	var kept []domain.SaleEvent
	for _, event := range events {
		if event.CategoryKey == nil {
			continue
		}
		entry, ok := index[*event.CategoryKey]
		if !ok || entry.Code == nil || *entry.Code != domain.CategoryInclusionCode {
			continue
		}
		kept = append(kept, event)
	}
	return kept
}

// FilterJournalRecords applies the category filter at the record level,
// before reconstruction. Dropping rows changes which 950/980 rows are
// adjacent, which is the historical record-level behavior some deployments
// relied on; the filter stage option selects between this and the
// event-level filter.
func FilterJournalRecords(journal domain.Table, index CategoryIndex) domain.Table {
	if index == nil {
		return journal
	}
	kept := domain.Table{Columns: journal.Columns}
	for _, row := range journal.Rows {
		key, ok := row.Text(domain.ColCat)
		if !ok {
			continue
		}
		entry, found := index[key]
		if !found || entry.Code == nil || *entry.Code != domain.CategoryInclusionCode {
			continue
		}
		kept.Rows = append(kept.Rows, row)
	}
	return kept
}

// BackfillDates fills the journal's date column from the header table,
// joined by sale number, first header row per key winning. The backfill
// runs only when the journal itself has no usable dates; a journal that
// carries its own dates is left alone. Returns the (possibly new) table and
// whether a backfill was applied.
func BackfillDates(journal domain.Table, jfb Fallbacks, header domain.Table, hfb Fallbacks) (domain.Table, bool) {
	needsDates := jfb.Has(domain.ColDate) || columnAllNull(journal, domain.ColDate)
	if !needsDates || jfb.Has(domain.ColSale) {
		return journal, false
	}
	if header.Empty() || hfb.Has(domain.ColSale) || hfb.Has(domain.ColDate) {
		return journal, false
	}

	dates := make(map[string]string, len(header.Rows))
	for _, row := range header.Rows {
		sale, ok := row.Text(domain.ColSale)
		if !ok {
			continue
		}
		if _, exists := dates[sale]; exists {
			continue
		}
		if date, ok := row.Text(domain.ColDate); ok {
			dates[sale] = date
		}
	}

	out := domain.Table{Columns: journal.Columns, Rows: make([]domain.Record, len(journal.Rows))}
	if !journal.HasColumn(domain.ColDate) {
		out.Columns = append(append([]string{}, journal.Columns...), domain.ColDate)
	}
	for i, row := range journal.Rows {
		clone := row.Clone()
		clone[domain.ColDate] = nil
		if sale, ok := row.Text(domain.ColSale); ok {
			if date, found := dates[sale]; found {
				clone[domain.ColDate] = date
			}
		}
		out.Rows[i] = clone
	}
	return out, true
}

// ApplyTypeFallback substitutes the resolved category name as the event
// type label for stores whose journal has no tender description at all,
// so those stores still group by something more useful than a null type.
func ApplyTypeFallback(events []domain.SaleEvent, descriptPresent bool) []domain.SaleEvent {
	if descriptPresent {
		return events
	}
	out := make([]domain.SaleEvent, len(events))
	for i, event := range events {
		event.Type = event.CategoryName
		out[i] = event
	}
	return out
}
