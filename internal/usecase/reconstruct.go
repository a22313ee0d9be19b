package usecase

import (
	"monthly-sales-report/internal/domain"
)

// ReconstructEvents rebuilds logical sale events from the ordered journal.
// The source system writes each sale as two adjacent rows: a value row
// (line marker "950") immediately followed by a tender row (line marker
// "980"). No key correlates the two, so adjacency is the only pairing
// signal. Every adjacent index pair (i, i+1) is checked unconditionally; a
// row that closed one pair is still examined as a potential opener of the
// next. Malformed sequences (950/950, an orphan 980, a pair split by an
// unrelated row) emit nothing.
func ReconstructEvents(journal domain.Table, fb Fallbacks) []domain.SaleEvent {
	if len(journal.Rows) < 2 {
		return nil
	}

	var events []domain.SaleEvent
	for i := 0; i+1 < len(journal.Rows); i++ {
		value := domain.JournalRecord{Record: journal.Rows[i]}
		tender := domain.JournalRecord{Record: journal.Rows[i+1]}
		if value.Line() != domain.LineSaleAmount || tender.Line() != domain.LineSaleType {
			continue
		}

		event := domain.SaleEvent{
			Amount: eventAmount(value, fb),
			Count:  1,
		}
		if date, ok := value.Date(); ok {
			event.Date = &date
		}
		if label, ok := tender.Descript(); ok {
			event.Type = &label
		}
		if key, ok := value.Cat(); ok {
			event.CategoryKey = &key
		}
		events = append(events, event)
	}
	return events
}

// eventAmount derives the amount of the value row. Price is the primary
// source, scaled by quantity when the store ships one; stores without a
// price column fall back to the raw amount column; with neither the amount
// is 0. Unparseable values are already 0 after normalization.
func eventAmount(value domain.JournalRecord, fb Fallbacks) float64 {
	switch {
	case !fb.Has(domain.ColPrice):
		amount := value.Price()
		if !fb.Has(domain.ColQty) {
			if qty, ok := value.Qty(); ok {
				amount *= qty
			}
		}
		return amount
	case !fb.Has(domain.ColAmt):
		amt, _ := value.Amt()
		return amt
	}
	return 0
}
