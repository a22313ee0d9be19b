package usecase

import (
	"sort"
	"strings"

	"monthly-sales-report/internal/domain"
)

// GroupDims records which grouping dimensions actually exist for a store.
// A dimension that exists still groups its null values: they form their own
// group rather than being dropped.
type GroupDims struct {
	Date bool
	Type bool
}

// Group is one aggregate: the key values (nil for an absent dimension or a
// null member) plus the reduced amount and count.
type Group struct {
	Date   *string
	Type   *string
	Amount float64
	Count  int
}

// Aggregate groups events by the present dimensions and reduces each group
// to the float64 sum of amounts and the sum of counts. With no dimensions
// present, all events collapse into a single group with null keys. Zero
// events produce zero groups. Groups are returned sorted by (date, type),
// nulls last, so output is deterministic. No rounding happens here.
func Aggregate(events []domain.SaleEvent, dims GroupDims) []Group {
	if len(events) == 0 {
		return nil
	}

	groups := make(map[string]*Group)
	for _, event := range events {
		key := buildGroupKey(event, dims)
		g, ok := groups[key]
		if !ok {
			g = &Group{}
			if dims.Date {
				g.Date = event.Date
			}
			if dims.Type {
				g.Type = event.Type
			}
			groups[key] = g
		}
		g.Amount += event.Amount
		g.Count += event.Count
	}

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := compareNullsLast(out[i].Date, out[j].Date); c != 0 {
			return c < 0
		}
		return compareNullsLast(out[i].Type, out[j].Type) < 0
	})
	return out
}

// buildGroupKey joins the present dimensions into a composite key. The unit
// separator keeps multi-field keys unambiguous and a marker distinguishes a
// null member from an empty string.
func buildGroupKey(event domain.SaleEvent, dims GroupDims) string {
	var parts []string
	if dims.Date {
		parts = append(parts, keyPart(event.Date))
	}
	if dims.Type {
		parts = append(parts, keyPart(event.Type))
	}
	return strings.Join(parts, "\x1f")
}

func keyPart(s *string) string {
	if s == nil {
		return "\x00"
	}
	return *s
}

func compareNullsLast(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

// BuildSummaryRows attaches the store identity and the fixed currency code
// to each aggregate, yielding the full seven-field output shape. A store
// with zero groups contributes zero rows, never a row of zeros.
func BuildSummaryRows(store domain.StoreRef, storeName string, groups []Group) []domain.SummaryRow {
	if len(groups) == 0 {
		return nil
	}
	rows := make([]domain.SummaryRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.SummaryRow{
			StoreID:    store.ID,
			StoreName:  storeName,
			Date:       g.Date,
			Type:       g.Type,
			SaleAmount: g.Amount,
			SaleCount:  g.Count,
			Currency:   domain.CurrencyCode,
		}
	}
	return rows
}
