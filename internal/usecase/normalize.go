package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"monthly-sales-report/internal/domain"
)

// FieldKind selects the coercion rule applied to a logical field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumeric
	FieldDate
)

// FieldSpec names one logical field and its kind.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Logical field sets per table role. The journal carries the four core
// fields of the two-row sale encoding plus the optional dimensions some
// store databases ship (sale number, category key, quantity, raw amount).
var (
	JournalFields = []FieldSpec{
		{domain.ColLine, FieldText},
		{domain.ColPrice, FieldNumeric},
		{domain.ColDescript, FieldText},
		{domain.ColDate, FieldDate},
		{domain.ColSale, FieldText},
		{domain.ColCat, FieldText},
		{domain.ColQty, FieldNumeric},
		{domain.ColAmt, FieldNumeric},
	}
	HeaderFields = []FieldSpec{
		{domain.ColSale, FieldText},
		{domain.ColDate, FieldDate},
	}
	StoreFields = []FieldSpec{
		{domain.ColName, FieldText},
	}
	CategoryFields = []FieldSpec{
		{domain.ColCat, FieldText},
		{domain.ColCode, FieldText},
		{domain.ColName, FieldText},
	}
)

// Fallbacks is the set of logical fields that were absent from the source
// schema and had a default column injected. It is the presence signal for
// every downstream decision: a dimension exists for a store iff its field
// is not in this set.
type Fallbacks map[string]bool

// Has reports whether the field was injected rather than found.
func (f Fallbacks) Has(name string) bool {
	return f[name]
}

// Accepted date layouts, tried in order. The first is also the canonical
// output form.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01-02 15:04:05",
	"01/02/2006",
	time.RFC3339,
}

// NormalizeTable maps a table onto the canonical schema for the given
// logical fields. Each field is located case-insensitively in column order
// (first match wins) and renamed; absent fields are injected with a typed
// default (numeric 0, text/date null) and reported in the fallback set.
// Columns outside the field list pass through untouched. The input table is
// never mutated. Normalizing an already-canonical table is a no-op.
func NormalizeTable(store string, table domain.Table, fields []FieldSpec) (domain.Table, Fallbacks, []domain.Diagnostic) {
	fallbacks := make(Fallbacks)
	var diags []domain.Diagnostic

	// Resolve each logical field to a physical column, or mark it injected.
	// When several case-variants coexist the first in column order wins and
	// the rest are dropped, so the canonical name stays unambiguous.
	rename := make(map[string]string, len(fields))
	drop := make(map[string]bool)
	var injected []FieldSpec
	for _, field := range fields {
		matches := matchColumns(table.Columns, field.Name)
		if len(matches) == 0 {
			fallbacks[field.Name] = true
			injected = append(injected, field)
			continue
		}
		rename[matches[0]] = field.Name
		if len(matches) > 1 {
			for _, dup := range matches[1:] {
				drop[dup] = true
			}
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.UnrecognizedSchema,
				Store:   store,
				Subject: field.Name,
				Detail:  fmt.Sprintf("%d columns match (%s); keeping %q", len(matches), strings.Join(matches, ", "), matches[0]),
			})
		}
	}

	columns := make([]string, 0, len(table.Columns)+len(injected))
	for _, col := range table.Columns {
		if drop[col] {
			continue
		}
		if canonical, ok := rename[col]; ok {
			columns = append(columns, canonical)
		} else {
			columns = append(columns, col)
		}
	}
	for _, field := range injected {
		columns = append(columns, field.Name)
	}

	rows := make([]domain.Record, len(table.Rows))
	for i, row := range table.Rows {
		out := make(domain.Record, len(columns))
		for _, col := range table.Columns {
			if drop[col] {
				continue
			}
			name := col
			if canonical, ok := rename[col]; ok {
				name = canonical
			}
			out[name] = row[col]
		}
		for _, field := range injected {
			out[field.Name] = defaultValue(field.Kind)
		}
		rows[i] = out
	}
	normalized := domain.Table{Columns: columns, Rows: rows}

	for _, field := range fields {
		switch field.Kind {
		case FieldNumeric:
			diags = append(diags, coerceNumericColumn(store, normalized, field.Name)...)
		case FieldDate:
			diags = append(diags, coerceDateColumn(store, normalized, field.Name)...)
		case FieldText:
			coerceTextColumn(normalized, field.Name)
		}
	}
	return normalized, fallbacks, diags
}

// matchColumns returns every physical column matching the logical name
// case-insensitively, in column order.
func matchColumns(columns []string, name string) []string {
	var matches []string
	for _, col := range columns {
		if strings.EqualFold(col, name) {
			matches = append(matches, col)
		}
	}
	return matches
}

func defaultValue(kind FieldKind) any {
	if kind == FieldNumeric {
		return float64(0)
	}
	return nil
}

// coerceNumericColumn rewrites every value as a float64. Nulls and
// unparseable values become 0; a parse failure never propagates.
func coerceNumericColumn(store string, table domain.Table, name string) []domain.Diagnostic {
	bad := 0
	for _, row := range table.Rows {
		switch v := row[name].(type) {
		case nil:
			row[name] = float64(0)
		case float64:
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				bad++
				row[name] = float64(0)
				continue
			}
			row[name] = f
		default:
			bad++
			row[name] = float64(0)
		}
	}
	if bad == 0 {
		return nil
	}
	return []domain.Diagnostic{{
		Kind:    domain.MalformedValue,
		Store:   store,
		Subject: name,
		Detail:  fmt.Sprintf("%d unparseable values coerced to 0", bad),
	}}
}

// coerceDateColumn rewrites a date column as ISO YYYY-MM-DD strings, but
// only when every non-null value parses: a column that fails as a whole is
// left in its original string form rather than discarded. An all-null
// column stays null.
func coerceDateColumn(store string, table domain.Table, name string) []domain.Diagnostic {
	parsed := make([]string, len(table.Rows))
	seen, bad := 0, 0
	for i, row := range table.Rows {
		s, ok := row.Text(name)
		if !ok {
			continue
		}
		seen++
		iso, err := parseDate(s)
		if err != nil {
			bad++
			continue
		}
		parsed[i] = iso
	}
	if seen == 0 {
		return nil
	}
	if bad > 0 {
		return []domain.Diagnostic{{
			Kind:    domain.MalformedValue,
			Store:   store,
			Subject: name,
			Detail:  fmt.Sprintf("%d of %d values unparseable; column left as read", bad, seen),
		}}
	}
	for i, row := range table.Rows {
		if _, ok := row.Text(name); ok {
			row[name] = parsed[i]
		}
	}
	return nil
}

// coerceTextColumn reformats numeric values as plain strings; nulls stay
// null.
func coerceTextColumn(table domain.Table, name string) {
	for _, row := range table.Rows {
		if s, ok := row.Text(name); ok {
			row[name] = s
		}
	}
}

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayouts[0]), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// columnAllNull reports whether the column holds no usable value in any
// row.
func columnAllNull(table domain.Table, name string) bool {
	for _, row := range table.Rows {
		if _, ok := row.Text(name); ok {
			return false
		}
	}
	return true
}
