package domain

import (
	"strconv"
	"strings"
)

// Record is one row of a source table: column name to a loosely-typed
// scalar. Values are string, float64, or nil. Column names are kept exactly
// as read; logical access happens after schema normalization.
type Record map[string]any

// Text returns the value under name as a string. Numbers are formatted
// without a trailing fraction ("950", not "950.0"). The second return is
// false when the column is missing or the value is null.
func (r Record) Text(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

// Number returns the value under name as a float64. Numeric strings are
// parsed. The second return is false when the column is missing, the value
// is null, or the value cannot be read as a number.
func (r Record) Number(name string) (float64, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// IsNull reports whether the column is present but holds a null value.
func (r Record) IsNull(name string) bool {
	v, ok := r[name]
	return ok && v == nil
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of records plus the column names observed
// when the table was read. The zero value is a valid empty table, which is
// the degraded state for a missing or unreadable source file.
type Table struct {
	Columns []string
	Rows    []Record
}

// Empty reports whether the table holds no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// HasColumn reports whether the table carries the exact column name.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
