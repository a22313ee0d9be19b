package gateway

import (
	"fmt"

	"github.com/LindsayBradford/go-dbf/godbf"

	"monthly-sales-report/internal/domain"
)

// dbfEncoding covers the legacy store databases in the field; they ship
// plain ASCII field data.
const dbfEncoding = "UTF8"

// readDBF parses a dBase table file. Field values arrive space-padded;
// blanks become nulls, everything else stays a string for the normalizer
// to coerce.
func readDBF(path string) (domain.Table, error) {
	table, err := godbf.NewFromFile(path, dbfEncoding)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to parse dbf file %s: %w", path, err)
	}

	columns := table.FieldNames()
	rows := make([]domain.Record, 0, table.NumberOfRecords())
	for i := 0; i < table.NumberOfRecords(); i++ {
		row := make(domain.Record, len(columns))
		for _, col := range columns {
			value, err := table.FieldValueByName(i, col)
			if err != nil {
				return domain.Table{}, fmt.Errorf("error reading row %d of %s: %w", i, path, err)
			}
			row[col] = cellValue(value)
		}
		rows = append(rows, row)
	}
	return domain.Table{Columns: columns, Rows: rows}, nil
}
