package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"monthly-sales-report/internal/domain"
)

// readCSV parses a CSV re-export of a store table. The first row is the
// header; rows are streamed one at a time and may be ragged (short rows are
// padded with nulls, long rows truncated to the header width). Empty cells
// become nulls so presence checks downstream see them as missing values.
func readCSV(path string) (domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open table file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.Table{}, nil
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		columns[i] = strings.TrimSpace(name)
	}

	var rows []domain.Record
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		row := make(domain.Record, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				row[col] = nil
				continue
			}
			row[col] = cellValue(record[i])
		}
		rows = append(rows, row)
	}
	return domain.Table{Columns: columns, Rows: rows}, nil
}

// cellValue maps an empty or whitespace-only cell to null and keeps
// everything else as the trimmed string. Numeric typing happens later, in
// the normalizer.
func cellValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
