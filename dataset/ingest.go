package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/varistat/errs"
)

// FromRecords converts string records into typed Rows.
//
// A column is numeric when every non-empty cell parses as a float64, and
// categorical otherwise; a column with no non-empty cells is categorical.
// Cells are trimmed before parsing and empty cells become missing values.
// Records shorter than the header are padded with missing values.
//
// Parameters:
//   - header: Column names
//   - records: Data records, one per observation
//
// Returns:
//   - Rows: Typed rows
//   - error: ErrDuplicateColumn, ErrLengthMismatch for records longer than the header
func FromRecords(header []string, records [][]string) (Rows, error) {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	for i, rec := range records {
		if len(rec) > len(columns) {
			return Rows{}, fmt.Errorf("record %d has %d fields, header has %d: %w",
				i, len(rec), len(columns), errs.ErrLengthMismatch)
		}
	}

	kinds := make(map[string]Kind, len(columns))
	for c, name := range columns {
		kinds[name] = detectKind(records, c)
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		row := make(Row, len(columns))
		for c, name := range columns {
			if c >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[c])
			if cell == "" {
				continue
			}
			if kinds[name] == KindNumber {
				v, _ := strconv.ParseFloat(cell, 64)
				row[name] = Number(v)
			} else {
				row[name] = Category(cell)
			}
		}
		rows[i] = row
	}

	return NewRows(columns, kinds, rows)
}

func detectKind(records [][]string, c int) Kind {
	seen := false
	for _, rec := range records {
		if c >= len(rec) {
			continue
		}
		cell := strings.TrimSpace(rec[c])
		if cell == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return KindCategory
		}
	}
	if !seen {
		return KindCategory
	}

	return KindNumber
}
