package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/varistat/dataset"
)

const archiveExt = ".vsa"

// readRows parses a CSV file with a header row into typed rows.
func readRows(path string) (dataset.Rows, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset.Rows{}, err
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (dataset.Rows, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return dataset.Rows{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return dataset.Rows{}, fmt.Errorf("read csv: missing header row")
	}

	return dataset.FromRecords(records[0], records[1:])
}

// readSample loads one numeric column from a CSV file, or the whole sample
// from a .vsa archive, in which case column is ignored.
func readSample(path, column string) ([]float64, error) {
	if strings.EqualFold(filepath.Ext(path), archiveExt) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		return dataset.DecodeSample(data)
	}

	if column == "" {
		return nil, fmt.Errorf("--column is required for CSV input")
	}

	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	return rows.Numeric(column)
}
