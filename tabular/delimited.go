package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// readDelimited parses delimited text into a table. The first record is
// the header row. Rows shorter than the header are padded with empty
// cells; extra cells are dropped. delim == 0 triggers sniffing.
func readDelimited(data []byte, delim rune) (*Table, error) {
	if delim == 0 {
		delim = DetectDelimiter(data)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("tabular: read header: %w", err)
	}

	tbl := NewTable(header...)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tabular: read row %d: %w", tbl.Len()+2, err)
		}
		row := make(Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// writeDelimited renders the table as delimited text, header first,
// cells in header order with empty strings for missing keys.
func writeDelimited(w io.Writer, tbl *Table, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	if err := cw.Write(tbl.Headers); err != nil {
		return fmt.Errorf("tabular: write header: %w", err)
	}
	record := make([]string, len(tbl.Headers))
	for _, row := range tbl.Rows {
		for i, h := range tbl.Headers {
			record[i] = row[h]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("tabular: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
