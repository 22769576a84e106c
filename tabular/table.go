// Package tabular reads and writes flat contact tables in delimited
// text (CSV/TSV/TXT) and XLSX form. It knows nothing about vCard; it
// exchanges header-keyed rows with the convert package.
package tabular

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExtension is returned before any conversion work begins
// when a path's extension maps to no known table format.
var ErrUnsupportedExtension = errors.New("tabular: unsupported file extension")

// Row maps header names to cell values. Ordering lives on the Table.
type Row map[string]string

// Table is an ordered sequence of rows plus the header list that
// defines column order: the union of all row keys in first-seen order.
type Table struct {
	Headers []string
	Rows    []Row

	seen map[string]bool
}

// NewTable creates a table with the given initial header order.
func NewTable(headers ...string) *Table {
	t := &Table{seen: make(map[string]bool, len(headers))}
	for _, h := range headers {
		t.EnsureHeader(h)
	}
	return t
}

// EnsureHeader appends the header if it has not been seen yet.
func (t *Table) EnsureHeader(name string) {
	if t.seen == nil {
		t.seen = make(map[string]bool)
		for _, h := range t.Headers {
			t.seen[h] = true
		}
	}
	if name == "" || t.seen[name] {
		return
	}
	t.seen[name] = true
	t.Headers = append(t.Headers, name)
}

// Add appends a row, folding any new keys into the header union. Key
// discovery order within a single row is not guaranteed for map keys,
// so callers that care about column order should EnsureHeader first.
func (t *Table) Add(row Row) {
	for k := range row {
		t.EnsureHeader(k)
	}
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// supportedExtensions in their delimiter defaults. XLSX is handled
// separately by the excelize-backed reader/writer.
func delimiterForExtension(ext string) (rune, bool) {
	switch ext {
	case ".tsv":
		return '\t', true
	case ".csv", ".txt":
		return 0, true // 0 = sniff on read, comma on write
	default:
		return 0, false
	}
}

// normalizeExt lower-cases a path's extension.
func normalizeExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
