package tabular

import (
	"fmt"
	"os"
)

// Option configures a read or write operation.
type Option func(*options)

type options struct {
	delimiter rune
}

// WithDelimiter forces a delimiter for delimited text, bypassing
// sniffing on read and the extension default on write. It has no
// effect on XLSX files.
func WithDelimiter(d rune) Option {
	return func(o *options) { o.delimiter = d }
}

// SupportedExtension reports whether ReadFile/WriteFile can handle the
// path, letting callers fail fast before any conversion work.
func SupportedExtension(path string) bool {
	ext := normalizeExt(path)
	if ext == ".xlsx" {
		return true
	}
	_, ok := delimiterForExtension(ext)
	return ok
}

// ReadFile loads a table from disk, routing on the file extension:
// .csv/.txt (sniffed delimiter), .tsv (tab), .xlsx.
func ReadFile(path string, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ext := normalizeExt(path)
	if ext != ".xlsx" {
		if _, ok := delimiterForExtension(ext); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: read %s: %w", path, err)
	}

	if ext == ".xlsx" {
		return readXLSX(data)
	}
	delim := o.delimiter
	if delim == 0 && ext == ".tsv" {
		delim = '\t'
	}
	return readDelimited(data, delim)
}

// WriteFile persists a table, routing on the destination extension.
// Delimited targets default to comma, .tsv to tab. The extension check
// happens before the file is created so an unsupported target never
// leaves a partial output file behind.
func WriteFile(path string, tbl *Table, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ext := normalizeExt(path)
	if ext != ".xlsx" {
		if _, ok := delimiterForExtension(ext); !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tabular: create %s: %w", path, err)
	}
	defer f.Close()

	if ext == ".xlsx" {
		return writeXLSX(f, tbl)
	}
	delim := o.delimiter
	if delim == 0 {
		delim = ','
		if ext == ".tsv" {
			delim = '\t'
		}
	}
	return writeDelimited(f, tbl, delim)
}
