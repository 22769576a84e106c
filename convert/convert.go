package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/haryo/vcfconv/tabular"
	"github.com/haryo/vcfconv/vcard"
)

// ErrUnsupportedConversion is returned when the source/target extension
// pair maps to no pipeline (e.g. csv→csv or vcf→vcf).
var ErrUnsupportedConversion = errors.New("convert: unsupported conversion")

// VCFExtension is the vCard file extension this package routes on.
const VCFExtension = ".vcf"

// Option configures a conversion.
type Option func(*options)

type options struct {
	delimiter rune
	mapping   *Mapping
}

// WithDelimiter forces the delimiter used when reading delimited text.
func WithDelimiter(d rune) Option {
	return func(o *options) { o.delimiter = d }
}

// WithMapping applies a header mapping to the source table before row
// mapping.
func WithMapping(m *Mapping) Option {
	return func(o *options) { o.mapping = m }
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsTableExtension reports whether the path names a supported table
// format.
func IsTableExtension(path string) bool {
	return tabular.SupportedExtension(path)
}

// ConversionTargets lists the extensions a file can be converted to,
// based on its own extension. Unsupported sources get an empty list.
func ConversionTargets(path string) []string {
	switch {
	case ext(path) == VCFExtension:
		return []string{".csv", ".xlsx", ".tsv"}
	case IsTableExtension(path):
		return []string{VCFExtension}
	default:
		return nil
	}
}

// TableToVCF reads a contact table and writes it as a vCard document.
func TableToVCF(src, dst string, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var tabOpts []tabular.Option
	if o.delimiter != 0 {
		tabOpts = append(tabOpts, tabular.WithDelimiter(o.delimiter))
	}
	tbl, err := tabular.ReadFile(src, tabOpts...)
	if err != nil {
		return err
	}
	tbl = o.mapping.Apply(tbl)

	text := vcard.EncodeAll(RecordsFromTable(tbl))
	if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
		return fmt.Errorf("convert: write %s: %w", dst, err)
	}
	return nil
}

// VCFToTable reads a vCard document and writes it as a table in the
// format named by dst's extension.
func VCFToTable(src, dst string, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Validate the target before reading anything: no partial output
	// for a misconfigured destination.
	if !IsTableExtension(dst) {
		return fmt.Errorf("%w: %q", tabular.ErrUnsupportedExtension, ext(dst))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("convert: read %s: %w", src, err)
	}
	tbl := TableFromRecords(vcard.DecodeAll(string(data)))

	var tabOpts []tabular.Option
	if o.delimiter != 0 {
		tabOpts = append(tabOpts, tabular.WithDelimiter(o.delimiter))
	}
	return tabular.WriteFile(dst, tbl, tabOpts...)
}

// Convert routes on the src/dst extension pair.
func Convert(src, dst string, opts ...Option) error {
	srcIsVCF := ext(src) == VCFExtension
	dstIsVCF := ext(dst) == VCFExtension
	switch {
	case srcIsVCF && IsTableExtension(dst):
		return VCFToTable(src, dst, opts...)
	case IsTableExtension(src) && dstIsVCF:
		return TableToVCF(src, dst, opts...)
	default:
		return fmt.Errorf("%w: %q to %q", ErrUnsupportedConversion, ext(src), ext(dst))
	}
}

// MergeVCFFiles concatenates vCard files into dst, normalizing each
// document to end with exactly one newline.
func MergeVCFFiles(dst string, srcs ...string) error {
	docs := make([]string, 0, len(srcs))
	for _, src := range srcs {
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("convert: read %s: %w", src, err)
		}
		docs = append(docs, string(data))
	}
	merged := vcard.MergeDocuments(docs...)
	if err := os.WriteFile(dst, []byte(merged), 0o644); err != nil {
		return fmt.Errorf("convert: write %s: %w", dst, err)
	}
	return nil
}
