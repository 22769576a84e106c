package convert

import (
	"fmt"
	"os"
	"strings"

	"github.com/haryo/vcfconv/tabular"
	"gopkg.in/yaml.v3"
)

// Mapping renames arbitrary source headers to canonical column names
// before row mapping, so a spreadsheet with "First Name" / "Mobile"
// columns can feed the converter without being edited first.
//
// YAML shape:
//
//	headers:
//	  First Name: given_name
//	  Mobile: phone_mobile
type Mapping struct {
	Headers map[string]string `yaml:"headers"`
}

// LoadMapping reads a YAML mapping file.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("convert: read mapping %s: %w", path, err)
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("convert: parse mapping %s: %w", path, err)
	}
	return &m, nil
}

// rename resolves one source header. Unmapped headers pass through
// lower-cased with spaces collapsed to underscores, which makes the
// common "Full Name" style headers line up with canonical names even
// without an explicit mapping entry.
func (m *Mapping) rename(header string) string {
	if m != nil {
		if to, ok := m.Headers[header]; ok {
			return to
		}
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

// Apply returns a copy of the table with headers and row keys renamed.
// When two source headers collapse onto the same canonical name, the
// later column wins for non-empty cells.
func (m *Mapping) Apply(tbl *tabular.Table) *tabular.Table {
	out := tabular.NewTable()
	for _, h := range tbl.Headers {
		out.EnsureHeader(m.rename(h))
	}
	for _, row := range tbl.Rows {
		renamed := make(tabular.Row, len(row))
		for _, h := range tbl.Headers {
			to := m.rename(h)
			if v := row[h]; v != "" || renamed[to] == "" {
				renamed[to] = v
			}
		}
		out.Rows = append(out.Rows, renamed)
	}
	return out
}
