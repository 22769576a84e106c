package vcard

import "strings"

// propertyLine is one classified logical line: the uppercased property
// name, its KEY=VALUE parameters, and the raw (still escaped) value.
// Parsing each line into this tagged form once, then switching on the
// name, keeps property precedence explicit instead of hiding it in the
// ordering of a regex table.
type propertyLine struct {
	name   string
	params map[string]string
	value  string
}

// parsePropertyLine splits a logical line at its first colon into
// NAME[;PARAM=VALUE...] and the value. It reports false for lines with
// no colon or an empty name; such lines are skipped by the decoder.
func parsePropertyLine(line string) (propertyLine, bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return propertyLine{}, false
	}
	head, value := line[:idx], line[idx+1:]

	parts := strings.Split(head, ";")
	name := strings.ToUpper(strings.TrimSpace(parts[0]))
	if name == "" {
		return propertyLine{}, false
	}

	pl := propertyLine{name: name, value: value}
	if len(parts) > 1 {
		pl.params = make(map[string]string, len(parts)-1)
		for _, p := range parts[1:] {
			k, v, ok := strings.Cut(p, "=")
			if !ok {
				continue
			}
			pl.params[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
		}
	}
	return pl, true
}

// param returns the named parameter or "" when absent.
func (pl propertyLine) param(key string) string {
	return pl.params[key]
}

// splitStructured splits a structured value (N, ADR) on unescaped
// semicolons. Components are returned still escaped; callers unescape
// each one independently.
func splitStructured(v string) []string {
	comps := make([]string, 0, 8)
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '\\' && i+1 < len(v):
			b.WriteByte(c)
			i++
			b.WriteByte(v[i])
		case c == ';':
			comps = append(comps, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	comps = append(comps, b.String())
	return comps
}
