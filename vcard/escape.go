package vcard

import "strings"

// escaper handles the four characters vCard 3.0 requires escaped in the
// property set this codec supports. Colons, at-signs and brackets pass
// through verbatim. Replacement order matters: backslash first, so the
// escape characters themselves never get double-processed.
var escaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\n", "\\n",
)

// Escape renders a value safe for insertion into a vCard property line.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape is the exact left inverse of Escape. It is a single-pass
// scanner: an unrecognized escape sequence (or a trailing lone
// backslash) is preserved verbatim rather than dropped.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
		case ';':
			b.WriteByte(';')
			i++
		case ',':
			b.WriteByte(',')
			i++
		case 'n', 'N':
			// RFC 2426 permits both \n and \N for newlines.
			b.WriteByte('\n')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
