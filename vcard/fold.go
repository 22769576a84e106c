package vcard

import "strings"

// UnfoldLines merges folded physical lines into logical lines. Input
// lines must already have their terminators stripped and blank lines
// removed. A line starting with a single space or horizontal tab
// continues the previous logical line; exactly one leading whitespace
// character is consumed. A continuation with no preceding line is
// malformed and dropped.
func UnfoldLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if len(out) == 0 {
				continue
			}
			out[len(out)-1] += line[1:]
			continue
		}
		out = append(out, line)
	}
	return out
}
