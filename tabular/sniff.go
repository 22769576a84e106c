package tabular

import "bytes"

// sniffSampleSize bounds how much of the input the delimiter heuristic
// inspects.
const sniffSampleSize = 4096

// delimiterCandidates is the fixed candidate set, in tie-break order.
var delimiterCandidates = []rune{'\t', ';', ',', '|', ':'}

// DetectDelimiter picks the most frequent candidate delimiter in the
// leading sample of the data. When no candidate appears at all it
// falls back to comma; that default is a policy choice, not something
// inherent to the formats involved. Ties resolve in candidate order.
func DetectDelimiter(data []byte) rune {
	if len(data) > sniffSampleSize {
		data = data[:sniffSampleSize]
	}
	best := ','
	bestCount := 0
	for _, cand := range delimiterCandidates {
		if n := bytes.Count(data, []byte(string(cand))); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}
