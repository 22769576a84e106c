package vcard

import "strings"

const (
	beginMarker = "BEGIN:VCARD"
	endMarker   = "END:VCARD"
)

// DecodeAll parses a vCard document into records, best effort. The text
// is split on the literal BEGIN:VCARD delimiter; fragments without an
// END:VCARD are discarded as truncated trailing data. A document with
// no block delimiters at all yields an empty result, not an error.
// Both \r\n and \n line endings are accepted.
func DecodeAll(text string) []ContactRecord {
	recs := []ContactRecord{}
	for _, fragment := range blockFragments(text) {
		if !strings.Contains(fragment, endMarker) {
			continue
		}
		recs = append(recs, decodeBlock(fragment))
	}
	return recs
}

// blockFragments splits the document on BEGIN:VCARD and drops the text
// before the first delimiter: nothing there belongs to any block, and
// a document with no delimiter at all has no fragments.
func blockFragments(text string) []string {
	fragments := strings.Split(text, beginMarker)
	return fragments[1:]
}

// physicalLines splits a fragment into terminator-stripped, non-blank
// physical lines, ready for unfolding.
func physicalLines(fragment string) []string {
	raw := strings.Split(fragment, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// decodeBlock scans one block fragment (the text between BEGIN:VCARD
// and its END:VCARD) into a record. Unrecognized and malformed lines
// are skipped; scanning stops at the END:VCARD line so that trailing
// junk inside a fragment never bleeds into the record.
func decodeBlock(fragment string) ContactRecord {
	var rec ContactRecord
	for _, line := range UnfoldLines(physicalLines(fragment)) {
		if strings.HasPrefix(strings.ToUpper(line), endMarker) {
			break
		}
		pl, ok := parsePropertyLine(line)
		if !ok {
			continue
		}
		switch pl.name {
		case "FN":
			rec.FullName = Unescape(pl.value)
		case "N":
			comps := splitStructured(pl.value)
			if len(comps) > 0 {
				rec.FamilyName = Unescape(comps[0])
			}
			if len(comps) > 1 {
				rec.GivenName = Unescape(comps[1])
			}
		case "TEL":
			num := strings.TrimSpace(Unescape(pl.value))
			if num == "" {
				continue
			}
			label := strings.ToUpper(strings.TrimSpace(pl.param("TYPE")))
			if label == "" {
				label = LabelVoice
			}
			rec.Phones = append(rec.Phones, Phone{Label: label, Number: num})
		case "EMAIL":
			if em := strings.TrimSpace(Unescape(pl.value)); em != "" {
				rec.Emails = append(rec.Emails, em)
			}
		case "ORG":
			rec.Org = Unescape(pl.value)
		case "TITLE":
			rec.Title = Unescape(pl.value)
		case "ADR":
			comps := splitStructured(pl.value)
			at := func(i int) string {
				if i < len(comps) {
					return Unescape(comps[i])
				}
				return ""
			}
			rec.Street = at(2)
			rec.City = at(3)
			rec.Region = at(4)
			rec.Postal = at(5)
			rec.Country = at(6)
		case "NOTE":
			rec.Note = Unescape(pl.value)
		}
	}
	rec.FullName = rec.DisplayName()
	return rec
}

// SplitBlocks returns each complete block of the document as its own
// normalized vCard text (BEGIN through END inclusive, \n endings, one
// trailing newline). Folding and unknown properties are preserved
// verbatim; use DecodeAll when you need records instead of text.
func SplitBlocks(text string) []string {
	var blocks []string
	for _, fragment := range blockFragments(text) {
		if !strings.Contains(fragment, endMarker) {
			continue
		}
		lines := []string{beginMarker}
		for _, line := range physicalLines(fragment) {
			lines = append(lines, line)
			if strings.HasPrefix(strings.ToUpper(line), endMarker) {
				break
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n")+"\n")
	}
	return blocks
}

// MergeDocuments concatenates vCard documents, normalizing each to end
// with exactly one newline. Empty documents are skipped.
func MergeDocuments(docs ...string) string {
	var b strings.Builder
	for _, doc := range docs {
		doc = strings.TrimRight(doc, "\r\n")
		if doc == "" {
			continue
		}
		b.WriteString(doc)
		b.WriteByte('\n')
	}
	return b.String()
}
