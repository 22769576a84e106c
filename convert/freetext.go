package convert

import (
	"regexp"
	"strings"

	"github.com/haryo/vcfconv/vcard"
)

var (
	freeTextPairSep = regexp.MustCompile(`[;|]+`)
	freeTextCSVSep  = regexp.MustCompile("[;,\t]+")
)

// FromFreeText builds records from loosely formatted text, one contact
// per line. Two shapes are accepted:
//
//	Name: John Doe; Phone: +628123; Email: j@example.com
//	John Doe, +628123, j@example.com
//
// Lines containing a colon are parsed as key/value pairs (keys "name",
// "fullname" and "nama" all bind the name; "phone" and "email" bind the
// obvious fields). Other lines are parsed positionally as name, phone,
// email. Phones from free text get the CELL label, mirroring how such
// numbers are almost always mobile numbers.
func FromFreeText(text string) []vcard.ContactRecord {
	var recs []vcard.ContactRecord
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec vcard.ContactRecord
		if strings.Contains(line, ":") {
			rec = recordFromPairs(line)
		} else {
			rec = recordFromPositional(line)
		}
		if rec.DisplayName() == vcard.PlaceholderName &&
			len(rec.Phones) == 0 && len(rec.Emails) == 0 {
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}

func recordFromPairs(line string) vcard.ContactRecord {
	var rec vcard.ContactRecord
	for _, part := range freeTextPairSep.Split(line, -1) {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name", "fullname", "full_name", "nama":
			rec.FullName = value
			rec.GivenName, rec.FamilyName = splitName(value)
		case "phone", "tel":
			rec.Phones = append(rec.Phones, vcard.Phone{Label: vcard.LabelCell, Number: value})
		case "email", "mail":
			rec.Emails = append(rec.Emails, value)
		}
	}
	return rec
}

func recordFromPositional(line string) vcard.ContactRecord {
	var rec vcard.ContactRecord
	parts := make([]string, 0, 3)
	for _, p := range freeTextCSVSep.Split(line, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return rec
	}
	rec.FullName = parts[0]
	rec.GivenName, rec.FamilyName = splitName(parts[0])
	if len(parts) > 1 {
		rec.Phones = append(rec.Phones, vcard.Phone{Label: vcard.LabelCell, Number: parts[1]})
	}
	if len(parts) > 2 {
		rec.Emails = append(rec.Emails, parts[2])
	}
	return rec
}

// splitName cuts a display name at the first space: given name, then
// everything else as the family name.
func splitName(full string) (given, family string) {
	given, family, ok := strings.Cut(full, " ")
	if !ok {
		return full, ""
	}
	return given, strings.TrimSpace(family)
}
