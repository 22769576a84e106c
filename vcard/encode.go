package vcard

import "strings"

// Encode serializes one record as a vCard 3.0 block without a trailing
// newline. Lines are emitted in a fixed order: BEGIN, VERSION, N, FN,
// TEL entries (in record order; mappers place the canonical
// VOICE/CELL/HOME/WORK slots before custom labels), EMAIL entries, then
// ORG, TITLE, ADR and NOTE when non-empty. Every value passes through
// Escape. Encode cannot fail: absent optional fields are omitted and FN
// always resolves via DisplayName.
func Encode(rec ContactRecord) string {
	lines := make([]string, 0, 8+len(rec.Phones)+len(rec.Emails))
	lines = append(lines,
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:"+Escape(strings.TrimSpace(rec.FamilyName))+";"+Escape(strings.TrimSpace(rec.GivenName))+";;;",
		"FN:"+Escape(rec.DisplayName()),
	)

	for _, p := range rec.Phones {
		num := strings.TrimSpace(p.Number)
		if num == "" {
			continue
		}
		label := strings.ToUpper(strings.TrimSpace(p.Label))
		if label == "" {
			label = LabelVoice
		}
		lines = append(lines, "TEL;TYPE="+label+":"+Escape(num))
	}

	for _, em := range rec.Emails {
		em = strings.TrimSpace(em)
		if em == "" {
			continue
		}
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+Escape(em))
	}

	if org := strings.TrimSpace(rec.Org); org != "" {
		lines = append(lines, "ORG:"+Escape(org))
	}
	if title := strings.TrimSpace(rec.Title); title != "" {
		lines = append(lines, "TITLE:"+Escape(title))
	}

	street := strings.TrimSpace(rec.Street)
	city := strings.TrimSpace(rec.City)
	region := strings.TrimSpace(rec.Region)
	postal := strings.TrimSpace(rec.Postal)
	country := strings.TrimSpace(rec.Country)
	if street != "" || city != "" || region != "" || postal != "" || country != "" {
		comps := []string{"", "", street, city, region, postal, country}
		for i, c := range comps {
			comps[i] = Escape(c)
		}
		lines = append(lines, "ADR;TYPE=HOME:"+strings.Join(comps, ";"))
	}

	if note := strings.TrimSpace(rec.Note); note != "" {
		lines = append(lines, "NOTE:"+Escape(note))
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

// EncodeAll serializes records as one vCard document: blocks joined by
// a single newline, with a trailing newline iff the input is non-empty.
func EncodeAll(recs []ContactRecord) string {
	if len(recs) == 0 {
		return ""
	}
	blocks := make([]string, len(recs))
	for i, r := range recs {
		blocks[i] = Encode(r)
	}
	return strings.Join(blocks, "\n") + "\n"
}
