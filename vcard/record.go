package vcard

import "strings"

// PlaceholderName is emitted as FN when a record carries no usable name.
const PlaceholderName = "no name"

// Canonical phone type labels. Custom labels (uppercased column
// suffixes like "OFFICE") are carried verbatim alongside these.
const (
	LabelVoice = "VOICE"
	LabelCell  = "CELL"
	LabelHome  = "HOME"
	LabelWork  = "WORK"
)

// Phone is one typed phone entry on a record. Label is an uppercase
// vCard TYPE parameter value.
type Phone struct {
	Label  string
	Number string
}

// ContactRecord is the flat contact unit exchanged between the codec
// and tabular adapters. All fields are optional text; Phones and Emails
// preserve source order, one entry per TEL/EMAIL line.
type ContactRecord struct {
	FullName   string
	GivenName  string
	FamilyName string

	Org   string
	Title string

	Street  string
	City    string
	Region  string
	Postal  string
	Country string

	Note string

	Phones []Phone
	Emails []string
}

// DisplayName resolves the record's full name: FullName if set,
// otherwise given and family name joined, otherwise PlaceholderName.
func (r ContactRecord) DisplayName() string {
	if fn := strings.TrimSpace(r.FullName); fn != "" {
		return fn
	}
	name := strings.TrimSpace(strings.TrimSpace(r.GivenName) + " " + strings.TrimSpace(r.FamilyName))
	if name != "" {
		return name
	}
	return PlaceholderName
}
