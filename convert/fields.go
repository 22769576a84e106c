package convert

import (
	"strings"

	"github.com/haryo/vcfconv/tabular"
	"github.com/haryo/vcfconv/vcard"
)

// Canonical column names recognized on the table side. Any other
// column starting with "phone_" contributes a custom-labeled phone;
// everything else is ignored.
const (
	colFullName   = "full_name"
	colGivenName  = "given_name"
	colFamilyName = "family_name"
	colOrg        = "org"
	colTitle      = "title"
	colStreet     = "street"
	colCity       = "city"
	colRegion     = "region"
	colPostal     = "postal"
	colCountry    = "country"
	colNote       = "note"
	colPhone      = "phone"
	colPhoneCell  = "phone_mobile"
	colPhoneHome  = "phone_home"
	colPhoneWork  = "phone_work"
	colEmail      = "email"
	colEmailAlt   = "email_alt"
	colPhones     = "phones" // flattened output column on the vcf→table path
	colEmails     = "emails"

	customPhonePrefix = "phone_"
)

// listSeparator joins multi-valued phone/email cells on the vcf→table
// path, matching the separator split on free-text input.
const listSeparator = "; "

// RecordFromRow builds a contact record from one table row. The header
// slice fixes the ordering of custom phone columns; the four canonical
// phone slots always come first, in VOICE, CELL, HOME, WORK order.
func RecordFromRow(headers []string, row tabular.Row) vcard.ContactRecord {
	get := func(key string) string { return strings.TrimSpace(row[key]) }

	rec := vcard.ContactRecord{
		FullName:   get(colFullName),
		GivenName:  get(colGivenName),
		FamilyName: get(colFamilyName),
		Org:        get(colOrg),
		Title:      get(colTitle),
		Street:     get(colStreet),
		City:       get(colCity),
		Region:     get(colRegion),
		Postal:     get(colPostal),
		Country:    get(colCountry),
		Note:       get(colNote),
	}

	addPhone := func(label, number string) {
		if number == "" {
			return
		}
		rec.Phones = append(rec.Phones, vcard.Phone{Label: label, Number: number})
	}
	addPhone(vcard.LabelVoice, get(colPhone))
	addPhone(vcard.LabelCell, get(colPhoneCell))
	addPhone(vcard.LabelHome, get(colPhoneHome))
	addPhone(vcard.LabelWork, get(colPhoneWork))

	for _, h := range headers {
		if !strings.HasPrefix(h, customPhonePrefix) {
			continue
		}
		switch h {
		case colPhoneCell, colPhoneHome, colPhoneWork:
			continue
		}
		label := strings.ToUpper(strings.TrimPrefix(h, customPhonePrefix))
		if label == "" {
			label = vcard.LabelVoice
		}
		addPhone(label, get(h))
	}

	for _, key := range []string{colEmail, colEmailAlt} {
		if v := get(key); v != "" {
			rec.Emails = append(rec.Emails, v)
		}
	}

	return rec
}

// RecordsFromTable maps every row of a table.
func RecordsFromTable(tbl *tabular.Table) []vcard.ContactRecord {
	recs := make([]vcard.ContactRecord, 0, tbl.Len())
	for _, row := range tbl.Rows {
		recs = append(recs, RecordFromRow(tbl.Headers, row))
	}
	return recs
}

// tableColumns is the fixed output column order on the vcf→table path.
var tableColumns = []string{
	colFullName, colGivenName, colFamilyName,
	colPhones, colEmails,
	colOrg, colTitle,
	colStreet, colCity, colRegion, colPostal, colCountry,
	colNote,
}

// TableFromRecords flattens decoded records into a table. Multi-valued
// phones and emails collapse into single "; "-joined cells, the shape
// spreadsheet users expect back from a vCard export.
func TableFromRecords(recs []vcard.ContactRecord) *tabular.Table {
	tbl := tabular.NewTable(tableColumns...)
	for _, rec := range recs {
		numbers := make([]string, 0, len(rec.Phones))
		for _, p := range rec.Phones {
			numbers = append(numbers, p.Number)
		}
		tbl.Rows = append(tbl.Rows, tabular.Row{
			colFullName:   rec.FullName,
			colGivenName:  rec.GivenName,
			colFamilyName: rec.FamilyName,
			colPhones:     strings.Join(numbers, listSeparator),
			colEmails:     strings.Join(rec.Emails, listSeparator),
			colOrg:        rec.Org,
			colTitle:      rec.Title,
			colStreet:     rec.Street,
			colCity:       rec.City,
			colRegion:     rec.Region,
			colPostal:     rec.Postal,
			colCountry:    rec.Country,
			colNote:       rec.Note,
		})
	}
	return tbl
}
