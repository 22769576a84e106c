package vcard

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		rec  ContactRecord
	}{
		{
			"full record",
			ContactRecord{
				GivenName:  "John",
				FamilyName: "Doe",
				Org:        "Acme, Inc",
				Title:      "CTO; acting",
				Street:     "Jl. Melati 1",
				City:       "Bandung",
				Region:     "Jabar",
				Postal:     "40115",
				Country:    "ID",
				Note:       "first line\nsecond line",
				Phones: []Phone{
					{Label: LabelVoice, Number: "+621111"},
					{Label: LabelCell, Number: "+622222"},
					{Label: "OFFICE", Number: "+623333"},
				},
				Emails: []string{"a@example.com", "b@example.com"},
			},
		},
		{
			"name only",
			ContactRecord{FullName: "Jane"},
		},
		{
			"placeholder name",
			ContactRecord{Phones: []Phone{{Label: LabelHome, Number: "42"}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := DecodeAll(EncodeAll([]ContactRecord{tc.rec}))
			if len(recs) != 1 {
				t.Fatalf("round trip produced %d records", len(recs))
			}
			got := recs[0]
			if got.FullName != tc.rec.DisplayName() {
				t.Errorf("FullName = %q, want %q", got.FullName, tc.rec.DisplayName())
			}
			if !reflect.DeepEqual(got.Phones, tc.rec.Phones) {
				t.Errorf("Phones = %v, want %v", got.Phones, tc.rec.Phones)
			}
			if !reflect.DeepEqual(got.Emails, tc.rec.Emails) && len(tc.rec.Emails) > 0 {
				t.Errorf("Emails = %v, want %v", got.Emails, tc.rec.Emails)
			}
			if got.Org != tc.rec.Org || got.Title != tc.rec.Title || got.Note != tc.rec.Note {
				t.Errorf("org/title/note mismatch: %+v", got)
			}
			if got.Street != tc.rec.Street || got.City != tc.rec.City ||
				got.Region != tc.rec.Region || got.Postal != tc.rec.Postal ||
				got.Country != tc.rec.Country {
				t.Errorf("address mismatch: %+v", got)
			}
		})
	}
}

func TestEncodeAllIdempotence(t *testing.T) {
	recs := []ContactRecord{
		{GivenName: "A", FamilyName: "One", Phones: []Phone{{Label: LabelCell, Number: "1"}}},
		{FullName: "B Two", Emails: []string{"b@x.y"}, Org: "Org, chart"},
	}
	first := EncodeAll(recs)
	second := EncodeAll(DecodeAll(first))
	if first != second {
		t.Fatalf("encode/decode/encode not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}
