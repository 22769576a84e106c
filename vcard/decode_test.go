package vcard

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeAllBasic(t *testing.T) {
	text := "BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nTEL;TYPE=CELL:555\nEND:VCARD"
	recs := DecodeAll(text)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.FullName != "Jane" {
		t.Errorf("FullName = %q, want Jane", rec.FullName)
	}
	want := []Phone{{Label: "CELL", Number: "555"}}
	if !reflect.DeepEqual(rec.Phones, want) {
		t.Errorf("Phones = %v, want %v", rec.Phones, want)
	}
}

func TestDecodeAllEmptyDocument(t *testing.T) {
	for _, text := range []string{"", "no vcards here", "END:VCARD"} {
		if recs := DecodeAll(text); len(recs) != 0 {
			t.Errorf("DecodeAll(%q) = %d records, want 0", text, len(recs))
		}
	}
}

func TestDecodeAllIgnoresTextBeforeFirstBegin(t *testing.T) {
	// A stray END:VCARD (or anything else) before the first delimiter
	// belongs to no block and must not produce a record.
	text := "NOTE:preamble\nEND:VCARD\nBEGIN:VCARD\nFN:Real\nEND:VCARD\n"
	recs := DecodeAll(text)
	if len(recs) != 1 || recs[0].FullName != "Real" {
		t.Fatalf("expected only the real record, got %+v", recs)
	}
}

func TestDecodeAllDiscardsTruncatedBlock(t *testing.T) {
	text := "BEGIN:VCARD\nFN:Complete\nEND:VCARD\nBEGIN:VCARD\nFN:Truncated\n"
	recs := DecodeAll(text)
	if len(recs) != 1 || recs[0].FullName != "Complete" {
		t.Fatalf("expected only the complete record, got %+v", recs)
	}
}

func TestDecodeFoldedLineEqualsUnfolded(t *testing.T) {
	folded := "BEGIN:VCARD\nFN:Jane Long\n name\nEND:VCARD"
	plain := "BEGIN:VCARD\nFN:Jane Longname\nEND:VCARD"
	a := DecodeAll(folded)
	b := DecodeAll(plain)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("folded decode %+v differs from unfolded %+v", a, b)
	}
}

func TestDecodeCRLF(t *testing.T) {
	text := "BEGIN:VCARD\r\nFN:Jane\r\nTEL;TYPE=HOME:123\r\nEND:VCARD\r\n"
	recs := DecodeAll(text)
	if len(recs) != 1 || recs[0].FullName != "Jane" {
		t.Fatalf("CRLF document not decoded: %+v", recs)
	}
	if len(recs[0].Phones) != 1 || recs[0].Phones[0].Number != "123" {
		t.Fatalf("phone lost on CRLF input: %+v", recs[0].Phones)
	}
}

func TestDecodeStructuredName(t *testing.T) {
	text := "BEGIN:VCARD\nN:Doe;John;;;\nEND:VCARD"
	rec := DecodeAll(text)[0]
	if rec.FamilyName != "Doe" || rec.GivenName != "John" {
		t.Fatalf("N parse: family=%q given=%q", rec.FamilyName, rec.GivenName)
	}
	if rec.FullName != "John Doe" {
		t.Fatalf("full name fallback = %q, want %q", rec.FullName, "John Doe")
	}
}

func TestDecodeNameFallbackPlaceholder(t *testing.T) {
	text := "BEGIN:VCARD\nTEL:1\nEND:VCARD"
	rec := DecodeAll(text)[0]
	if rec.FullName != PlaceholderName {
		t.Fatalf("FullName = %q, want placeholder", rec.FullName)
	}
}

func TestDecodePhoneDefaultsAndOrder(t *testing.T) {
	text := strings.Join([]string{
		"BEGIN:VCARD",
		"FN:X",
		"TEL:111",
		"TEL;TYPE=WORK:222",
		"TEL;TYPE=office:333",
		"END:VCARD",
	}, "\n")
	rec := DecodeAll(text)[0]
	want := []Phone{
		{Label: "VOICE", Number: "111"},
		{Label: "WORK", Number: "222"},
		{Label: "OFFICE", Number: "333"},
	}
	if !reflect.DeepEqual(rec.Phones, want) {
		t.Fatalf("Phones = %v, want %v", rec.Phones, want)
	}
}

func TestDecodeUnescapesValues(t *testing.T) {
	text := strings.Join([]string{
		"BEGIN:VCARD",
		`FN:A\;B`,
		`ORG:Acme\, Inc`,
		`NOTE:line1\nline2`,
		`TEL;TYPE=CELL:+62\,555`,
		"END:VCARD",
	}, "\n")
	rec := DecodeAll(text)[0]
	if rec.FullName != "A;B" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	if rec.Org != "Acme, Inc" {
		t.Errorf("Org = %q", rec.Org)
	}
	if rec.Note != "line1\nline2" {
		t.Errorf("Note = %q", rec.Note)
	}
	// Phones are unescaped like every other value.
	if rec.Phones[0].Number != "+62,555" {
		t.Errorf("phone = %q", rec.Phones[0].Number)
	}
}

func TestDecodeAddress(t *testing.T) {
	text := "BEGIN:VCARD\nADR;TYPE=HOME:;;Jl. Melati 1;Bandung;Jabar;40115;ID\nEND:VCARD"
	rec := DecodeAll(text)[0]
	if rec.Street != "Jl. Melati 1" || rec.City != "Bandung" || rec.Region != "Jabar" ||
		rec.Postal != "40115" || rec.Country != "ID" {
		t.Fatalf("ADR parse: %+v", rec)
	}

	// Missing trailing components default to empty.
	text = "BEGIN:VCARD\nADR:;;OnlyStreet\nEND:VCARD"
	rec = DecodeAll(text)[0]
	if rec.Street != "OnlyStreet" || rec.Country != "" {
		t.Fatalf("short ADR parse: %+v", rec)
	}
}

func TestDecodeAddressEscapedSemicolon(t *testing.T) {
	text := `BEGIN:VCARD` + "\n" + `ADR:;;Jl. A\; B;Kota;;;` + "\n" + `END:VCARD`
	rec := DecodeAll(text)[0]
	if rec.Street != "Jl. A; B" {
		t.Errorf("Street = %q, want escaped semicolon preserved as data", rec.Street)
	}
	if rec.City != "Kota" {
		t.Errorf("City = %q", rec.City)
	}
}

func TestDecodeSkipsMalformedAndUnknownLines(t *testing.T) {
	text := strings.Join([]string{
		"BEGIN:VCARD",
		"this line has no colon",
		"PHOTO;ENCODING=b:AAAA",
		"X-CUSTOM:whatever",
		"FN:Survivor",
		"END:VCARD",
	}, "\n")
	recs := DecodeAll(text)
	if len(recs) != 1 || recs[0].FullName != "Survivor" {
		t.Fatalf("malformed lines must be skipped, got %+v", recs)
	}
}

func TestDecodeStopsAtEndMarker(t *testing.T) {
	text := "BEGIN:VCARD\nFN:Real\nEND:VCARD\nNOTE:junk after end\n"
	rec := DecodeAll(text)[0]
	if rec.Note != "" {
		t.Fatalf("content after END:VCARD must be ignored, got note %q", rec.Note)
	}
}

func TestSplitBlocks(t *testing.T) {
	text := "BEGIN:VCARD\nFN:A\nEND:VCARD\nBEGIN:VCARD\nFN:B\nEND:VCARD\n"
	blocks := SplitBlocks(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0] != "BEGIN:VCARD\nFN:A\nEND:VCARD\n" {
		t.Errorf("block 0 = %q", blocks[0])
	}
	if blocks[1] != "BEGIN:VCARD\nFN:B\nEND:VCARD\n" {
		t.Errorf("block 1 = %q", blocks[1])
	}
}

func TestSplitBlocksEmptyDocument(t *testing.T) {
	for _, text := range []string{"", "no vcards here", "END:VCARD"} {
		if blocks := SplitBlocks(text); len(blocks) != 0 {
			t.Errorf("SplitBlocks(%q) = %d blocks, want 0", text, len(blocks))
		}
	}

	// Text before the first BEGIN:VCARD is not part of any block.
	text := "END:VCARD\nBEGIN:VCARD\nFN:A\nEND:VCARD\n"
	blocks := SplitBlocks(text)
	if len(blocks) != 1 || blocks[0] != "BEGIN:VCARD\nFN:A\nEND:VCARD\n" {
		t.Fatalf("leading fragment leaked into blocks: %q", blocks)
	}
}

func TestSplitBlocksPreservesUnknownProperties(t *testing.T) {
	text := "BEGIN:VCARD\nFN:A\nX-APP:keep me\nEND:VCARD\n"
	blocks := SplitBlocks(text)
	if len(blocks) != 1 || !strings.Contains(blocks[0], "X-APP:keep me") {
		t.Fatalf("unknown property lost: %q", blocks)
	}
}

func TestMergeDocuments(t *testing.T) {
	a := "BEGIN:VCARD\nFN:A\nEND:VCARD"   // no trailing newline
	b := "BEGIN:VCARD\nFN:B\nEND:VCARD\n" // one trailing newline
	got := MergeDocuments(a, b, "")
	want := "BEGIN:VCARD\nFN:A\nEND:VCARD\nBEGIN:VCARD\nFN:B\nEND:VCARD\n"
	if got != want {
		t.Fatalf("MergeDocuments = %q, want %q", got, want)
	}
	if len(DecodeAll(got)) != 2 {
		t.Fatalf("merged document should decode to 2 records")
	}
}
