package tabular

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n", '\t'},
		{"pipe", "a|b|c\n", '|'},
		{"colon", "key:value\n", ':'},
		{"no candidate falls back to comma", "abc\ndef\n", ','},
		{"empty falls back to comma", "", ','},
		{"tie resolves in candidate order", "a\tb,c\td,e\n", '\t'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectDelimiter([]byte(tc.in)); got != tc.want {
				t.Fatalf("DetectDelimiter(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestReadDelimitedSniffed(t *testing.T) {
	data := []byte("full_name;phone\nJane;555\nJohn;666\n")
	tbl, err := readDelimited(data, 0)
	if err != nil {
		t.Fatalf("readDelimited: %v", err)
	}
	if !reflect.DeepEqual(tbl.Headers, []string{"full_name", "phone"}) {
		t.Fatalf("Headers = %v", tbl.Headers)
	}
	if tbl.Len() != 2 || tbl.Rows[0]["full_name"] != "Jane" || tbl.Rows[1]["phone"] != "666" {
		t.Fatalf("Rows = %v", tbl.Rows)
	}
}

func TestReadDelimitedRaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\n1,2,3,4\n")
	tbl, err := readDelimited(data, ',')
	if err != nil {
		t.Fatalf("readDelimited: %v", err)
	}
	if tbl.Rows[0]["c"] != "" {
		t.Errorf("short row should pad missing cells, got %q", tbl.Rows[0]["c"])
	}
	if tbl.Rows[1]["c"] != "3" {
		t.Errorf("long row should keep header-covered cells, got %q", tbl.Rows[1]["c"])
	}
}

func TestWriteDelimitedHeaderOrder(t *testing.T) {
	tbl := NewTable("full_name", "phone")
	tbl.Add(Row{"full_name": "Jane", "phone": "555"})
	tbl.Add(Row{"full_name": "John", "email": "j@x.y"})

	var buf bytes.Buffer
	if err := writeDelimited(&buf, tbl, ','); err != nil {
		t.Fatalf("writeDelimited: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "full_name,phone,email" {
		t.Fatalf("header union out of order: %q", lines[0])
	}
	if lines[2] != "John,,j@x.y" {
		t.Fatalf("missing cells should be empty: %q", lines[2])
	}
}

func TestDelimitedRoundTrip(t *testing.T) {
	tbl := NewTable("name", "note")
	tbl.Add(Row{"name": "Quote \"me\"", "note": "has, comma"})

	var buf bytes.Buffer
	if err := writeDelimited(&buf, tbl, ','); err != nil {
		t.Fatalf("writeDelimited: %v", err)
	}
	back, err := readDelimited(buf.Bytes(), ',')
	if err != nil {
		t.Fatalf("readDelimited: %v", err)
	}
	if !reflect.DeepEqual(back.Rows, tbl.Rows) {
		t.Fatalf("round trip rows = %v, want %v", back.Rows, tbl.Rows)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	tbl := NewTable("full_name", "phone")
	tbl.Add(Row{"full_name": "Jane", "phone": "555"})
	tbl.Add(Row{"full_name": "John", "phone": "666"})

	var buf bytes.Buffer
	if err := writeXLSX(&buf, tbl); err != nil {
		t.Fatalf("writeXLSX: %v", err)
	}
	back, err := readXLSX(buf.Bytes())
	if err != nil {
		t.Fatalf("readXLSX: %v", err)
	}
	if !reflect.DeepEqual(back.Headers, tbl.Headers) {
		t.Fatalf("Headers = %v, want %v", back.Headers, tbl.Headers)
	}
	if !reflect.DeepEqual(back.Rows, tbl.Rows) {
		t.Fatalf("Rows = %v, want %v", back.Rows, tbl.Rows)
	}
}

func TestReadWriteFileRouting(t *testing.T) {
	dir := t.TempDir()

	tbl := NewTable("full_name")
	tbl.Add(Row{"full_name": "Jane"})

	for _, name := range []string{"t.csv", "t.tsv", "t.txt", "t.xlsx"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, tbl); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		back, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		if back.Len() != 1 || back.Rows[0]["full_name"] != "Jane" {
			t.Fatalf("ReadFile(%s) rows = %v", name, back.Rows)
		}
	}
}

func TestUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.pdf")

	if _, err := ReadFile(path); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("ReadFile error = %v, want ErrUnsupportedExtension", err)
	}
	if err := WriteFile(path, NewTable()); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("WriteFile error = %v, want ErrUnsupportedExtension", err)
	}
	// Fail-fast contract: no partial output file.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("unsupported target must not create a file")
	}

	if SupportedExtension(path) {
		t.Fatal("SupportedExtension(.pdf) = true")
	}
	if !SupportedExtension("x.XLSX") {
		t.Fatal("SupportedExtension should be case-insensitive")
	}
}
