package vcard

import "testing"

func TestEscape(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "John Doe", "John Doe"},
		{"comma", "Acme, Inc", "Acme\\, Inc"},
		{"semicolon", "a;b", "a\\;b"},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"backslash before semicolon", `\;`, `\\\;`},
		{"untouched structural chars", "a:b@c[d]", "a:b@c[d]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Escape(tc.in); got != tc.want {
				t.Fatalf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "John Doe", "John Doe"},
		{"comma", `Acme\, Inc`, "Acme, Inc"},
		{"semicolon", `a\;b`, "a;b"},
		{"backslash", `a\\b`, `a\b`},
		{"newline lower", `one\ntwo`, "one\ntwo"},
		{"newline upper", `one\Ntwo`, "one\ntwo"},
		{"unknown escape preserved", `a\tb`, `a\tb`},
		{"trailing backslash preserved", `ab\`, `ab\`},
		{"escaped backslash then n stays literal", `a\\nb`, `a\nb`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Unescape(tc.in); got != tc.want {
				t.Fatalf("Unescape(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestUnescapeIsLeftInverseOfEscape(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a,b;c\nd",
		`back\slash`,
		`already\\escaped`,
		"Jl. Sudirman No. 5; Blok C, Jakarta",
		"trailing newline\n",
		";;;,,,\\\\",
	}
	for _, in := range inputs {
		if got := Unescape(Escape(in)); got != in {
			t.Errorf("Unescape(Escape(%q)) = %q, want input back", in, got)
		}
	}
}
