package vcard

import (
	"reflect"
	"testing"
)

func TestUnfoldLines(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"no folding",
			[]string{"FN:Jane", "TEL:555"},
			[]string{"FN:Jane", "TEL:555"},
		},
		{
			// Exactly one leading whitespace char is consumed and
			// nothing is inserted in its place.
			"space continuation",
			[]string{"NOTE:first part", " second part"},
			[]string{"NOTE:first partsecond part"},
		},
		{
			"tab continuation",
			[]string{"NOTE:first", "\tsecond"},
			[]string{"NOTE:firstsecond"},
		},
		{
			"only one leading whitespace char is consumed",
			[]string{"NOTE:a", "  b"},
			[]string{"NOTE:a b"},
		},
		{
			"multiple continuations",
			[]string{"NOTE:a", " b", " c", "FN:x"},
			[]string{"NOTE:abc", "FN:x"},
		},
		{
			"leading continuation is dropped",
			[]string{" orphan", "FN:x"},
			[]string{"FN:x"},
		},
		{
			"empty input",
			nil,
			[]string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UnfoldLines(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("UnfoldLines(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
