package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"two\nlines", "two lines"},
		{"crlf\r\nline", "crlf line"},
		{"indented\n\t\tcontinuation", "indented continuation"},
		{"many\n\n\t\n breaks", "many  breaks"},
		{"tab\tseparated", "tab separated"},
		{"spaces  stay", "spaces  stay"},
		{"ünïcödé\ntext", "ünïcödé text"},
		{"*bold*\nstays", "*bold* stays"},
	}
	for _, test := range tests {
		if got := Format(test.input); got != test.want {
			t.Errorf("Format(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestInline(t *testing.T) {
	tests := []struct {
		input string
		want  []Span
	}{
		{"", nil},
		{"plain", []Span{{Text: "plain"}}},
		{"a *b* c", []Span{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}}},
		{"*all bold*", []Span{{Text: "all bold", Bold: true}}},
		{"open *to the end", []Span{{Text: "open "}, {Text: "to the end", Bold: true}}},
		{"dangling*", []Span{{Text: "dangling"}, {Text: "", Bold: true}}},
		{"empty ** span", []Span{{Text: "empty "}, {Text: "", Bold: true}, {Text: " span"}}},
		{"*a**b*", []Span{{Text: "a", Bold: true}, {Text: "b", Bold: true}}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, Inline(test.input)); diff != "" {
			t.Errorf("Inline(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}
