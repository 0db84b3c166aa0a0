package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matthewdargan/aldoc/scan"
)

var (
	hyphen     = scan.ListToken{Wrapper: "-"}
	plus       = scan.ListToken{Wrapper: "+"}
	numbered   = scan.ListToken{Wrapper: ".", Enumerator: scan.Enumerator{Kind: scan.Numeric}}
	lowerAlpha = scan.ListToken{Wrapper: ")", Enumerator: scan.Enumerator{Kind: scan.Alphabetic}}
	upperRoman = scan.ListToken{Wrapper: ".", Enumerator: scan.Enumerator{Kind: scan.Roman, Upper: true}}
	upperAlpha = scan.ListToken{Wrapper: ".", Enumerator: scan.Enumerator{Kind: scan.Alphabetic, Upper: true}}
)

func items(texts ...string) []ListItem {
	var items []ListItem
	for _, s := range texts {
		items = append(items, ListItem{Text: s})
	}
	return items
}

type listTest struct {
	name  string
	input string
	depth int
	list  List
	rest  string
}

var listTests = []listTest{
	{
		"single item",
		"- only", 0,
		List{Token: hyphen, Items: items("only")},
		"",
	},
	{
		"flat bullets",
		"+ one\n+ two\n+ three", 0,
		List{Token: plus, Items: items("one", "two", "three")},
		"",
	},
	{
		"nested",
		"- A\n\t- B\n\t- C\n- D", 0,
		List{Token: hyphen, Items: []ListItem{
			{Text: "A", List: &List{Token: hyphen, Items: items("B", "C")}},
			{Text: "D"},
		}},
		"",
	},
	{
		"roman",
		"I. first\nII. second\nIII. third", 0,
		List{Token: upperRoman, Items: items("first", "second", "third")},
		"",
	},
	{
		"alphabetic stays alphabetic",
		"A. first\nB. second\nC. third", 0,
		List{Token: upperAlpha, Items: items("first", "second", "third")},
		"",
	},
	{
		"mixed nesting",
		"1. fruit\n\ta) apple\n\tb) pear\n2. vegetables\n\t- leek\n\t\t- long\n3. nothing", 0,
		List{Token: numbered, Items: []ListItem{
			{Text: "fruit", List: &List{Token: lowerAlpha, Items: items("apple", "pear")}},
			{Text: "vegetables", List: &List{Token: hyphen, Items: []ListItem{
				{Text: "leek", List: &List{Token: hyphen, Items: items("long")}},
			}}},
			{Text: "nothing"},
		}},
		"",
	},
	{
		"continuation lines",
		"- a long\n\titem *text*\n- b", 0,
		List{Token: hyphen, Items: items("a long item *text*", "b")},
		"",
	},
	{
		"incompatible marker joins the item",
		"- a\n1. b", 0,
		List{Token: hyphen, Items: items("a 1. b")},
		"",
	},
	{
		"blank line ends the list",
		"- a\n- b\n\nparagraph", 0,
		List{Token: hyphen, Items: items("a", "b")},
		"paragraph",
	},
	{
		"empty item",
		"-\n- b", 0,
		List{Token: hyphen, Items: items("", "b")},
		"",
	},
	{
		"nested list without item text",
		"-\n\t- inner", 0,
		List{Token: hyphen, Items: []ListItem{
			{Text: "", List: &List{Token: hyphen, Items: items("inner")}},
		}},
		"",
	},
	{
		"depth one",
		"\t- x\n\t- y", 1,
		List{Token: hyphen, Items: items("x", "y")},
		"",
	},
	{
		"deeper indentation is text",
		"- a\n\t\t- b", 0,
		List{Token: hyphen, Items: items("a - b")},
		"",
	},
}

func TestParseList(t *testing.T) {
	for _, test := range listTests {
		list, rest, ok := ParseList(test.input, test.depth)
		if !ok {
			t.Errorf("%s: no list found", test.name)
			continue
		}
		if diff := cmp.Diff(test.list, list); diff != "" {
			t.Errorf("%s: list mismatch (-want +got):\n%s", test.name, diff)
		}
		if rest != test.rest {
			t.Errorf("%s: rest = %q, want %q", test.name, rest, test.rest)
		}
	}
}

func TestParseListNoMatch(t *testing.T) {
	for _, input := range []string{
		"",
		"plain text",
		"\t- indented at depth 0",
		"-no space",
		"1.5 is a number",
		"Mix. of words",
	} {
		if l, rest, ok := ParseList(input, 0); ok {
			t.Errorf("ParseList(%q) = %+v, %q; want no list", input, l, rest)
		}
	}
	if _, _, ok := ParseList("- x", 1); ok {
		t.Error("ParseList found a depth 0 item at depth 1")
	}
}
