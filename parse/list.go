package parse

import (
	"strings"

	"github.com/matthewdargan/aldoc/scan"
)

// Indent is one unit of list indentation.
const Indent = "\t"

// ParseList parses a list whose items are indented by depth units at the
// start of input. It returns the list and the input following it, or false
// if input does not start with a list item at that depth.
func ParseList(input string, depth int) (List, string, bool) {
	l, c, ok := parseList(cursor{input: input}, depth)
	if !ok {
		return List{}, input, false
	}
	return l, c.rest(), true
}

// parseList parses consecutive items at depth. The first item fixes the
// token every following item must be compatible with.
func parseList(c cursor, depth int) (List, cursor, bool) {
	token, _, ok := itemStart(c, depth)
	if !ok {
		return List{}, c, false
	}
	l := List{Token: token}
	for {
		item, next, ok := parseItem(c, depth, &l.Token)
		if !ok {
			break
		}
		l.Items = append(l.Items, item)
		c = next
	}
	if len(l.Items) == 0 {
		return List{}, c, false
	}
	c, _ = c.tag("\n")
	return l, c, true
}

// itemStart matches depth indentation units followed by a list marker.
func itemStart(c cursor, depth int) (scan.ListToken, cursor, bool) {
	c, ok := c.count(Indent, depth)
	if !ok {
		return scan.ListToken{}, c, false
	}
	t, n, ok := scan.Recognize(c.rest())
	if !ok {
		return scan.ListToken{}, c, false
	}
	return t, c.advance(n), true
}

// parseItem parses one item at depth whose marker is compatible with token.
// An alphabetic token meeting a roman sibling becomes roman, so a list
// opened by "I." continues with "II.".
func parseItem(c cursor, depth int, token *scan.ListToken) (ListItem, cursor, bool) {
	t, c, ok := itemStart(c, depth)
	if !ok || !token.Compatible(t) {
		return ListItem{}, c, false
	}
	if token.Enumerator.Kind == scan.Alphabetic && t.Enumerator.Kind == scan.Roman {
		token.Enumerator = t.Enumerator
	}
	content, c := c.takeUntil(func(c cursor) bool {
		return itemEnd(c, depth, *token)
	})
	c, _ = c.tag("\n")

	var item ListItem
	text := content
	if sub, ok := nestedStart(cursor{input: content}, depth+1); ok {
		// Sub-lists are not backtracked: the first nested marker decides.
		if l, _, ok := parseList(sub, depth+1); ok {
			text = content[:sub.pos]
			item.List = &l
		}
	}
	item.Text = Format(strings.TrimSpace(text))
	return item, c, true
}

// itemEnd reports whether the content of an item ends at c: a blank line,
// or a line starting a compatible item at the same depth.
func itemEnd(c cursor, depth int, token scan.ListToken) bool {
	after, ok := c.tag("\n")
	if !ok {
		return false
	}
	if after.peek() == '\n' {
		return true
	}
	t, _, ok := itemStart(after, depth)
	return ok && token.Compatible(t)
}

// nestedStart finds the first line after the current one that starts a
// list item at depth.
func nestedStart(c cursor, depth int) (cursor, bool) {
	for {
		var ok bool
		if c, ok = c.nextLine(); !ok {
			return c, false
		}
		if _, _, ok := itemStart(c, depth); ok {
			return c, true
		}
	}
}
