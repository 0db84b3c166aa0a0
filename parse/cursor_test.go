package parse

import "testing"

func TestCursorTag(t *testing.T) {
	c := cursor{input: "\t\t- x"}
	next, ok := c.tag("\t")
	if !ok || next.pos != 1 {
		t.Fatalf("tag(tab) = %d, %t; want 1, true", next.pos, ok)
	}
	if c.pos != 0 {
		t.Fatalf("tag moved the receiver to %d", c.pos)
	}
	if _, ok := c.tag("-"); ok {
		t.Fatal("tag(-) matched at a tab")
	}
}

func TestCursorCount(t *testing.T) {
	tests := []struct {
		input string
		n     int
		pos   Pos
		ok    bool
	}{
		{"- x", 0, 0, true},
		{"\t- x", 1, 1, true},
		{"\t\t- x", 2, 2, true},
		{"\t- x", 2, 0, false},
		{"", 1, 0, false},
	}
	for _, test := range tests {
		c, ok := cursor{input: test.input}.count("\t", test.n)
		if ok != test.ok || c.pos != test.pos {
			t.Errorf("count(%q, %d) = %d, %t; want %d, %t", test.input, test.n, c.pos, ok, test.pos, test.ok)
		}
	}
}

func TestCursorAcceptRun(t *testing.T) {
	c := cursor{input: "\n\t\n\tx"}.acceptRun("\n\t")
	if c.pos != 4 || c.peek() != 'x' {
		t.Fatalf("acceptRun stopped at %d (%q)", c.pos, c.peek())
	}
	if c := (cursor{input: "\t"}).acceptRun("\t"); !c.atEOF() || c.peek() != eof {
		t.Fatalf("acceptRun did not reach the end: %d", c.pos)
	}
}

func TestCursorTakeUntil(t *testing.T) {
	c := cursor{input: "héllo, world"}
	s, c := c.takeUntil(func(c cursor) bool { return c.peek() == ',' })
	if s != "héllo" || c.rest() != ", world" {
		t.Fatalf("takeUntil = %q, rest %q", s, c.rest())
	}
	s, c = c.takeUntil(func(cursor) bool { return false })
	if s != ", world" || !c.atEOF() {
		t.Fatalf("takeUntil to end = %q, rest %q", s, c.rest())
	}
}

func TestCursorNextLine(t *testing.T) {
	c, ok := cursor{input: "a\nb\n"}.nextLine()
	if !ok || c.rest() != "b\n" {
		t.Fatalf("nextLine = %q, %t", c.rest(), ok)
	}
	c, ok = c.nextLine()
	if !ok || !c.atEOF() {
		t.Fatalf("nextLine = %q, %t", c.rest(), ok)
	}
	if _, ok := c.nextLine(); ok {
		t.Fatal("nextLine past the last line")
	}
}
