// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// EnumKind identifies the ordering scheme of a list.
type EnumKind int

const (
	None       EnumKind = iota // None marks an unordered list
	Numeric                    // 1. 2. 3.
	Roman                      // I. II. III.
	Alphabetic                 // a. b. c.
)

var kindName = map[EnumKind]string{
	None:       "none",
	Numeric:    "numeric",
	Roman:      "roman",
	Alphabetic: "alphabetic",
}

func (k EnumKind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}
	return fmt.Sprintf("EnumKind(%d)", int(k))
}

// Enumerator is the ordering scheme of a list token.
type Enumerator struct {
	Kind  EnumKind
	Upper bool // uppercase roman or alphabetic enumerator
}

// Compatible reports whether items enumerated by e and o may be siblings.
// A single roman letter such as I or V cannot be told apart from an
// alphabetic enumerator, so alphabetic and roman enumerators of the same
// case are compatible.
func (e Enumerator) Compatible(o Enumerator) bool {
	if e == o {
		return true
	}
	if e.Upper != o.Upper {
		return false
	}
	return e.Kind == Alphabetic && o.Kind == Roman || e.Kind == Roman && o.Kind == Alphabetic
}

func (e Enumerator) String() string {
	switch e.Kind {
	case Roman, Alphabetic:
		if e.Upper {
			return "upper " + e.Kind.String()
		}
		return "lower " + e.Kind.String()
	}
	return e.Kind.String()
}

// ListToken is the marker shared by the items of a list.
type ListToken struct {
	// Wrapper is the terminator following the enumerator, or the bullet
	// symbol of an unordered list.
	Wrapper    string
	Enumerator Enumerator
}

// Ordered reports whether t enumerates its items.
func (t ListToken) Ordered() bool {
	return t.Enumerator.Kind != None
}

// Compatible reports whether t and o may mark items of the same list.
func (t ListToken) Compatible(o ListToken) bool {
	return t.Enumerator.Compatible(o.Enumerator)
}

// Label wraps the enumerator text enum in the token's wrapper.
// Unordered tokens ignore enum.
func (t ListToken) Label(enum string) string {
	if !t.Ordered() {
		return t.Wrapper
	}
	return enum + t.Wrapper
}

func (t ListToken) String() string {
	if !t.Ordered() {
		return fmt.Sprintf("%q bullet", t.Wrapper)
	}
	return fmt.Sprintf("%s %q", t.Enumerator, t.Wrapper)
}

const (
	bullets       = "-+*"
	romanNumerals = "IVXLCDM"
)

// markerGrammar is the participle grammar for list markers.
// Examples: "-", "+", "*", "1.", "12)", "a-", "B.", "iv)", "XII."
//
//nolint:govet // participle grammar tags are not standard struct tags
type markerGrammar struct {
	Bullet string      `parser:"@(\"-\" | \"+\" | \"*\")"`
	Enum   *enumerated `parser:"| @@"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type enumerated struct {
	Value      string `parser:"@(Digits | Letters)"`
	Terminator string `parser:"@(\".\" | \")\" | \"-\")"`
}

// markerLexer tokenizes the line a marker may start. Every byte falls into
// some rule so that text trailing the marker never fails to lex.
var markerLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Digits", Pattern: `[0-9]+`},
	{Name: "Letters", Pattern: `\p{L}+`},
	{Name: "Punct", Pattern: `[-+*.)]`},
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Other", Pattern: `[^-+*.)0-9\p{L} \t]+`},
})

var markerParser = participle.MustBuild[markerGrammar](
	participle.Lexer(markerLexer),
)

// Recognize classifies the list marker at the start of s and reports the
// number of bytes it occupies. Alternatives are tried in order: bullet,
// numeric, alphabetic, roman. A marker must be followed by white space or
// the end of input.
func Recognize(s string) (ListToken, int, bool) {
	line := s
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		line = s[:i]
	}
	if line == "" || !strings.ContainsAny(line[:1], bullets+"0123456789") && !startsWithLetter(line) {
		return ListToken{}, 0, false
	}
	g, err := markerParser.ParseString("", line, participle.AllowTrailing(true))
	if err != nil {
		return ListToken{}, 0, false
	}
	t, n, ok := classify(g)
	if !ok || !spaceOrEnd(s[n:]) {
		return ListToken{}, 0, false
	}
	return t, n, true
}

// classify interprets a parsed marker.
func classify(g *markerGrammar) (ListToken, int, bool) {
	if g.Bullet != "" {
		return ListToken{Wrapper: g.Bullet}, len(g.Bullet), true
	}
	e := g.Enum
	if e == nil || e.Value == "" {
		return ListToken{}, 0, false
	}
	t := ListToken{Wrapper: e.Terminator}
	r, _ := utf8.DecodeRuneInString(e.Value)
	switch {
	case unicode.IsDigit(r):
		t.Enumerator = Enumerator{Kind: Numeric}
	case utf8.RuneCountInString(e.Value) == 1:
		t.Enumerator = Enumerator{Kind: Alphabetic, Upper: unicode.IsUpper(r)}
	case isRoman(e.Value):
		t.Enumerator = Enumerator{Kind: Roman, Upper: unicode.IsUpper(r)}
	default:
		return ListToken{}, 0, false
	}
	return t, len(e.Value) + len(e.Terminator), true
}

// isRoman reports whether every character of s is a roman numeral of the same case.
func isRoman(s string) bool {
	set := romanNumerals
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsLower(r) {
		set = strings.ToLower(romanNumerals)
	}
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func spaceOrEnd(s string) bool {
	return s == "" || strings.ContainsRune(" \t\r\n", rune(s[0]))
}
