// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "strings"

// MaxRoman is the largest number written with standard roman numerals.
const MaxRoman = 3999

var numerals = []struct {
	val int
	sym string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// FormatRoman converts n to a roman numeral. It reports false if n is
// outside 1 through MaxRoman.
func FormatRoman(n int, upper bool) (string, bool) {
	if n < 1 || n > MaxRoman {
		return "", false
	}
	var b strings.Builder
	for _, num := range numerals {
		for n >= num.val {
			b.WriteString(num.sym)
			n -= num.val
		}
	}
	if !upper {
		return strings.ToLower(b.String()), true
	}
	return b.String(), true
}
