package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/matthewdargan/aldoc/scan"
)

// ErrOrdinalRange is matched by every *OrdinalRangeError.
var ErrOrdinalRange = errors.New("ordinal out of range")

// OrdinalRangeError reports a list item whose position cannot be written
// with the enumerator of its list.
type OrdinalRangeError struct {
	Kind  scan.EnumKind
	Index int
	Max   int
}

func (e *OrdinalRangeError) Error() string {
	return fmt.Sprintf("cannot number item %d of a %s list: at most %d items", e.Index, e.Kind, e.Max)
}

func (e *OrdinalRangeError) Unwrap() error { return ErrOrdinalRange }

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Ordinal returns the enumerator text of the item at 1-based index in a
// list enumerated by e. Unordered lists have no enumerator text.
func Ordinal(e scan.Enumerator, index int) (string, error) {
	switch e.Kind {
	case scan.None:
		return "", nil
	case scan.Numeric:
		if index < 1 {
			return "", &OrdinalRangeError{Kind: e.Kind, Index: index}
		}
		return strconv.Itoa(index), nil
	case scan.Alphabetic:
		if index < 1 || index > len(alphabet) {
			return "", &OrdinalRangeError{Kind: e.Kind, Index: index, Max: len(alphabet)}
		}
		s := alphabet[index-1 : index]
		if e.Upper {
			s = string(s[0] - 'a' + 'A')
		}
		return s, nil
	case scan.Roman:
		s, ok := scan.FormatRoman(index, e.Upper)
		if !ok {
			return "", &OrdinalRangeError{Kind: e.Kind, Index: index, Max: scan.MaxRoman}
		}
		return s, nil
	}
	return "", fmt.Errorf("unknown enumerator %v", e)
}
