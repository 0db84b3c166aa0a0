package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every structural error in aldoc source.
	ErrSyntax = errors.New("syntax error")
	// ErrSkippedHeadingLevel indicates a heading more than one level below its predecessor.
	ErrSkippedHeadingLevel = fmt.Errorf("%w: skipped heading level", ErrSyntax)
)

// SkippedHeadingLevelError reports a heading whose level jumps by more than
// one from the previous heading.
type SkippedHeadingLevelError struct {
	Name string // name of the input, may be empty
	Line int    // line of the offending heading
	From int    // level of the previous heading
	To   int    // level of the offending heading
}

func (e *SkippedHeadingLevelError) Error() string {
	msg := fmt.Sprintf("skipped a heading level: went from level %d to level %d", e.From, e.To)
	if e.Name != "" {
		return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, msg)
}

func (e *SkippedHeadingLevelError) Unwrap() error {
	return ErrSkippedHeadingLevel
}
