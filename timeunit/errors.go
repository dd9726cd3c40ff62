// SPDX-License-Identifier: MIT

package timeunit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount indicates a non-positive or oversized unit amount.
	ErrInvalidAmount = errors.New("timeunit: amount must be in [1, MaxAmount]")

	// ErrInvalidField indicates a Field outside the known range.
	ErrInvalidField = errors.New("timeunit: unknown field")

	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("timeunit: malformed duration text")
)

// ParseError reports the offending text and the byte offset where parsing stopped.
type ParseError struct {
	Text   string // full input
	Offset int    // byte offset of the first offending character
	Err    error  // cause, always wraps ErrParse
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timeunit: cannot parse %q at offset %d: %v", e.Text, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseErrorf builds a *ParseError whose cause wraps ErrParse.
func parseErrorf(text string, offset int, format string, args ...any) error {
	return &ParseError{
		Text:   text,
		Offset: offset,
		Err:    fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParse),
	}
}
