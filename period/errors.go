// SPDX-License-Identifier: MIT

package period

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleUnit indicates periods or domains of different units were combined.
	ErrIncompatibleUnit = errors.New("period: incompatible units")

	// ErrInvalidRange indicates a negative length or inverted bounds.
	ErrInvalidRange = errors.New("period: invalid range")

	// ErrInvalidUnit indicates the zero timeunit.Unit was used.
	ErrInvalidUnit = errors.New("period: invalid unit")

	// ErrOutOfRange indicates an index outside a domain.
	ErrOutOfRange = errors.New("period: index out of range")

	// ErrEmptyDomain indicates an operation that needs at least one period.
	ErrEmptyDomain = errors.New("period: empty domain")

	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("period: malformed period text")
)

// ParseError reports the offending text and the byte offset where parsing stopped.
type ParseError struct {
	Text   string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("period: cannot parse %q at offset %d: %v", e.Text, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
