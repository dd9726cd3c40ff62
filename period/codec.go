// SPDX-License-Identifier: MIT

package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcal/timeunit"
)

// String returns "<UNIT>#<id>" with an "@<offset>" suffix for non-zero offsets.
func (p Period) String() string {
	if p.offset == 0 {
		return fmt.Sprintf("%s#%d", p.unit, p.id)
	}

	return fmt.Sprintf("%s#%d@%d", p.unit, p.id, p.offset)
}

// Parse is the inverse of Period.String.
func Parse(text string) (Period, error) {
	hash := strings.IndexByte(text, '#')
	if hash < 0 {
		return Period{}, &ParseError{Text: text, Offset: len(text), Err: fmt.Errorf("missing '#': %w", ErrParse)}
	}

	unit, err := timeunit.Parse(text[:hash])
	if err != nil {
		off := 0
		var ue *timeunit.ParseError
		if errors.As(err, &ue) {
			off = ue.Offset
		}
		return Period{}, &ParseError{Text: text, Offset: off, Err: fmt.Errorf("%v: %w", err, ErrParse)}
	}

	rest := text[hash+1:]
	idText, offText, hasOffset := strings.Cut(rest, "@")
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return Period{}, &ParseError{Text: text, Offset: hash + 1, Err: fmt.Errorf("bad id %q: %w", idText, ErrParse)}
	}
	offset := 0
	if hasOffset {
		offAt := hash + 1 + len(idText) + 1
		if offset, err = strconv.Atoi(offText); err != nil {
			return Period{}, &ParseError{Text: text, Offset: offAt, Err: fmt.Errorf("bad offset %q: %w", offText, ErrParse)}
		}
	}

	return Period{offset: offset, unit: unit, id: id}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("MarshalText: %w", ErrInvalidUnit)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}
