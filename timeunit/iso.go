// SPDX-License-Identifier: MIT

package timeunit

import (
	"fmt"
	"strconv"
)

// String returns the ISO-8601-like duration text of u.
func (u Unit) String() string {
	switch u.field {
	case Year:
		return fmt.Sprintf("P%dY", u.amount)
	case Month:
		return fmt.Sprintf("P%dM", u.amount)
	case Week:
		return fmt.Sprintf("P%dW", u.amount)
	case Day:
		return fmt.Sprintf("P%dD", u.amount)
	case Hour:
		return fmt.Sprintf("PT%dH", u.amount)
	case Minute:
		return fmt.Sprintf("PT%dM", u.amount)
	case Second:
		return fmt.Sprintf("PT%dS", u.amount)
	case Millisecond:
		return fmt.Sprintf("PT%d.%03dS", u.amount/1000, u.amount%1000)
	default:
		return fmt.Sprintf("Unit(%d, %s)", u.amount, u.field)
	}
}

// Parse reads a single-designator duration: PnY, PnM, PnW, PnD, PTnH, PTnM,
// PTnS or PTn.fffS. A fractional second yields a Millisecond unit with at
// most three fraction digits.
func Parse(text string) (Unit, error) {
	pos := 0
	if pos >= len(text) || text[pos] != 'P' {
		return Unit{}, parseErrorf(text, pos, "expected 'P'")
	}
	pos++
	timePart := false
	if pos < len(text) && text[pos] == 'T' {
		timePart = true
		pos++
	}

	intStart := pos
	for pos < len(text) && isDigit(text[pos]) {
		pos++
	}
	if pos == intStart {
		return Unit{}, parseErrorf(text, pos, "expected digits")
	}
	whole, err := strconv.Atoi(text[intStart:pos])
	if err != nil {
		return Unit{}, parseErrorf(text, intStart, "amount out of range")
	}

	frac, fracDigits := 0, 0
	if pos < len(text) && text[pos] == '.' {
		if !timePart {
			return Unit{}, parseErrorf(text, pos, "fraction only allowed on seconds")
		}
		pos++
		fracStart := pos
		for pos < len(text) && isDigit(text[pos]) {
			pos++
		}
		fracDigits = pos - fracStart
		if fracDigits == 0 || fracDigits > 3 {
			return Unit{}, parseErrorf(text, fracStart, "expected 1 to 3 fraction digits")
		}
		frac, _ = strconv.Atoi(text[fracStart:pos])
		for k := fracDigits; k < 3; k++ {
			frac *= 10
		}
	}

	if pos >= len(text) {
		return Unit{}, parseErrorf(text, pos, "missing designator")
	}
	designator := text[pos]
	designatorAt := pos
	pos++
	if pos != len(text) {
		return Unit{}, parseErrorf(text, pos, "trailing characters %q", text[pos:])
	}

	var field Field
	amount := whole
	switch {
	case !timePart && designator == 'Y':
		field = Year
	case !timePart && designator == 'M':
		field = Month
	case !timePart && designator == 'W':
		field = Week
	case !timePart && designator == 'D':
		field = Day
	case timePart && designator == 'H':
		field = Hour
	case timePart && designator == 'M':
		field = Minute
	case timePart && designator == 'S' && fracDigits > 0:
		field = Millisecond
		if whole > MaxAmount/1000 {
			return Unit{}, parseErrorf(text, intStart, "amount out of range")
		}
		amount = whole*1000 + frac
	case timePart && designator == 'S':
		field = Second
	default:
		return Unit{}, parseErrorf(text, designatorAt, "unexpected designator %q", designator)
	}

	u, err := Of(amount, field)
	if err != nil {
		return Unit{}, &ParseError{Text: text, Offset: intStart, Err: fmt.Errorf("%v: %w", err, ErrParse)}
	}

	return u, nil
}

// MustParse is Parse that panics on error.
func MustParse(text string) Unit {
	u, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return u
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if u.IsZero() {
		return nil, fmt.Errorf("MarshalText: %w", ErrInvalidAmount)
	}

	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = v

	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
