// SPDX-License-Identifier: MIT

package timeunit

import (
	"fmt"
	"math"
	"time"
)

// Field is the base chrono field of a Unit, ordered from finest to coarsest.
type Field int

const (
	Millisecond Field = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// MaxAmount bounds Unit amounts so that every millisecond product stays in int64.
const MaxAmount = 1 << 24

// Ratio sentinels returned by Unit.Ratio.
const (
	// NoStrictRatio means the other unit is not an integral multiple.
	NoStrictRatio int64 = 0
	// NoRatio means the other unit is strictly smaller.
	NoRatio int64 = -1
)

// fieldMillis holds approximate field lengths in milliseconds.
// A year is 365.2425 days and a month one twelfth of it.
var fieldMillis = [...]int64{
	Millisecond: 1,
	Second:      1_000,
	Minute:      60_000,
	Hour:        3_600_000,
	Day:         86_400_000,
	Week:        604_800_000,
	Month:       2_629_746_000,
	Year:        31_556_952_000,
}

var fieldNames = [...]string{
	Millisecond: "Millisecond",
	Second:      "Second",
	Minute:      "Minute",
	Hour:        "Hour",
	Day:         "Day",
	Week:        "Week",
	Month:       "Month",
	Year:        "Year",
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool { return f >= Millisecond && f <= Year }

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}

	return fieldNames[f]
}

// Millis returns the approximate length of one f in milliseconds.
func (f Field) Millis() int64 { return fieldMillis[f] }

// Unit is an amount of a base Field. The zero value is not a valid unit.
type Unit struct {
	amount int
	field  Field
}

// Canonical units.
var (
	Yearly     = Unit{1, Year}
	HalfYearly = Unit{6, Month}
	Quarterly  = Unit{3, Month}
	Bimonthly  = Unit{2, Month}
	Monthly    = Unit{1, Month}
	Weekly     = Unit{1, Week}
	Daily      = Unit{1, Day}
	Hourly     = Unit{1, Hour}
	Minutely   = Unit{1, Minute}
	Secondly   = Unit{1, Second}
)

// Of returns the unit of amount fields.
// Errors: ErrInvalidAmount, ErrInvalidField.
func Of(amount int, field Field) (Unit, error) {
	if !field.Valid() {
		return Unit{}, fmt.Errorf("Of(%d, %d): %w", amount, int(field), ErrInvalidField)
	}
	if amount < 1 || amount > MaxAmount {
		return Unit{}, fmt.Errorf("Of(%d, %s): %w", amount, field, ErrInvalidAmount)
	}

	return Unit{amount: amount, field: field}, nil
}

// MustOf is Of that panics on error. Intended for package-level declarations.
func MustOf(amount int, field Field) Unit {
	u, err := Of(amount, field)
	if err != nil {
		panic(err)
	}

	return u
}

// Amount returns the number of base fields in u.
func (u Unit) Amount() int { return u.amount }

// Field returns the base field of u.
func (u Unit) Field() Field { return u.field }

// IsZero reports whether u is the invalid zero Unit.
func (u Unit) IsZero() bool { return u.amount == 0 }

// IsCalendar reports whether u is made of whole days (Day or coarser).
func (u Unit) IsCalendar() bool { return u.field >= Day }

// IsMonthAligned reports whether u is built on months or years, so that its
// boundaries always fall on the first day of a month.
func (u Unit) IsMonthAligned() bool { return u.field == Month || u.field == Year }

// Millis returns the approximate length of u in milliseconds.
func (u Unit) Millis() int64 { return int64(u.amount) * fieldMillis[u.field] }

// Duration returns the approximate length of u, saturating at the largest
// representable time.Duration.
func (u Unit) Duration() time.Duration {
	ms := u.Millis()
	if ms > math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ms) * time.Millisecond
}

// Ratio returns how many u fit in one other.
//
//	Quarterly.Ratio(Yearly) == 4
//	Monthly.Ratio(Weekly)   == NoStrictRatio  // not integral
//	Yearly.Ratio(Monthly)   == NoRatio        // other is smaller
//
// Integrality is checked first; a smaller other that does not divide u
// evenly is reported as NoStrictRatio.
func (u Unit) Ratio(other Unit) int64 {
	a, b := u.Millis(), other.Millis()
	if a == 0 || b == 0 {
		return NoStrictRatio
	}
	if b >= a {
		if b%a != 0 {
			return NoStrictRatio
		}

		return b / a
	}
	if a%b != 0 {
		return NoStrictRatio
	}

	return NoRatio
}

// AnnualFrequency returns the number of u in a year, or a ratio sentinel
// when u does not divide a year.
func (u Unit) AnnualFrequency() int64 { return u.Ratio(Yearly) }

// HasAnnualFrequency reports whether u divides a year exactly.
func (u Unit) HasAnnualFrequency() bool { return u.AnnualFrequency() > 0 }
