// SPDX-License-Identifier: MIT

package period

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcal/internal/civil"
	"github.com/katalvlaran/lvcal/timeunit"
)

// Epoch is the origin of every period id.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Period is one step of a unit, identified relative to Epoch and an offset.
// Periods are immutable values; == compares all three components.
type Period struct {
	offset int
	unit   timeunit.Unit
	id     int64
}

// unitsBetween returns the floored number of whole base fields from Epoch to t.
func unitsBetween(field timeunit.Field, t time.Time) int64 {
	switch field {
	case timeunit.Year:
		return int64(t.Year()) - 1970
	case timeunit.Month:
		return (int64(t.Year())-1970)*12 + int64(t.Month()) - 1
	case timeunit.Week:
		return civil.FloorDiv(civil.DayOf(t), 7)
	case timeunit.Day:
		return civil.DayOf(t)
	default:
		return civil.FloorDiv(civil.MillisOf(t), field.Millis())
	}
}

// addUnits returns Epoch advanced by n base fields.
func addUnits(field timeunit.Field, n int64) time.Time {
	switch field {
	case timeunit.Year:
		return time.Date(1970+int(n), time.January, 1, 0, 0, 0, 0, time.UTC)
	case timeunit.Month:
		y := 1970 + civil.FloorDiv(n, 12)
		m := civil.FloorMod(n, 12) + 1
		return time.Date(int(y), time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	case timeunit.Week:
		return civil.TimeOf(7 * n)
	case timeunit.Day:
		return civil.TimeOf(n)
	default:
		return civil.TimeOfMillis(n * field.Millis())
	}
}

// wall returns t's wall-clock reading as a UTC instant.
func wall(t time.Time) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()

	return time.Date(y, m, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// IDAt returns the id of the period of unit containing t, relative to offset.
func IDAt(offset int, unit timeunit.Unit, t time.Time) int64 {
	return civil.FloorDiv(unitsBetween(unit.Field(), t), int64(unit.Amount())) - int64(offset)
}

// DateAt returns the start of period id of unit, relative to offset.
func DateAt(offset int, unit timeunit.Unit, id int64) time.Time {
	return addUnits(unit.Field(), int64(unit.Amount())*(id+int64(offset)))
}

// New returns the period (offset, unit, id).
// Errors: ErrInvalidUnit.
func New(offset int, unit timeunit.Unit, id int64) (Period, error) {
	if unit.IsZero() {
		return Period{}, fmt.Errorf("New: %w", ErrInvalidUnit)
	}

	return Period{offset: offset, unit: unit, id: id}, nil
}

// Of returns the period of unit containing t, with offset 0.
func Of(unit timeunit.Unit, t time.Time) (Period, error) { return At(0, unit, t) }

// OfID returns period id of unit, with offset 0.
func OfID(unit timeunit.Unit, id int64) (Period, error) { return New(0, unit, id) }

// At returns the period of unit containing t, relative to offset.
func At(offset int, unit timeunit.Unit, t time.Time) (Period, error) {
	if unit.IsZero() {
		return Period{}, fmt.Errorf("At: %w", ErrInvalidUnit)
	}

	return Period{offset: offset, unit: unit, id: IDAt(offset, unit, t)}, nil
}

// Must panics if err is non-nil and returns p otherwise.
func Must(p Period, err error) Period {
	if err != nil {
		panic(err)
	}

	return p
}

// ID returns the period id.
func (p Period) ID() int64 { return p.id }

// Offset returns the offset in periods.
func (p Period) Offset() int { return p.offset }

// Unit returns the period unit.
func (p Period) Unit() timeunit.Unit { return p.unit }

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool { return p.unit.IsZero() }

// Start returns the first instant of p.
func (p Period) Start() time.Time { return DateAt(p.offset, p.unit, p.id) }

// End returns the first instant after p.
func (p Period) End() time.Time { return DateAt(p.offset, p.unit, p.id+1) }

// Contains reports whether t falls within [Start, End).
func (p Period) Contains(t time.Time) bool {
	return IDAt(p.offset, p.unit, t) == p.id
}

// Plus returns the period n steps after p.
func (p Period) Plus(n int64) Period {
	p.id += n
	return p
}

// WithDate returns the period of p's unit and offset containing t.
func (p Period) WithDate(t time.Time) Period {
	p.id = IDAt(p.offset, p.unit, t)
	return p
}

// Rebase returns the period starting at p.Start() expressed relative to offset.
func (p Period) Rebase(offset int) Period {
	if offset == p.offset {
		return p
	}

	return Period{offset: offset, unit: p.unit, id: IDAt(offset, p.unit, p.Start())}
}

// alignedID returns q's id rebased onto p's offset.
// Errors: ErrIncompatibleUnit.
func (p Period) alignedID(q Period) (int64, error) {
	if p.unit != q.unit {
		return 0, fmt.Errorf("%s vs %s: %w", p.unit, q.unit, ErrIncompatibleUnit)
	}

	return q.Rebase(p.offset).id, nil
}

// Until returns the signed number of periods from p to q.
// Errors: ErrIncompatibleUnit.
func (p Period) Until(q Period) (int64, error) {
	id, err := p.alignedID(q)
	if err != nil {
		return 0, fmt.Errorf("Until: %w", err)
	}

	return id - p.id, nil
}

// Compare returns -1, 0 or +1 as p is before, equal to or after q.
// Errors: ErrIncompatibleUnit.
func (p Period) Compare(q Period) (int, error) {
	id, err := p.alignedID(q)
	if err != nil {
		return 0, fmt.Errorf("Compare: %w", err)
	}
	switch {
	case p.id < id:
		return -1, nil
	case p.id > id:
		return 1, nil
	default:
		return 0, nil
	}
}

// AnnualPosition returns the position of p within its year (0 = first period)
// for month-aligned units dividing a year. ok is false otherwise.
func (p Period) AnnualPosition() (pos int, ok bool) {
	freq := p.unit.AnnualFrequency()
	if freq <= 0 || !p.unit.IsMonthAligned() {
		return 0, false
	}

	return int(civil.FloorMod(p.id+int64(p.offset), freq)), true
}

// Year returns the calendar year of p.Start().
func (p Period) Year() int { return p.Start().Year() }
