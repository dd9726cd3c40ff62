// SPDX-License-Identifier: MIT

package period

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcal/timeunit"
)

// Domain is the half-open span [start, start+length) of regularly spaced periods.
// Every period of a domain shares the unit and offset of its start.
type Domain struct {
	start  Period
	length int
}

// NewDomain returns the domain of length periods beginning at start.
// Errors: ErrInvalidRange (negative length), ErrInvalidUnit (zero start).
func NewDomain(start Period, length int) (Domain, error) {
	if start.IsZero() {
		return Domain{}, fmt.Errorf("NewDomain: %w", ErrInvalidUnit)
	}
	if length < 0 {
		return Domain{}, fmt.Errorf("NewDomain(length=%d): %w", length, ErrInvalidRange)
	}

	return Domain{start: start, length: length}, nil
}

// DomainBetween returns the periods of unit from the one containing t0 up to,
// but excluding, the one containing t1. An inverted pair yields an empty domain.
func DomainBetween(unit timeunit.Unit, t0, t1 time.Time) (Domain, error) {
	first, err := Of(unit, t0)
	if err != nil {
		return Domain{}, fmt.Errorf("DomainBetween: %w", err)
	}
	n := IDAt(0, unit, t1) - first.id
	if n < 0 {
		n = 0
	}

	return Domain{start: first, length: int(n)}, nil
}

// MustDomain panics if err is non-nil and returns d otherwise.
func MustDomain(d Domain, err error) Domain {
	if err != nil {
		panic(err)
	}

	return d
}

// Start returns the first period (also defined for an empty domain).
func (d Domain) Start() Period { return d.start }

// End returns the first period after the domain.
func (d Domain) End() Period { return d.start.Plus(int64(d.length)) }

// Length returns the number of periods.
func (d Domain) Length() int { return d.length }

// IsEmpty reports whether the domain holds no period.
func (d Domain) IsEmpty() bool { return d.length == 0 }

// Unit returns the unit shared by every period.
func (d Domain) Unit() timeunit.Unit { return d.start.unit }

// Offset returns the offset shared by every period.
func (d Domain) Offset() int { return d.start.offset }

// Get returns period i.
// Errors: ErrOutOfRange.
func (d Domain) Get(i int) (Period, error) {
	if i < 0 || i >= d.length {
		return Period{}, fmt.Errorf("Get(%d) of %d: %w", i, d.length, ErrOutOfRange)
	}

	return d.start.Plus(int64(i)), nil
}

// Last returns the final period.
// Errors: ErrEmptyDomain.
func (d Domain) Last() (Period, error) {
	if d.length == 0 {
		return Period{}, fmt.Errorf("Last: %w", ErrEmptyDomain)
	}

	return d.start.Plus(int64(d.length - 1)), nil
}

// Periods returns every period in order.
func (d Domain) Periods() []Period {
	out := make([]Period, d.length)
	for i := range out {
		out[i] = d.start.Plus(int64(i))
	}

	return out
}

// StartDate returns the first instant covered by the domain.
func (d Domain) StartDate() time.Time { return d.start.Start() }

// EndDate returns the first instant after the domain.
func (d Domain) EndDate() time.Time { return d.End().Start() }

// Range returns the sub-domain of indices [first, end), clamped to [0, Length].
// Errors: ErrInvalidRange when first < 0 or end < first.
func (d Domain) Range(first, end int) (Domain, error) {
	if first < 0 || end < first {
		return Domain{}, fmt.Errorf("Range(%d, %d): %w", first, end, ErrInvalidRange)
	}

	return d.clamp(first, end), nil
}

// clamp returns [first, end) intersected with [0, Length] without validation.
func (d Domain) clamp(first, end int) Domain {
	first = min(max(first, 0), d.length)
	end = min(max(end, first), d.length)

	return Domain{start: d.start.Plus(int64(first)), length: end - first}
}

// IndexOf returns the index of the period containing t, or -1 if outside.
func (d Domain) IndexOf(t time.Time) int {
	return d.index(IDAt(d.start.offset, d.start.unit, t))
}

// IndexOfPeriod returns the index of p, or -1 if outside.
// Errors: ErrIncompatibleUnit.
func (d Domain) IndexOfPeriod(p Period) (int, error) {
	id, err := d.start.alignedID(p)
	if err != nil {
		return -1, fmt.Errorf("IndexOfPeriod: %w", err)
	}

	return d.index(id), nil
}

func (d Domain) index(id int64) int {
	k := id - d.start.id
	if k < 0 || k >= int64(d.length) {
		return -1
	}

	return int(k)
}

// Contains reports whether t falls inside the domain.
func (d Domain) Contains(t time.Time) bool { return d.IndexOf(t) >= 0 }

// Move shifts the whole domain by n periods.
func (d Domain) Move(n int) Domain {
	return Domain{start: d.start.Plus(int64(n)), length: d.length}
}

// Extend adds before periods at the head and after periods at the tail.
// Negative values shrink the domain.
// Errors: ErrInvalidRange when the resulting length is negative.
func (d Domain) Extend(before, after int) (Domain, error) {
	n := d.length + before + after
	if n < 0 {
		return Domain{}, fmt.Errorf("Extend(%d, %d) of %d: %w", before, after, d.length, ErrInvalidRange)
	}

	return Domain{start: d.start.Plus(int64(-before)), length: n}, nil
}

// Drop removes first periods at the head and last at the tail.
// Errors: ErrInvalidRange when either count is negative.
func (d Domain) Drop(first, last int) (Domain, error) {
	if first < 0 || last < 0 {
		return Domain{}, fmt.Errorf("Drop(%d, %d): %w", first, last, ErrInvalidRange)
	}

	return d.clamp(first, d.length-last), nil
}

// rebased returns o expressed with d's offset.
// Errors: ErrIncompatibleUnit.
func (d Domain) rebased(o Domain) (Domain, error) {
	if d.start.unit != o.start.unit {
		return Domain{}, fmt.Errorf("%s vs %s: %w", d.start.unit, o.start.unit, ErrIncompatibleUnit)
	}

	return Domain{start: o.start.Rebase(d.start.offset), length: o.length}, nil
}

// Union returns the minimal contiguous domain spanning a and b, expressed
// with a's offset. Gaps between disjoint spans are included. An empty
// operand contributes nothing.
// Errors: ErrIncompatibleUnit.
func Union(a, b Domain) (Domain, error) {
	rb, err := a.rebased(b)
	if err != nil {
		return Domain{}, fmt.Errorf("Union: %w", err)
	}
	if rb.length == 0 {
		return a, nil
	}
	if a.length == 0 {
		return rb, nil
	}
	lo := min(a.start.id, rb.start.id)
	hi := max(a.start.id+int64(a.length), rb.start.id+int64(rb.length))

	return Domain{start: Period{offset: a.start.offset, unit: a.start.unit, id: lo}, length: int(hi - lo)}, nil
}

// Intersection returns the overlap of a and b, expressed with a's offset.
// Disjoint operands yield an empty domain positioned at the later start.
// Errors: ErrIncompatibleUnit.
func Intersection(a, b Domain) (Domain, error) {
	rb, err := a.rebased(b)
	if err != nil {
		return Domain{}, fmt.Errorf("Intersection: %w", err)
	}
	lo := max(a.start.id, rb.start.id)
	hi := min(a.start.id+int64(a.length), rb.start.id+int64(rb.length))
	n := hi - lo
	if n < 0 {
		n = 0
	}

	return Domain{start: Period{offset: a.start.offset, unit: a.start.unit, id: lo}, length: int(n)}, nil
}

// String returns "<first period>[+<length>]".
func (d Domain) String() string {
	return fmt.Sprintf("%s[+%d]", d.start, d.length)
}
