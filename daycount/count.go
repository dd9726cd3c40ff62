// SPDX-License-Identifier: MIT

package daycount

import (
	"fmt"

	"github.com/katalvlaran/lvcal/internal/civil"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
)

// Weekday indices.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NumWeekdays is the width of every per-weekday block.
const NumWeekdays = 7

// DayNumber returns the days since 1970-01-01 of a proleptic Gregorian date.
func DayNumber(year, month, day int) int64 { return civil.DayNumber(year, month, day) }

// WeekdayOf returns the weekday index (Monday = 0) of a day number.
func WeekdayOf(dayNumber int64) int { return civil.Weekday(dayNumber) }

// Counts holds the seven weekday counts of every period of a domain.
type Counts [][NumWeekdays]int

// spanCounts fills c with the weekday counts of n days starting on weekday w0.
func spanCounts(c *[NumWeekdays]int, n int64, w0 int) {
	for w := 0; w < NumWeekdays; w++ {
		off := civil.FloorMod(int64(w-w0), NumWeekdays)
		c[w] = int(1 + civil.FloorDiv(n-1-off, NumWeekdays))
	}
}

// bounds returns the day number of every period boundary of dom (Length+1 values).
func bounds(dom period.Domain) ([]int64, error) {
	if !dom.Unit().IsCalendar() {
		return nil, fmt.Errorf("%s: %w", dom.Unit(), ErrUnsupportedUnit)
	}
	out := make([]int64, dom.Length()+1)
	p := dom.Start()
	for i := range out {
		out[i] = civil.DayOf(p.Start())
		p = p.Plus(1)
	}

	return out, nil
}

// Count returns the weekday counts of every period of dom.
// Errors: ErrUnsupportedUnit for units finer than a day.
//
// Complexity: O(Length·7).
func Count(dom period.Domain) (Counts, error) {
	b, err := bounds(dom)
	if err != nil {
		return nil, fmt.Errorf("Count: %w", err)
	}
	out := make(Counts, dom.Length())
	for i := range out {
		spanCounts(&out[i], b[i+1]-b[i], civil.Weekday(b[i]))
	}

	return out, nil
}

// Lengths returns the length in days of every period of dom.
// Errors: ErrUnsupportedUnit.
func Lengths(dom period.Domain) ([]int, error) {
	b, err := bounds(dom)
	if err != nil {
		return nil, fmt.Errorf("Lengths: %w", err)
	}
	out := make([]int, dom.Length())
	for i := range out {
		out[i] = int(b[i+1] - b[i])
	}

	return out, nil
}

// Len returns the number of periods.
func (c Counts) Len() int { return len(c) }

// Total returns the number of days of period i.
func (c Counts) Total(i int) int {
	s := 0
	for _, v := range c[i] {
		s += v
	}

	return s
}

// Dense returns the counts as a Len×7 matrix.
func (c Counts) Dense() (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(c), NumWeekdays)
	if err != nil {
		return nil, fmt.Errorf("Counts.Dense: %w", err)
	}
	for i := range c {
		row, _ := m.Row(i)
		for w, v := range c[i] {
			row[w] = float64(v)
		}
	}

	return m, nil
}
