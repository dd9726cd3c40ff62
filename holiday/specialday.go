// SPDX-License-Identifier: MIT

package holiday

import (
	"fmt"
	"sort"
	"time"

	cal "github.com/rickar/cal/v2"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/internal/civil"
)

// Kind tags the variant of a SpecialDay.
type Kind int

const (
	KindFixed Kind = iota
	KindEaster
	KindJulianEaster
	KindFixedWeekday
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindEaster:
		return "easter"
	case KindJulianEaster:
		return "julian-easter"
	case KindFixedWeekday:
		return "fixed-weekday"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SpecialDay is a recurring day. Only the fields of its Kind are meaningful:
//
//	KindFixed        Month, Day
//	KindEaster       Offset
//	KindJulianEaster Offset
//	KindFixedWeekday Week, Weekday, Month
type SpecialDay struct {
	Kind    Kind
	Month   int     // 1..12
	Day     int     // 1..31
	Offset  int     // days from Easter Sunday
	Week    int     // 1..5 from the start, -1..-5 from the end
	Weekday int     // daycount.Monday..daycount.Sunday
	Weight  float64 // contribution of one occurrence
}

// Fixed returns the special day falling on month/day every year.
func Fixed(month, day int) SpecialDay {
	return SpecialDay{Kind: KindFixed, Month: month, Day: day, Weight: 1}
}

// EasterRelated returns the day offset days from Gregorian Easter Sunday.
func EasterRelated(offset int) SpecialDay {
	return SpecialDay{Kind: KindEaster, Offset: offset, Weight: 1}
}

// JulianEasterRelated returns the day offset days from Orthodox Easter Sunday.
func JulianEasterRelated(offset int) SpecialDay {
	return SpecialDay{Kind: KindJulianEaster, Offset: offset, Weight: 1}
}

// FixedWeekday returns the week-th weekday of month. A negative week counts
// from the end of the month (-1 is the last one).
func FixedWeekday(week, weekday, month int) SpecialDay {
	return SpecialDay{Kind: KindFixedWeekday, Week: week, Weekday: weekday, Month: month, Weight: 1}
}

// WithWeight returns a copy of d carrying weight w.
func (d SpecialDay) WithWeight(w float64) SpecialDay {
	d.Weight = w
	return d
}

// Validate checks the parameters of d's kind.
// Errors: ErrInvalidDay.
func (d SpecialDay) Validate() error {
	switch d.Kind {
	case KindFixed:
		if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > civil.MonthDays(2000, d.Month) {
			return fmt.Errorf("fixed %d/%d: %w", d.Month, d.Day, ErrInvalidDay)
		}
	case KindEaster, KindJulianEaster:
		if d.Offset < -300 || d.Offset > 300 {
			return fmt.Errorf("%s offset %d: %w", d.Kind, d.Offset, ErrInvalidDay)
		}
	case KindFixedWeekday:
		if d.Month < 1 || d.Month > 12 || d.Week == 0 || d.Week < -5 || d.Week > 5 ||
			d.Weekday < daycount.Monday || d.Weekday > daycount.Sunday {
			return fmt.Errorf("fixed weekday %d/%d/%d: %w", d.Week, d.Weekday, d.Month, ErrInvalidDay)
		}
	default:
		return fmt.Errorf("kind %d: %w", int(d.Kind), ErrInvalidDay)
	}

	return nil
}

// Date returns the occurrence of d in year. ok is false when d does not occur
// that year (Feb 29 outside leap years, a fifth weekday that does not exist).
func (d SpecialDay) Date(year int) (t time.Time, ok bool) {
	switch d.Kind {
	case KindFixed:
		if d.Day > civil.MonthDays(year, d.Month) {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), true
	case KindEaster:
		return Easter(year).AddDate(0, 0, d.Offset), true
	case KindJulianEaster:
		return JulianEaster(year).AddDate(0, 0, d.Offset), true
	case KindFixedWeekday:
		// cal counts Sunday = 0; WeekdayN runs on into the next month.
		wd := time.Weekday((d.Weekday + 1) % daycount.NumWeekdays)
		t := cal.WeekdayN(year, time.Month(d.Month), wd, d.Week)
		if t.Year() != year || t.Month() != time.Month(d.Month) {
			return time.Time{}, false
		}
		return utcDay(t), true
	default:
		return time.Time{}, false
	}
}

// Occurrences returns the dates of d within [start, end), compared by
// calendar day, in ascending order.
func (d SpecialDay) Occurrences(start, end time.Time) []time.Time {
	lo, hi := civil.DayOf(start), civil.DayOf(end)
	if hi <= lo {
		return nil
	}
	var out []time.Time
	// Easter offsets can carry a date into the neighbouring year.
	for y := start.Year() - 1; y <= end.Year()+1; y++ {
		t, ok := d.Date(y)
		if !ok {
			continue
		}
		if dn := civil.DayOf(t); dn >= lo && dn < hi {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	return out
}

// String returns a compact description of d.
func (d SpecialDay) String() string {
	switch d.Kind {
	case KindFixed:
		return fmt.Sprintf("fixed(%02d-%02d)", d.Month, d.Day)
	case KindEaster, KindJulianEaster:
		return fmt.Sprintf("%s(%+d)", d.Kind, d.Offset)
	case KindFixedWeekday:
		return fmt.Sprintf("fixed-weekday(%d,%d,%d)", d.Week, d.Weekday, d.Month)
	default:
		return d.Kind.String()
	}
}
