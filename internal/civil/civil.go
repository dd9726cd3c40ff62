// SPDX-License-Identifier: MIT

// Package civil holds the proleptic Gregorian day-number arithmetic shared by
// the period and daycount packages. Day 0 is 1970-01-01, a Thursday.
//
// All functions are pure and overflow-free for every year representable by
// time.Time.
package civil

import "time"

// Millis per day.
const DayMillis int64 = 86_400_000

// FloorDiv returns ⌊a/b⌋ for b > 0.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}

	return q
}

// FloorMod returns a - b·⌊a/b⌋, always in [0, b) for b > 0.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}

// DayNumber returns the days since 1970-01-01 of the given civil date.
//
// Years are counted from March so that the leap day is the last day of the
// counting year:
//
//	days = 365·y + y/4 − y/100 + y/400 + ⌊(153·m + 2)/5⌋ + d − 1
//
// evaluated per 400-year era to keep all divisions non-negative.
func DayNumber(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	if m <= 2 {
		y--
		m += 9
	} else {
		m -= 3
	}
	era := FloorDiv(y, 400)
	yoe := y - era*400                     // [0, 399]
	doy := (153*m+2)/5 + int64(day) - 1    // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]

	return era*146097 + doe - 719468
}

// Date is the inverse of DayNumber.
func Date(dn int64) (year, month, day int) {
	z := dn + 719468
	era := FloorDiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365]
	mp := (5*doy + 2) / 153                                // [0, 11]
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}

	return int(y), int(m), int(d)
}

// Weekday returns the ISO weekday index of dn, Monday = 0 … Sunday = 6.
func Weekday(dn int64) int { return int(FloorMod(dn+3, 7)) }

// DayOf returns the day number of t's wall-clock date in its own location.
func DayOf(t time.Time) int64 {
	y, m, d := t.Date()

	return DayNumber(y, int(m), d)
}

// MillisOf returns the wall-clock milliseconds of t since 1970-01-01T00:00,
// ignoring t's zone offset.
func MillisOf(t time.Time) int64 {
	h, mi, s := t.Clock()
	clock := int64(h)*3_600_000 + int64(mi)*60_000 + int64(s)*1_000 + int64(t.Nanosecond()/1_000_000)

	return DayOf(t)*DayMillis + clock
}

// TimeOf returns the UTC instant of day number dn at midnight.
func TimeOf(dn int64) time.Time {
	y, m, d := Date(dn)

	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// TimeOfMillis is the inverse of MillisOf, in UTC.
func TimeOfMillis(ms int64) time.Time {
	dn := FloorDiv(ms, DayMillis)
	rem := FloorMod(ms, DayMillis)

	return TimeOf(dn).Add(time.Duration(rem) * time.Millisecond)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthDays returns the number of days in month of year.
func MonthDays(year, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}

		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
