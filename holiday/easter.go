// SPDX-License-Identifier: MIT

package holiday

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

var (
	gregorianEaster = &cal.Holiday{Name: "Easter", Func: cal.CalcEasterOffset}
	julianEaster    = &cal.Holiday{Name: "Orthodox Easter", Julian: true, Func: cal.CalcEasterOffset}
)

// calJulianShift is the Julian to Gregorian shift applied by cal for every year.
const calJulianShift = 13

// julianDrift returns the number of days the Julian calendar lags the
// Gregorian one in year: y/100 − y/400 − 2.
func julianDrift(year int) int {
	return year/100 - year/400 - 2
}

// utcDay returns the calendar day of t at midnight UTC.
func utcDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Easter returns Gregorian Easter Sunday of year (Meeus/Jones/Butcher).
func Easter(year int) time.Time {
	return utcDay(cal.CalcEasterOffset(gregorianEaster, year))
}

// JulianEaster returns Orthodox Easter Sunday of year as a Gregorian date.
// The Julian date from Meeus' algorithm is shifted by julianDrift(year).
func JulianEaster(year int) time.Time {
	return utcDay(cal.CalcEasterOffset(julianEaster, year)).AddDate(0, 0, julianDrift(year)-calJulianShift)
}
