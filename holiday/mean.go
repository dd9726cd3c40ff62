// SPDX-License-Identifier: MIT

package holiday

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/internal/civil"
	"github.com/katalvlaran/lvcal/timeunit"
)

// Mean is a [position][weekday] table of expected holiday weight per period
// position within a year.
type Mean [][daycount.NumWeekdays]float64

// Total returns the expected weight at pos summed over the given weekdays,
// or over all weekdays when none are given.
func (m Mean) Total(pos int, weekdays ...int) float64 {
	s := 0.0
	if len(weekdays) == 0 {
		for _, v := range m[pos] {
			s += v
		}
		return s
	}
	for _, w := range weekdays {
		s += m[pos][w]
	}

	return s
}

const (
	// easterWindow is the number of possible Gregorian Easter dates, Mar 22..Apr 25.
	easterWindow = 35
	// lunarSpan is the number of possible paschal full moon dates, Mar 21..Apr 18.
	lunarSpan = 29
	// leapShare and commonShare weight leap and common years over 400 years.
	leapShare   = 97.0 / 400
	commonShare = 303.0 / 400
)

// easterProbabilities returns P(Easter = Mar 22 + k), k = 0..34: a uniform
// paschal full moon over lunarSpan days followed by a uniform 1..7 day wait
// for the next Sunday. The result tapers linearly at both ends.
func easterProbabilities() [easterWindow]float64 {
	var p [easterWindow]float64
	for moon := 0; moon < lunarSpan; moon++ {
		for wait := 1; wait <= 7; wait++ {
			p[moon+wait-1] += 1.0 / (lunarSpan * 7)
		}
	}

	return p
}

var easterProb = easterProbabilities()

// LongTermMean returns the expected weight of day per annual position and
// weekday. Units that are not month-aligned divisors of a year yield a single
// zero row, since their periods have no stable position.
//
// Implementation:
//   - Fixed dates: the weekday is uniform, 1/7 each; Feb 29 occurs in 97 of
//     400 years.
//   - Fixed weekdays: the weekday is known; existence is averaged over the
//     400-year cycle.
//   - Easter kinds: the Easter date distribution is spread over a leap and a
//     common reference year, weighted 97/400 and 303/400. The weekday is
//     always Sunday moved by the offset.
//
// Errors: ErrUnsupportedUnit, ErrInvalidDay.
func LongTermMean(day SpecialDay, unit timeunit.Unit) (Mean, error) {
	if !unit.IsCalendar() {
		return nil, fmt.Errorf("LongTermMean(%s): %w", unit, ErrUnsupportedUnit)
	}
	if err := day.Validate(); err != nil {
		return nil, fmt.Errorf("LongTermMean: %w", err)
	}
	freq := unit.AnnualFrequency()
	if freq <= 0 || !unit.IsMonthAligned() {
		return make(Mean, 1), nil
	}

	m := make(Mean, freq)
	months := 12 / int(freq)
	posOf := func(t time.Time) int { return (int(t.Month()) - 1) / months }

	switch day.Kind {
	case KindFixed:
		p := 1.0
		if day.Month == 2 && day.Day == 29 {
			p = leapShare
		}
		pos := (day.Month - 1) / months
		for w := range m[pos] {
			m[pos][w] += day.Weight * p / daycount.NumWeekdays
		}
	case KindFixedWeekday:
		for y := 2000; y < 2400; y++ {
			if t, ok := day.Date(y); ok {
				m[posOf(t)][day.Weekday] += day.Weight / 400
			}
		}
	case KindEaster, KindJulianEaster:
		// Easter is a Sunday, so the weekday is fixed by the offset. The
		// reference years only place the date within the year.
		w := int(civil.FloorMod(int64(daycount.Sunday+day.Offset), daycount.NumWeekdays))
		refs := []struct {
			year  int
			share float64
		}{{2000, leapShare}, {2001, commonShare}}
		for _, ref := range refs {
			shift := 0
			if day.Kind == KindJulianEaster {
				shift = julianDrift(ref.year)
			}
			for k, p := range easterProb {
				t := time.Date(ref.year, time.March, 22+k+shift+day.Offset, 0, 0, 0, 0, time.UTC)
				m[posOf(t)][w] += day.Weight * ref.share * p
			}
		}
	}

	return m, nil
}
