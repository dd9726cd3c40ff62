// SPDX-License-Identifier: MIT

package daycount

import (
	"fmt"

	"github.com/katalvlaran/lvcal/internal/civil"
	"github.com/katalvlaran/lvcal/timeunit"
)

// gregorianCycle is the number of years after which the Gregorian calendar repeats.
const gregorianCycle = 400

// MeanLengths returns the long-run average length in days of each position
// within a year, averaged over a full Gregorian cycle. The result has
// AnnualFrequency entries for month-aligned units that divide a year, and a
// single entry (the constant or average length) for other calendar units.
// Errors: ErrUnsupportedUnit for units finer than a day.
func MeanLengths(unit timeunit.Unit) ([]float64, error) {
	if !unit.IsCalendar() {
		return nil, fmt.Errorf("MeanLengths(%s): %w", unit, ErrUnsupportedUnit)
	}
	freq := unit.AnnualFrequency()
	if freq <= 0 || !unit.IsMonthAligned() {
		return []float64{float64(unit.Millis()) / float64(civil.DayMillis)}, nil
	}

	months := 12 / int(freq)
	out := make([]float64, freq)
	for y := 2000; y < 2000+gregorianCycle; y++ {
		for pos := range out {
			for m := pos*months + 1; m <= (pos+1)*months; m++ {
				out[pos] += float64(civil.MonthDays(y, m))
			}
		}
	}
	for pos := range out {
		out[pos] /= gregorianCycle
	}

	return out, nil
}
