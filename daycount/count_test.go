package daycount_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/timeunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainOf(t testing.TB, u timeunit.Unit, from time.Time, n int) period.Domain {
	t.Helper()
	d, err := period.NewDomain(period.Must(period.Of(u, from)), n)
	require.NoError(t, err)

	return d
}

func TestDayNumberAndWeekday(t *testing.T) {
	assert.Equal(t, int64(0), daycount.DayNumber(1970, 1, 1))
	assert.Equal(t, daycount.Thursday, daycount.WeekdayOf(0))
	assert.Equal(t, daycount.Monday, daycount.WeekdayOf(daycount.DayNumber(2024, 1, 1)))
	assert.Equal(t, daycount.Sunday, daycount.WeekdayOf(daycount.DayNumber(2025, 4, 20)))
}

func TestCountKnownMonths(t *testing.T) {
	d := domainOf(t, timeunit.Monthly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	c, err := daycount.Count(d)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	assert.Equal(t, [7]int{5, 5, 5, 4, 4, 4, 4}, c[0]) // Jan 2024 starts on Monday
	assert.Equal(t, [7]int{4, 4, 4, 5, 4, 4, 4}, c[1]) // Feb 2024 starts on Thursday
	assert.Equal(t, 29, c.Total(1))
}

// TestCountSumsToLength checks the seven counts always add up to the period length.
func TestCountSumsToLength(t *testing.T) {
	units := []timeunit.Unit{
		timeunit.Yearly, timeunit.Quarterly, timeunit.Bimonthly, timeunit.Monthly,
		timeunit.MustOf(5, timeunit.Month), timeunit.Weekly, timeunit.MustOf(2, timeunit.Week),
		timeunit.Daily, timeunit.MustOf(10, timeunit.Day),
	}
	for _, u := range units {
		t.Run(u.String(), func(t *testing.T) {
			d := domainOf(t, u, time.Date(1895, 3, 17, 0, 0, 0, 0, time.UTC), 300)
			c, err := daycount.Count(d)
			require.NoError(t, err)
			lens, err := daycount.Lengths(d)
			require.NoError(t, err)
			for i, p := range d.Periods() {
				days := int(p.End().Sub(p.Start()).Hours() / 24)
				require.Equal(t, days, lens[i])
				require.Equal(t, days, c.Total(i), "period %s", p)
			}
		})
	}
}

func TestCountRejectsSubDaily(t *testing.T) {
	d := domainOf(t, timeunit.Hourly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 24)
	_, err := daycount.Count(d)
	require.ErrorIs(t, err, daycount.ErrUnsupportedUnit)
	_, err = daycount.Lengths(d)
	require.ErrorIs(t, err, daycount.ErrUnsupportedUnit)
}

func TestCountsDense(t *testing.T) {
	d := domainOf(t, timeunit.Monthly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	c, err := daycount.Count(d)
	require.NoError(t, err)
	m, err := c.Dense()
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 7, m.Cols())
	v, err := m.At(1, daycount.Thursday)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestMeanLengths(t *testing.T) {
	m, err := daycount.MeanLengths(timeunit.Monthly)
	require.NoError(t, err)
	require.Len(t, m, 12)
	assert.InDelta(t, 31.0, m[0], 1e-12)
	assert.InDelta(t, 28.2425, m[1], 1e-12)

	q, err := daycount.MeanLengths(timeunit.Quarterly)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{90.2425, 91, 92, 92}, q, 1e-12)

	y, err := daycount.MeanLengths(timeunit.Yearly)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{365.2425}, y, 1e-12)

	w, err := daycount.MeanLengths(timeunit.Weekly)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, w)

	_, err = daycount.MeanLengths(timeunit.Hourly)
	require.ErrorIs(t, err, daycount.ErrUnsupportedUnit)
}
