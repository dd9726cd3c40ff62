package holiday_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcal/holiday"
)

func TestBuilder_Freeze(t *testing.T) {
	b := holiday.NewBuilder()
	require.NoError(t, b.Add(holiday.Fixed(1, 1), holiday.Always))
	c := b.Build()
	assert.Equal(t, 1, c.Len())

	err := b.Add(holiday.Fixed(12, 25), holiday.Always)
	require.ErrorIs(t, err, holiday.ErrFrozen)
	assert.Equal(t, 1, c.Len(), "frozen calendar must not change")
	assert.Equal(t, 1, b.Build().Len())
}

func TestBuilder_Rejects(t *testing.T) {
	b := holiday.NewBuilder()
	require.ErrorIs(t, b.Add(holiday.Fixed(4, 31), holiday.Always), holiday.ErrInvalidDay)
	v := holiday.Validity{Start: date(2020, 1, 1), End: date(2019, 1, 1)}
	require.ErrorIs(t, b.Add(holiday.Fixed(4, 1), v), holiday.ErrInvalidValidity)
	assert.Equal(t, 0, b.Build().Len())
}

func TestBuilder_ConcurrentAdd(t *testing.T) {
	b := holiday.NewBuilder()
	var wg sync.WaitGroup
	for m := 1; m <= 12; m++ {
		wg.Add(1)
		go func(m int) {
			defer wg.Done()
			assert.NoError(t, b.Add(holiday.Fixed(m, 1), holiday.Always))
		}(m)
	}
	wg.Wait()
	assert.Equal(t, 12, b.Build().Len())
}

func TestCalendar_OccurrencesKeepsHeaviest(t *testing.T) {
	b := holiday.NewBuilder()
	require.NoError(t, b.Add(holiday.Fixed(12, 25).WithWeight(0.5), holiday.Always))
	require.NoError(t, b.Add(holiday.Fixed(12, 25), holiday.Always))
	require.NoError(t, b.Add(holiday.Fixed(12, 25).WithWeight(1), holiday.Always))
	c := b.Build()

	occ := c.Occurrences(date(2024, 1, 1), date(2025, 1, 1))
	require.Len(t, occ, 1)
	assert.Equal(t, 1.0, occ[0].Weight)
	assert.Equal(t, 1, occ[0].Entry, "ties go to the earlier entry")
}

func TestCalendar_OccurrencesValidity(t *testing.T) {
	b := holiday.NewBuilder()
	require.NoError(t, b.AddEntry(holiday.Entry{
		Name:     "old-may-day",
		Day:      holiday.Fixed(5, 1),
		Validity: holiday.Validity{End: date(2022, 1, 1)},
	}))
	require.NoError(t, b.Add(holiday.EasterRelated(1), holiday.Validity{Start: date(2023, 1, 1)}))
	c := b.Build()

	occ := c.Occurrences(date(2021, 1, 1), date(2024, 1, 1))
	got := make([]string, len(occ))
	for i, o := range occ {
		got[i] = o.Date.Format(time.DateOnly)
	}
	assert.Equal(t, []string{"2021-05-01", "2023-04-10"}, got)
	assert.Equal(t, "old-may-day", c.Entries()[0].Name)
	assert.Equal(t, "easter(+1)", c.Entries()[1].Name)
}

func TestValidity_Contains(t *testing.T) {
	v := holiday.Validity{Start: date(2020, 1, 1), End: date(2021, 1, 1)}
	assert.True(t, v.Contains(date(2020, 1, 1).Add(3*time.Hour)))
	assert.True(t, v.Contains(date(2020, 12, 31)))
	assert.False(t, v.Contains(date(2021, 1, 1)))
	assert.False(t, v.Contains(date(2019, 12, 31)))
	assert.True(t, holiday.Always.Contains(date(1800, 1, 1)))
}
