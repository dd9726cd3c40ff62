package holiday_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/holiday"
)

const frenchCalendar = `
name: fr
holidays:
  - name: new-year
    kind: fixed
    month: 1
    day: 1
  - name: easter-monday
    kind: easter
    offset: 1
  - name: pentecost-monday
    kind: easter
    offset: 50
    weight: 0.5
    from: "2005-01-01"
  - name: orthodox-good-friday
    kind: julian-easter
    offset: -2
  - name: mothers-day
    kind: fixed-weekday
    week: -1
    weekday: sunday
    month: 5
    to: "2030-01-01"
`

func TestLoadCalendar(t *testing.T) {
	def, err := holiday.LoadDefinition(strings.NewReader(frenchCalendar))
	require.NoError(t, err)
	assert.Equal(t, "fr", def.Name)

	c, err := def.Calendar()
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())

	e := c.Entries()
	assert.Equal(t, "new-year", e[0].Name)
	assert.Equal(t, holiday.Fixed(1, 1), e[0].Day)
	assert.Equal(t, holiday.EasterRelated(50).WithWeight(0.5), e[2].Day)
	assert.Equal(t, date(2005, 1, 1), e[2].Validity.Start)
	assert.Equal(t, holiday.FixedWeekday(-1, daycount.Sunday, 5), e[4].Day)
	assert.Equal(t, date(2030, 1, 1), e[4].Validity.End)

	occ := c.Occurrences(date(2024, 5, 1), date(2024, 6, 1))
	got := make([]string, len(occ))
	for i, o := range occ {
		got[i] = o.Date.Format("01-02")
	}
	assert.Equal(t, []string{"05-03", "05-20", "05-26"}, got)
}

func TestLoadCalendar_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":       "name: [",
		"no name":      "holidays: [{name: a, kind: fixed, month: 1, day: 1}]",
		"no holidays":  "name: x",
		"kind":         "name: x\nholidays: [{name: a, kind: lunar}]",
		"weekday":      "name: x\nholidays: [{name: a, kind: fixed-weekday, week: 1, weekday: funday, month: 1}]",
		"date":         "name: x\nholidays: [{name: a, kind: fixed, month: 1, day: 1, from: '2020-13-01'}]",
		"weight":       "name: x\nholidays: [{name: a, kind: fixed, month: 1, day: 1, weight: -1}]",
		"day of month": "name: x\nholidays: [{name: a, kind: fixed, month: 2, day: 30}]",
		"validity":     "name: x\nholidays: [{name: a, kind: fixed, month: 1, day: 1, from: '2021-01-01', to: '2020-01-01'}]",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := holiday.LoadCalendar(strings.NewReader(src))
			require.ErrorIs(t, err, holiday.ErrInvalidDefinition)
		})
	}
}
