package holiday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/holiday"
)

func TestEaster(t *testing.T) {
	cases := map[int]string{
		2000: "2000-04-23",
		2019: "2019-04-21",
		2024: "2024-03-31",
		2025: "2025-04-20",
		2038: "2038-04-25",
		2285: "2285-03-22",
	}
	for y, want := range cases {
		got := holiday.Easter(y)
		assert.Equal(t, want, got.Format(time.DateOnly), "year %d", y)
		assert.Equal(t, time.Sunday, got.Weekday(), "year %d", y)
	}
}

func TestJulianEaster(t *testing.T) {
	cases := map[int]string{
		2023: "2023-04-16",
		2024: "2024-05-05",
		2025: "2025-04-20",
		2100: "2100-05-02",
		2101: "2101-04-24",
	}
	for y, want := range cases {
		got := holiday.JulianEaster(y)
		assert.Equal(t, want, got.Format(time.DateOnly), "year %d", y)
		assert.Equal(t, time.Sunday, got.Weekday(), "year %d", y)
	}
}

func TestSpecialDay_Date(t *testing.T) {
	tests := []struct {
		name string
		day  holiday.SpecialDay
		year int
		want string
		ok   bool
	}{
		{"christmas", holiday.Fixed(12, 25), 2024, "2024-12-25", true},
		{"leap day", holiday.Fixed(2, 29), 2024, "2024-02-29", true},
		{"leap day missing", holiday.Fixed(2, 29), 2023, "", false},
		{"easter monday", holiday.EasterRelated(1), 2024, "2024-04-01", true},
		{"good friday", holiday.EasterRelated(-2), 2025, "2025-04-18", true},
		{"orthodox good friday", holiday.JulianEasterRelated(-2), 2024, "2024-05-03", true},
		{"last monday of may", holiday.FixedWeekday(-1, daycount.Monday, 5), 2024, "2024-05-27", true},
		{"fourth thursday of november", holiday.FixedWeekday(4, daycount.Thursday, 11), 2024, "2024-11-28", true},
		{"first monday of september", holiday.FixedWeekday(1, daycount.Monday, 9), 2024, "2024-09-02", true},
		{"fifth friday missing", holiday.FixedWeekday(5, daycount.Friday, 2), 2024, "", false},
		{"fifth thursday", holiday.FixedWeekday(5, daycount.Thursday, 2), 2024, "2024-02-29", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.day.Validate())
			got, ok := tc.day.Date(tc.year)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got.Format(time.DateOnly))
			}
		})
	}
}

func TestSpecialDay_Validate(t *testing.T) {
	bad := []holiday.SpecialDay{
		holiday.Fixed(2, 30),
		holiday.Fixed(13, 1),
		holiday.EasterRelated(400),
		holiday.FixedWeekday(0, daycount.Monday, 1),
		holiday.FixedWeekday(6, daycount.Monday, 1),
		holiday.FixedWeekday(1, 7, 1),
		{Kind: holiday.Kind(9)},
	}
	for _, d := range bad {
		assert.ErrorIs(t, d.Validate(), holiday.ErrInvalidDay, d.String())
	}
}

func TestSpecialDay_Occurrences(t *testing.T) {
	got := holiday.EasterRelated(1).Occurrences(date(2020, 1, 1), date(2023, 1, 1))
	assert.Equal(t, []string{"2020-04-13", "2021-04-05", "2022-04-18"}, days(got))

	// The end bound is exclusive.
	got = holiday.Fixed(1, 1).Occurrences(date(2023, 1, 1), date(2024, 1, 1))
	assert.Equal(t, []string{"2023-01-01"}, days(got))

	// Offsets crossing into the next year are found.
	got = holiday.EasterRelated(-120).Occurrences(date(2023, 12, 1), date(2024, 1, 1))
	assert.Equal(t, []string{"2023-12-02"}, days(got))

	assert.Empty(t, holiday.Fixed(1, 1).Occurrences(date(2024, 1, 1), date(2024, 1, 1)))
}

func TestSpecialDay_String(t *testing.T) {
	assert.Equal(t, "fixed(12-25)", holiday.Fixed(12, 25).String())
	assert.Equal(t, "easter(+1)", holiday.EasterRelated(1).String())
	assert.Equal(t, "julian-easter(-2)", holiday.JulianEasterRelated(-2).String())
	assert.Equal(t, "fixed-weekday(-1,0,5)", holiday.FixedWeekday(-1, daycount.Monday, 5).String())
	assert.Equal(t, 0.5, holiday.Fixed(1, 1).WithWeight(0.5).Weight)
}
