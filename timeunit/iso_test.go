package timeunit_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvcal/timeunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParseRoundTrip(t *testing.T) {
	units := []timeunit.Unit{
		timeunit.Yearly, timeunit.HalfYearly, timeunit.Quarterly, timeunit.Bimonthly,
		timeunit.Monthly, timeunit.Weekly, timeunit.Daily, timeunit.Hourly,
		timeunit.Minutely, timeunit.Secondly,
		timeunit.MustOf(2, timeunit.Week),
		timeunit.MustOf(15, timeunit.Minute),
		timeunit.MustOf(250, timeunit.Millisecond),
		timeunit.MustOf(1500, timeunit.Millisecond),
	}
	for _, u := range units {
		t.Run(u.String(), func(t *testing.T) {
			got, err := timeunit.Parse(u.String())
			require.NoError(t, err)
			assert.Equal(t, u, got)
		})
	}
}

func TestStringForms(t *testing.T) {
	assert.Equal(t, "P1Y", timeunit.Yearly.String())
	assert.Equal(t, "P3M", timeunit.Quarterly.String())
	assert.Equal(t, "P1W", timeunit.Weekly.String())
	assert.Equal(t, "PT1H", timeunit.Hourly.String())
	assert.Equal(t, "PT1M", timeunit.Minutely.String())
	assert.Equal(t, "PT0.250S", timeunit.MustOf(250, timeunit.Millisecond).String())
}

func TestParseFraction(t *testing.T) {
	u, err := timeunit.Parse("PT1.5S")
	require.NoError(t, err)
	assert.Equal(t, timeunit.MustOf(1500, timeunit.Millisecond), u)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text   string
		offset int
	}{
		{"", 0},
		{"3M", 0},
		{"PM", 1},
		{"P3", 2},
		{"P3X", 2},
		{"P3MZ", 3},
		{"PT3Y", 3},
		{"P1.5D", 2},
		{"PT1.S", 4},
		{"PT1.2345S", 4},
		{"P0M", 1},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, err := timeunit.Parse(tc.text)
			require.ErrorIs(t, err, timeunit.ErrParse)

			var pe *timeunit.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.text, pe.Text)
			assert.Equal(t, tc.offset, pe.Offset)
		})
	}
}

func TestTextMarshaling(t *testing.T) {
	b, err := timeunit.Quarterly.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "P3M", string(b))

	var u timeunit.Unit
	require.NoError(t, u.UnmarshalText([]byte("P1D")))
	assert.Equal(t, timeunit.Daily, u)

	require.ErrorIs(t, u.UnmarshalText([]byte("bogus")), timeunit.ErrParse)
	_, err = timeunit.Unit{}.MarshalText()
	require.ErrorIs(t, err, timeunit.ErrInvalidAmount)
}
