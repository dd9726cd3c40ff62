package holiday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/timeunit"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func days(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format(time.DateOnly)
	}

	return out
}

func monthly(t testing.TB, from, to time.Time) period.Domain {
	t.Helper()
	d, err := period.DomainBetween(timeunit.Monthly, from, to)
	require.NoError(t, err)

	return d
}

func col(t testing.TB, m *matrix.Dense, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}
