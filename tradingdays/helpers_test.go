package tradingdays_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/timeunit"
	"github.com/stretchr/testify/require"
)

func ym(y int, m time.Month) time.Time { return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC) }

// span returns the domain of unit covering [from, to).
func span(t testing.TB, u timeunit.Unit, from, to time.Time) period.Domain {
	t.Helper()
	d, err := period.DomainBetween(u, from, to)
	require.NoError(t, err)

	return d
}

// rowsOf copies m into a [][]float64 for comparisons.
func rowsOf(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// fixedCorrector returns the same per-weekday row for every period.
type fixedCorrector struct{ row [7]float64 }

func (f fixedCorrector) Corrections(dom period.Domain) (*matrix.Dense, error) {
	m, err := matrix.NewDense(dom.Length(), 7)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dom.Length(); i++ {
		r, _ := m.Row(i)
		copy(r, f.row[:])
	}

	return m, nil
}
