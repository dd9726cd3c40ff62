package tradingdays_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/internal/testutil"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/timeunit"
	"github.com/katalvlaran/lvcal/tradingdays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorValidation(t *testing.T) {
	_, err := tradingdays.NewGenerator(daycount.Clustering{})
	require.ErrorIs(t, err, tradingdays.ErrInvalidClustering)

	_, err = tradingdays.NewGenerator(daycount.TD3, tradingdays.WithWeights([]float64{1}))
	require.ErrorIs(t, err, tradingdays.ErrInvalidWeights)

	require.Panics(t, func() { tradingdays.WithLogger(nil) })
	require.Panics(t, func() { tradingdays.WithWeights([]float64{1, math.NaN()}) })
}

func TestColumns(t *testing.T) {
	for _, c := range []daycount.Clustering{daycount.TD2, daycount.TD3, daycount.TD4, daycount.TD7} {
		contrast, err := tradingdays.NewGenerator(c)
		require.NoError(t, err)
		raw, err := tradingdays.NewGenerator(c, tradingdays.WithContrast(false))
		require.NoError(t, err)

		assert.Equal(t, c.Len()-1, contrast.Columns())
		assert.Equal(t, c.Len(), raw.Columns())
		assert.True(t, contrast.Contrast())
		assert.Equal(t, c, raw.Clustering())

		d := span(t, timeunit.Monthly, ym(2020, 1), ym(2021, 1))
		m, err := contrast.Generate(d)
		require.NoError(t, err)
		assert.Equal(t, c.Len()-1, m.Cols())
		m, err = raw.Generate(d)
		require.NoError(t, err)
		assert.Equal(t, c.Len(), m.Cols())
	}
}

func TestKnownValues(t *testing.T) {
	d := span(t, timeunit.Monthly, ym(2024, 1), ym(2024, 3))

	raw, err := tradingdays.NewGenerator(daycount.TD2, tradingdays.WithContrast(false))
	require.NoError(t, err)
	m, err := raw.Generate(d)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{23, 8}, {21, 8}}, rowsOf(t, m), "week days first, reference group last")

	con, err := tradingdays.NewGenerator(daycount.TD2)
	require.NoError(t, err)
	m, err = con.Generate(d)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3}, {1}}, rowsOf(t, m)) // 23 − 2.5·8, 21 − 2.5·8

	custom, err := tradingdays.NewGenerator(daycount.TD2, tradingdays.WithWeights([]float64{1}))
	require.NoError(t, err)
	m, err = custom.Generate(d)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{15}, {13}}, rowsOf(t, m))
}

// TestReconstructRecoversRaw checks contrast columns plus reference sums give raw mode.
func TestReconstructRecoversRaw(t *testing.T) {
	d := span(t, timeunit.Monthly, ym(1990, 1), ym(2030, 1))
	for _, c := range []daycount.Clustering{daycount.TD2, daycount.TD3c, daycount.TD4, daycount.TD7} {
		for _, w := range [][]float64{nil, makeWeights(c.Len()-1, 0.3)} {
			con, err := tradingdays.NewGenerator(c, tradingdays.WithWeights(w))
			require.NoError(t, err)
			raw, err := tradingdays.NewGenerator(c, tradingdays.WithContrast(false))
			require.NoError(t, err)

			cm, err := con.Generate(d)
			require.NoError(t, err)
			rm, err := raw.Generate(d)
			require.NoError(t, err)

			ref := make([]float64, rm.Rows())
			for i := range ref {
				ref[i], _ = rm.At(i, rm.Cols()-1)
			}
			back, err := tradingdays.Reconstruct(cm, ref, c, w)
			require.NoError(t, err)
			diff, err := matrix.Sub(back, rm)
			require.NoError(t, err)
			diff.Do(func(i, j int, v float64) bool {
				require.InDelta(t, 0, v, 1e-9, "clustering %s cell (%d,%d)", c, i, j)
				return true
			})
		}
	}
}

func makeWeights(n int, base float64) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = base * float64(i+1)
	}

	return w
}

func TestReconstructValidation(t *testing.T) {
	m := mustDense(t, 2, 1)
	_, err := tradingdays.Reconstruct(m, []float64{1, 2}, daycount.Clustering{}, nil)
	require.ErrorIs(t, err, tradingdays.ErrInvalidClustering)
	_, err = tradingdays.Reconstruct(m, []float64{1, 2}, daycount.TD2, []float64{1, 2})
	require.ErrorIs(t, err, tradingdays.ErrInvalidWeights)
	_, err = tradingdays.Reconstruct(m, []float64{1, 2, 3}, daycount.TD2, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// TestMeanCorrectionCentersFullCycle checks corrected columns sum to zero over
// a complete 400-year Gregorian cycle.
func TestMeanCorrectionCentersFullCycle(t *testing.T) {
	for _, u := range []timeunit.Unit{timeunit.Monthly, timeunit.Quarterly} {
		d := span(t, u, ym(1600, 1), ym(2000, 1))
		for _, contrast := range []bool{false, true} {
			g, err := tradingdays.NewGenerator(daycount.TD3,
				tradingdays.WithContrast(contrast), tradingdays.WithMeanCorrection(true))
			require.NoError(t, err)
			m, err := g.Generate(d)
			require.NoError(t, err)
			sums, err := matrix.ColSums(m)
			require.NoError(t, err)
			for j, s := range sums {
				assert.InDelta(t, 0, s, 1e-6, "unit %s contrast %v column %d", u, contrast, j)
			}
		}
	}
}

func TestFillShapeAndUnit(t *testing.T) {
	g, err := tradingdays.NewGenerator(daycount.TD3)
	require.NoError(t, err)
	d := span(t, timeunit.Monthly, ym(2020, 1), ym(2021, 1))

	require.ErrorIs(t, g.Fill(d, mustDense(t, 12, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, g.Fill(d, mustDense(t, 11, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, g.Fill(d, nil), matrix.ErrNilMatrix)

	out := mustDense(t, 12, 2)
	require.NoError(t, g.Fill(d, out))

	hourly, err := period.DomainBetween(timeunit.Hourly, ym(2020, 1), ym(2020, 2))
	require.NoError(t, err)
	_, err = g.Generate(hourly)
	require.ErrorIs(t, err, daycount.ErrUnsupportedUnit)

	empty, err := g.Generate(span(t, timeunit.Monthly, ym(2020, 1), ym(2020, 1)))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestCorrectorIsFoldedIntoGroups(t *testing.T) {
	d := span(t, timeunit.Monthly, ym(2024, 1), ym(2024, 3))
	corr := fixedCorrector{row: [7]float64{-1, 0, 0, 0, 0, 0, 1}} // a Monday holiday
	logger, logs := testutil.NewLogger(t)

	g, err := tradingdays.NewGenerator(daycount.TD2,
		tradingdays.WithContrast(false), tradingdays.WithCorrector(corr), tradingdays.WithLogger(logger))
	require.NoError(t, err)
	m, err := g.Generate(d)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{22, 9}, {20, 9}}, rowsOf(t, m))
	assert.Contains(t, logs.Messages(), "tradingdays fill")
}

func TestCorrectorDoesNotLeakIntoCache(t *testing.T) {
	cache, err := tradingdays.NewCache()
	require.NoError(t, err)
	d := span(t, timeunit.Monthly, ym(2024, 1), ym(2024, 3))

	corrected, err := tradingdays.NewGenerator(daycount.TD2, tradingdays.WithContrast(false),
		tradingdays.WithCache(cache), tradingdays.WithCorrector(fixedCorrector{row: [7]float64{-1, 0, 0, 0, 0, 0, 1}}))
	require.NoError(t, err)
	plain, err := tradingdays.NewGenerator(daycount.TD2, tradingdays.WithContrast(false), tradingdays.WithCache(cache))
	require.NoError(t, err)

	_, err = corrected.Generate(d)
	require.NoError(t, err)
	m, err := plain.Generate(d)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{23, 8}, {21, 8}}, rowsOf(t, m))
}

func TestOffsetsShareResults(t *testing.T) {
	g, err := tradingdays.NewGenerator(daycount.TD7)
	require.NoError(t, err)

	a := span(t, timeunit.Quarterly, ym(2018, 1), ym(2022, 1))
	start, err := period.At(1, timeunit.Quarterly, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := period.NewDomain(start, a.Length())
	require.NoError(t, err)

	ma, err := g.Generate(a)
	require.NoError(t, err)
	mb, err := g.Generate(b)
	require.NoError(t, err)
	assert.Equal(t, rowsOf(t, ma), rowsOf(t, mb))
}
