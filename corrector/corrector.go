// SPDX-License-Identifier: MIT

package corrector

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/holiday"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
)

// Corrector supplies a Length×7 block of per-weekday adjustments for a domain.
type Corrector interface {
	Corrections(dom period.Domain) (*matrix.Dense, error)
}

// Func adapts a plain function to Corrector.
type Func func(dom period.Domain) (*matrix.Dense, error)

// Corrections implements Corrector.
func (f Func) Corrections(dom period.Domain) (*matrix.Dense, error) { return f(dom) }

// Zero returns all-zero corrections.
var Zero Corrector = Func(func(dom period.Domain) (*matrix.Dense, error) {
	return matrix.NewDense(dom.Length(), daycount.NumWeekdays)
})

// toSunday turns per-weekday holiday weights into corrections: the weight
// leaves its weekday and is added to Sunday. Sunday weights are dropped.
func toSunday(eff *matrix.Dense, scale float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(eff.Rows(), daycount.NumWeekdays)
	if err != nil {
		return nil, err
	}
	for i := 0; i < eff.Rows(); i++ {
		src, _ := eff.Row(i)
		dst, _ := out.Row(i)
		for w := daycount.Monday; w < daycount.Sunday; w++ {
			v := scale * src[w]
			dst[w] -= v
			dst[daycount.Sunday] += v
		}
	}

	return out, nil
}

// HolidayCorrector corrects for the entries of a holiday calendar.
type HolidayCorrector struct {
	cal            *holiday.Calendar
	meanCorrection bool
}

// Option configures a HolidayCorrector.
type Option func(*HolidayCorrector)

// WithMeanCorrection removes the long-term mean of every entry, so that the
// corrections average out across years.
func WithMeanCorrection(on bool) Option {
	return func(h *HolidayCorrector) { h.meanCorrection = on }
}

// Holidays returns a corrector for cal.
func Holidays(cal *holiday.Calendar, opts ...Option) *HolidayCorrector {
	h := &HolidayCorrector{cal: cal}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Corrections implements Corrector.
// Errors: holiday.ErrUnsupportedUnit.
func (h *HolidayCorrector) Corrections(dom period.Domain) (*matrix.Dense, error) {
	eff, err := holiday.Effects(dom, h.cal, holiday.WithMeanCorrection(h.meanCorrection))
	if err != nil {
		return nil, fmt.Errorf("Holidays: %w", err)
	}

	return toSunday(eff, 1)
}

// ProviderCorrector corrects for the dates of a moving holiday provider.
type ProviderCorrector struct {
	provider holiday.Provider
	weight   float64
}

// Provider returns a corrector moving weight per provider date to Sunday.
func Provider(p holiday.Provider, weight float64) *ProviderCorrector {
	return &ProviderCorrector{provider: p, weight: weight}
}

// Corrections implements Corrector.
// Errors: holiday.ErrUnsupportedUnit.
func (p *ProviderCorrector) Corrections(dom period.Domain) (*matrix.Dense, error) {
	dates, err := holiday.ProviderDates(dom, p.provider)
	if err != nil {
		return nil, fmt.Errorf("Provider(%s): %w", p.provider.Identifier(), err)
	}

	return toSunday(dates, p.weight)
}

// ChainedCorrector switches between two correctors at a break date.
type ChainedCorrector struct {
	breakDate time.Time
	before    Corrector
	after     Corrector
}

// Chained returns a corrector using before for the periods preceding the one
// containing breakDate and after for the rest.
func Chained(breakDate time.Time, before, after Corrector) *ChainedCorrector {
	return &ChainedCorrector{breakDate: breakDate, before: before, after: after}
}

// Corrections implements Corrector.
//
// Implementation:
//   - Stage 1: locate the period containing the break, clamped to the domain.
//   - Stage 2: evaluate each side on its own sub-domain, skipping empty sides.
//   - Stage 3: stack the blocks.
//
// Errors: ErrNilCorrector, matrix.ErrDimensionMismatch, or whatever a side returns.
func (c *ChainedCorrector) Corrections(dom period.Domain) (*matrix.Dense, error) {
	if c.before == nil || c.after == nil {
		return nil, fmt.Errorf("Chained: %w", ErrNilCorrector)
	}
	split, err := dom.Start().Until(dom.Start().WithDate(c.breakDate))
	if err != nil {
		return nil, fmt.Errorf("Chained: %w", err)
	}
	k := int(max(0, min(split, int64(dom.Length()))))

	parts := make([]*matrix.Dense, 0, 2)
	for _, side := range []struct {
		corr       Corrector
		first, end int
	}{{c.before, 0, k}, {c.after, k, dom.Length()}} {
		if side.first == side.end {
			continue
		}
		sub, err := dom.Range(side.first, side.end)
		if err != nil {
			return nil, fmt.Errorf("Chained: %w", err)
		}
		m, err := correctionsOf(side.corr, sub)
		if err != nil {
			return nil, fmt.Errorf("Chained: %w", err)
		}
		parts = append(parts, m)
	}

	return matrix.StackRows(daycount.NumWeekdays, parts...)
}

// Weighted pairs a corrector with its weight in a composite.
type Weighted struct {
	Corrector Corrector
	Weight    float64
}

// CompositeCorrector sums weighted correctors.
type CompositeCorrector struct {
	parts []Weighted
}

// Composite returns Σ weight·corrector. An empty composite corrects nothing.
func Composite(parts ...Weighted) *CompositeCorrector {
	return &CompositeCorrector{parts: append([]Weighted(nil), parts...)}
}

// Corrections implements Corrector.
// Errors: ErrNilCorrector, matrix.ErrDimensionMismatch, or whatever a part returns.
func (c *CompositeCorrector) Corrections(dom period.Domain) (*matrix.Dense, error) {
	out, err := matrix.NewDense(dom.Length(), daycount.NumWeekdays)
	if err != nil {
		return nil, fmt.Errorf("Composite: %w", err)
	}
	for i, p := range c.parts {
		if p.Corrector == nil {
			return nil, fmt.Errorf("Composite: part %d: %w", i, ErrNilCorrector)
		}
		m, err := correctionsOf(p.Corrector, dom)
		if err != nil {
			return nil, fmt.Errorf("Composite: part %d: %w", i, err)
		}
		if err = matrix.AddScaledInPlace(out, m, p.Weight); err != nil {
			return nil, fmt.Errorf("Composite: part %d: %w", i, err)
		}
	}

	return out, nil
}

// correctionsOf evaluates c on dom and checks the Length×7 shape.
func correctionsOf(c Corrector, dom period.Domain) (*matrix.Dense, error) {
	m, err := c.Corrections(dom)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateShape(m, dom.Length(), daycount.NumWeekdays); err != nil {
		return nil, err
	}

	return m, nil
}
