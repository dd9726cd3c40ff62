// SPDX-License-Identifier: MIT

package holiday

import (
	"fmt"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
)

// RegressorOption configures Regressors and Effects.
type RegressorOption func(*regressorConfig)

type regressorConfig struct {
	meanCorrection bool
}

// WithMeanCorrection removes each entry's long-term mean from its effect.
func WithMeanCorrection(on bool) RegressorOption {
	return func(c *regressorConfig) { c.meanCorrection = on }
}

// effects returns, per entry, the rows×7 weight table of its occurrences in
// dom, optionally net of the entry's long-term mean.
func effects(dom period.Domain, c *Calendar, opts []RegressorOption) ([][][daycount.NumWeekdays]float64, error) {
	if !dom.Unit().IsCalendar() {
		return nil, fmt.Errorf("%s: %w", dom.Unit(), ErrUnsupportedUnit)
	}
	cfg := regressorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([][][daycount.NumWeekdays]float64, c.Len())
	for j := range out {
		out[j] = make([][daycount.NumWeekdays]float64, dom.Length())
	}
	if dom.IsEmpty() {
		return out, nil
	}

	for _, o := range c.Occurrences(dom.StartDate(), dom.EndDate()) {
		i := dom.IndexOf(o.Date)
		if i < 0 {
			continue
		}
		w := daycount.WeekdayOf(daycount.DayNumber(o.Date.Year(), int(o.Date.Month()), o.Date.Day()))
		out[o.Entry][i][w] += o.Weight
	}

	if !cfg.meanCorrection {
		return out, nil
	}
	for j, e := range c.entries {
		mean, err := LongTermMean(e.Day, dom.Unit())
		if err != nil {
			return nil, err
		}
		p := dom.Start()
		for i := 0; i < dom.Length(); i++ {
			if e.Validity.Contains(p.Start()) {
				pos, ok := p.AnnualPosition()
				if !ok {
					pos = 0
				}
				for w := range out[j][i] {
					out[j][i][w] -= mean[pos][w]
				}
			}
			p = p.Plus(1)
		}
	}

	return out, nil
}

// Regressors returns a dom.Length()×Len matrix with one column per entry:
// the weight of the entry's occurrences falling on Monday..Saturday.
// Errors: ErrUnsupportedUnit.
func Regressors(dom period.Domain, c *Calendar, opts ...RegressorOption) (*matrix.Dense, error) {
	eff, err := effects(dom, c, opts)
	if err != nil {
		return nil, fmt.Errorf("Regressors: %w", err)
	}
	m, err := matrix.NewDense(dom.Length(), c.Len())
	if err != nil {
		return nil, fmt.Errorf("Regressors: %w", err)
	}
	for j := range eff {
		for i := range eff[j] {
			v := 0.0
			for w := daycount.Monday; w < daycount.Sunday; w++ {
				v += eff[j][i][w]
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Regressors: %w", err)
			}
		}
	}

	return m, nil
}

// Effects returns the dom.Length()×7 total holiday weight per weekday.
// Errors: ErrUnsupportedUnit.
func Effects(dom period.Domain, c *Calendar, opts ...RegressorOption) (*matrix.Dense, error) {
	eff, err := effects(dom, c, opts)
	if err != nil {
		return nil, fmt.Errorf("Effects: %w", err)
	}
	m, err := matrix.NewDense(dom.Length(), daycount.NumWeekdays)
	if err != nil {
		return nil, fmt.Errorf("Effects: %w", err)
	}
	for j := range eff {
		for i := range eff[j] {
			row, _ := m.Row(i)
			for w, v := range eff[j][i] {
				row[w] += v
			}
		}
	}

	return m, nil
}
