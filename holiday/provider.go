// SPDX-License-Identifier: MIT

package holiday

import (
	"fmt"
	"sort"
	"sync"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/internal/civil"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
)

// Provider supplies the dates of a moving holiday that no SpecialDay rule
// describes.
type Provider interface {
	Identifier() string
	// Holidays returns the dates within [start, end) in ascending order.
	Holidays(start, end time.Time) []time.Time
}

// Registry maps identifiers to providers. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds p under p.Identifier().
// Errors: ErrDuplicateProvider.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := p.Identifier()
	if _, ok := r.providers[id]; ok {
		return fmt.Errorf("Registry.Register(%q): %w", id, ErrDuplicateProvider)
	}
	r.providers[id] = p

	return nil
}

// Lookup returns the provider registered under id.
func (r *Registry) Lookup(id string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]

	return p, ok
}

// Identifiers returns the registered identifiers, sorted.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// CalProvider serves the dates of rickar/cal holidays.
type CalProvider struct {
	id       string
	observed bool
	holidays []*cal.Holiday
}

// NewCalProvider returns a provider over hs. When observed is true the
// observed date (weekend substitution) is used instead of the actual one.
func NewCalProvider(id string, observed bool, hs ...*cal.Holiday) *CalProvider {
	return &CalProvider{id: id, observed: observed, holidays: hs}
}

// USFederal returns the observed US federal holidays.
func USFederal() *CalProvider {
	return NewCalProvider("us-federal", true,
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
}

// Identifier implements Provider.
func (p *CalProvider) Identifier() string { return p.id }

// Names returns the names of the wrapped holidays.
func (p *CalProvider) Names() []string {
	out := make([]string, len(p.holidays))
	for i, h := range p.holidays {
		out[i] = h.Name
	}

	return out
}

// Holidays implements Provider. Holidays outside their active years are skipped.
func (p *CalProvider) Holidays(start, end time.Time) []time.Time {
	lo, hi := civil.DayOf(start), civil.DayOf(end)
	if hi <= lo {
		return nil
	}
	seen := make(map[int64]bool)
	var out []time.Time
	// Observed dates may cross a year boundary (Jan 1 on a Saturday).
	for y := start.Year() - 1; y <= end.Year()+1; y++ {
		for _, h := range p.holidays {
			actual, observed := h.Calc(y)
			t := actual
			if p.observed {
				t = observed
			}
			if t.IsZero() {
				continue
			}
			dn := civil.DayOf(t)
			if dn < lo || dn >= hi || seen[dn] {
				continue
			}
			seen[dn] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	return out
}

// CalendarProvider exposes a Calendar as a Provider.
type CalendarProvider struct {
	id  string
	cal *Calendar
}

// NewCalendarProvider returns a provider over the occurrences of c.
func NewCalendarProvider(id string, c *Calendar) *CalendarProvider {
	return &CalendarProvider{id: id, cal: c}
}

// Identifier implements Provider.
func (p *CalendarProvider) Identifier() string { return p.id }

// Holidays implements Provider.
func (p *CalendarProvider) Holidays(start, end time.Time) []time.Time {
	occ := p.cal.Occurrences(start, end)
	out := make([]time.Time, len(occ))
	for i, o := range occ {
		out[i] = o.Date
	}

	return out
}

// ProviderDates returns, per period of dom, the number of provider dates
// falling on each weekday as a rows×7 matrix.
// Errors: ErrUnsupportedUnit.
func ProviderDates(dom period.Domain, p Provider) (*matrix.Dense, error) {
	if !dom.Unit().IsCalendar() {
		return nil, fmt.Errorf("ProviderDates(%s): %w", dom.Unit(), ErrUnsupportedUnit)
	}
	m, err := matrix.NewDense(dom.Length(), daycount.NumWeekdays)
	if err != nil {
		return nil, fmt.Errorf("ProviderDates: %w", err)
	}
	if dom.IsEmpty() {
		return m, nil
	}
	for _, t := range p.Holidays(dom.StartDate(), dom.EndDate()) {
		i := dom.IndexOf(t)
		if i < 0 {
			continue
		}
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("ProviderDates: %w", err)
		}
		row[civil.Weekday(civil.DayOf(t))]++
	}

	return m, nil
}

// MovingRegressor returns a dom.Length()×1 matrix counting the dates of the
// provider registered under id that fall on Monday..Saturday. ok is false,
// with no error, when no such provider is registered.
// Errors: ErrUnsupportedUnit.
func MovingRegressor(dom period.Domain, reg *Registry, id string) (m *matrix.Dense, ok bool, err error) {
	p, found := reg.Lookup(id)
	if !found {
		return nil, false, nil
	}
	days, err := ProviderDates(dom, p)
	if err != nil {
		return nil, true, fmt.Errorf("MovingRegressor(%q): %w", id, err)
	}
	if m, err = matrix.NewDense(dom.Length(), 1); err != nil {
		return nil, true, fmt.Errorf("MovingRegressor(%q): %w", id, err)
	}
	for i := 0; i < dom.Length(); i++ {
		row, err := days.Row(i)
		if err != nil {
			return nil, true, fmt.Errorf("MovingRegressor(%q): %w", id, err)
		}
		out, err := m.Row(i)
		if err != nil {
			return nil, true, fmt.Errorf("MovingRegressor(%q): %w", id, err)
		}
		for w := daycount.Monday; w < daycount.Sunday; w++ {
			out[0] += row[w]
		}
	}

	return m, true, nil
}
