// SPDX-License-Identifier: MIT

package period

import "time"

// SelectorKind enumerates the selection policies of Domain.Select.
type SelectorKind int

const (
	SelectAll SelectorKind = iota
	SelectNone
	SelectFirst
	SelectLast
	SelectExcluding
	SelectFrom
	SelectTo
	SelectBetween
)

// Selector describes a sub-span of a domain, by index or by date.
type Selector struct {
	Kind   SelectorKind
	N0, N1 int
	D0, D1 time.Time
}

// All keeps every period.
func All() Selector { return Selector{Kind: SelectAll} }

// None keeps no period.
func None() Selector { return Selector{Kind: SelectNone} }

// First keeps the first n periods.
func First(n int) Selector { return Selector{Kind: SelectFirst, N0: n} }

// Last keeps the last n periods.
func Last(n int) Selector { return Selector{Kind: SelectLast, N1: n} }

// Excluding drops n0 periods at the head and n1 at the tail.
func Excluding(n0, n1 int) Selector { return Selector{Kind: SelectExcluding, N0: n0, N1: n1} }

// From keeps the periods starting on or after t. A period straddling t is dropped.
func From(t time.Time) Selector { return Selector{Kind: SelectFrom, D0: t} }

// To keeps the periods starting strictly before t. A period straddling t is kept.
func To(t time.Time) Selector { return Selector{Kind: SelectTo, D1: t} }

// Between combines From(t0) and To(t1).
func Between(t0, t1 time.Time) Selector { return Selector{Kind: SelectBetween, D0: t0, D1: t1} }

// Select returns the sub-domain chosen by s. Counts are clamped to the domain,
// so Select never fails. From(t) and To(t) partition the domain for every t.
func (d Domain) Select(s Selector) Domain {
	switch s.Kind {
	case SelectAll:
		return d
	case SelectNone:
		return d.clamp(0, 0)
	case SelectFirst:
		return d.clamp(0, s.N0)
	case SelectLast:
		return d.clamp(d.length-max(s.N1, 0), d.length)
	case SelectExcluding:
		return d.clamp(max(s.N0, 0), d.length-max(s.N1, 0))
	case SelectFrom:
		return d.clamp(d.firstStartingAtOrAfter(s.D0), d.length)
	case SelectTo:
		return d.clamp(0, d.firstStartingAtOrAfter(s.D1))
	case SelectBetween:
		return d.clamp(d.firstStartingAtOrAfter(s.D0), d.firstStartingAtOrAfter(s.D1))
	default:
		return d
	}
}

// firstStartingAtOrAfter returns the unclamped index of the first period whose
// start is not before t.
func (d Domain) firstStartingAtOrAfter(t time.Time) int {
	id := IDAt(d.start.offset, d.start.unit, t)
	k := id - d.start.id
	if DateAt(d.start.offset, d.start.unit, id).Before(wall(t)) {
		k++
	}
	switch {
	case k < 0:
		return 0
	case k > int64(d.length):
		return d.length
	default:
		return int(k)
	}
}
