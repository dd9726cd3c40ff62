// SPDX-License-Identifier: MIT

package holiday

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/lvcal/internal/civil"
)

// Validity restricts an entry to [Start, End). Zero bounds are open.
type Validity struct {
	Start time.Time
	End   time.Time
}

// Always is the unbounded validity.
var Always = Validity{}

// Contains reports whether t falls inside v, by calendar day.
func (v Validity) Contains(t time.Time) bool {
	dn := civil.DayOf(t)
	if !v.Start.IsZero() && dn < civil.DayOf(v.Start) {
		return false
	}
	if !v.End.IsZero() && dn >= civil.DayOf(v.End) {
		return false
	}

	return true
}

// Entry is one special day of a calendar.
type Entry struct {
	Name     string
	Day      SpecialDay
	Validity Validity
}

// Occurrence is a dated entry of a calendar.
type Occurrence struct {
	Date   time.Time
	Weight float64
	Entry  int // index into Calendar.Entries
}

// Builder accumulates entries until Build freezes them.
// Safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	entries []Entry
	frozen  bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Add appends day with validity v.
// Errors: ErrFrozen, ErrInvalidDay, ErrInvalidValidity.
func (b *Builder) Add(day SpecialDay, v Validity) error {
	return b.AddEntry(Entry{Name: day.String(), Day: day, Validity: v})
}

// AddEntry appends e.
// Errors: ErrFrozen, ErrInvalidDay, ErrInvalidValidity.
func (b *Builder) AddEntry(e Entry) error {
	if err := e.Day.Validate(); err != nil {
		return fmt.Errorf("Builder.Add: %w", err)
	}
	if !e.Validity.Start.IsZero() && !e.Validity.End.IsZero() && e.Validity.End.Before(e.Validity.Start) {
		return fmt.Errorf("Builder.Add: %w", ErrInvalidValidity)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return fmt.Errorf("Builder.Add: %w", ErrFrozen)
	}
	b.entries = append(b.entries, e)

	return nil
}

// Build freezes the builder and returns the calendar. Later calls return
// calendars with the same entries.
func (b *Builder) Build() *Calendar {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frozen = true

	return &Calendar{entries: append([]Entry(nil), b.entries...)}
}

// Calendar is a frozen, ordered list of entries. Read-only and safe to share.
type Calendar struct {
	entries []Entry
}

// Len returns the number of entries.
func (c *Calendar) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in insertion order.
func (c *Calendar) Entries() []Entry { return append([]Entry(nil), c.entries...) }

// Occurrences returns the dated entries within [start, end) sorted by date.
// When several entries fall on the same date only the heaviest one is kept;
// ties go to the earlier entry.
func (c *Calendar) Occurrences(start, end time.Time) []Occurrence {
	best := make(map[int64]Occurrence)
	for i, e := range c.entries {
		for _, t := range e.Day.Occurrences(start, end) {
			if !e.Validity.Contains(t) {
				continue
			}
			dn := civil.DayOf(t)
			if cur, ok := best[dn]; ok && cur.Weight >= e.Day.Weight {
				continue
			}
			best[dn] = Occurrence{Date: t, Weight: e.Day.Weight, Entry: i}
		}
	}
	out := make([]Occurrence, 0, len(best))
	for _, o := range best {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}
