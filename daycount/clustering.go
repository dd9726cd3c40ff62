// SPDX-License-Identifier: MIT

package daycount

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcal/matrix"
)

// Clustering partitions weekdays into k groups. groups[w] is the group of
// weekday w; group 0 is the reference group.
// The zero value is not a valid clustering.
type Clustering struct {
	groups [NumWeekdays]int
	k      int
}

// Predeclared clusterings. The reference group holds Sunday in each of them.
var (
	TD2  = mustClustering([NumWeekdays]int{1, 1, 1, 1, 1, 0, 0}) // week days / week-end
	TD2c = mustClustering([NumWeekdays]int{1, 1, 1, 1, 1, 1, 0}) // Mon-Sat / Sun
	TD3  = mustClustering([NumWeekdays]int{1, 1, 1, 1, 1, 2, 0}) // Mon-Fri / Sat / Sun
	TD3c = mustClustering([NumWeekdays]int{1, 1, 1, 1, 2, 2, 0}) // Mon-Thu / Fri-Sat / Sun
	TD4  = mustClustering([NumWeekdays]int{1, 1, 1, 1, 2, 3, 0}) // Mon-Thu / Fri / Sat / Sun
	TD7  = mustClustering([NumWeekdays]int{1, 2, 3, 4, 5, 6, 0}) // one group per day
)

var named = map[string]Clustering{
	"TD2":  TD2,
	"TD2c": TD2c,
	"TD3":  TD3,
	"TD3c": TD3c,
	"TD4":  TD4,
	"TD7":  TD7,
}

// NewClustering validates groups: values lie in [0, 6] and every group index
// from 0 to the largest one is used at least once.
// Errors: ErrInvalidClustering.
func NewClustering(groups [NumWeekdays]int) (Clustering, error) {
	k := 0
	for w, g := range groups {
		if g < 0 || g >= NumWeekdays {
			return Clustering{}, fmt.Errorf("NewClustering: weekday %d in group %d: %w", w, g, ErrInvalidClustering)
		}
		k = max(k, g+1)
	}
	var used [NumWeekdays]bool
	for _, g := range groups {
		used[g] = true
	}
	for g := 0; g < k; g++ {
		if !used[g] {
			return Clustering{}, fmt.Errorf("NewClustering: group %d is empty: %w", g, ErrInvalidClustering)
		}
	}

	return Clustering{groups: groups, k: k}, nil
}

func mustClustering(groups [NumWeekdays]int) Clustering {
	c, err := NewClustering(groups)
	if err != nil {
		panic(err)
	}

	return c
}

// Lookup returns a predeclared clustering by name. Unknown names report false.
func Lookup(name string) (Clustering, bool) {
	c, ok := named[name]
	return c, ok
}

// Groups returns the weekday-to-group table.
func (c Clustering) Groups() [NumWeekdays]int { return c.groups }

// Len returns the number of groups k.
func (c Clustering) Len() int { return c.k }

// IsZero reports whether c is the invalid zero Clustering.
func (c Clustering) IsZero() bool { return c.k == 0 }

// GroupOf returns the group of weekday w.
func (c Clustering) GroupOf(w int) int { return c.groups[w] }

// GroupSize returns the number of weekdays in group g.
func (c Clustering) GroupSize(g int) int {
	n := 0
	for _, x := range c.groups {
		if x == g {
			n++
		}
	}

	return n
}

// Weekdays returns the weekdays of group g in ascending order.
func (c Clustering) Weekdays(g int) []int {
	var out []int
	for w, x := range c.groups {
		if x == g {
			out = append(out, w)
		}
	}

	return out
}

// String returns the predeclared name or the group table.
func (c Clustering) String() string {
	for name, v := range named {
		if v == c {
			return name
		}
	}
	parts := make([]string, NumWeekdays)
	for w, g := range c.groups {
		parts[w] = fmt.Sprint(g)
	}

	return "Clustering(" + strings.Join(parts, ",") + ")"
}

// GroupSums returns a Len×k matrix whose column g sums the counts of the
// weekdays in group g.
func GroupSums(counts Counts, c Clustering) (*matrix.Dense, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("GroupSums: %w", ErrInvalidClustering)
	}
	m, err := matrix.NewDense(len(counts), c.k)
	if err != nil {
		return nil, fmt.Errorf("GroupSums: %w", err)
	}
	for i := range counts {
		row, _ := m.Row(i)
		for w, v := range counts[i] {
			row[c.groups[w]] += float64(v)
		}
	}

	return m, nil
}

// AggregateRows folds a rows×7 per-weekday matrix into rows×k group columns.
// Errors: matrix.ErrDimensionMismatch when src is not 7 columns wide.
func AggregateRows(src matrix.Matrix, c Clustering) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("AggregateRows: %w", err)
	}
	if err := matrix.ValidateShape(src, src.Rows(), NumWeekdays); err != nil {
		return nil, fmt.Errorf("AggregateRows: %w", err)
	}
	m, err := matrix.NewDense(src.Rows(), c.k)
	if err != nil {
		return nil, fmt.Errorf("AggregateRows: %w", err)
	}
	for i := 0; i < src.Rows(); i++ {
		row, _ := m.Row(i)
		for w := 0; w < NumWeekdays; w++ {
			v, err := src.At(i, w)
			if err != nil {
				return nil, fmt.Errorf("AggregateRows: %w", err)
			}
			row[c.groups[w]] += v
		}
	}

	return m, nil
}
