// SPDX-License-Identifier: MIT

package tradingdays

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
)

// Corrector supplies a Length×7 block of per-weekday adjustments for a domain.
type Corrector interface {
	Corrections(dom period.Domain) (*matrix.Dense, error)
}

// Generator produces trading-day regressors for one clustering.
// A Generator is immutable after construction and safe for concurrent use
// as long as its Cache and Corrector are.
type Generator struct {
	clustering     daycount.Clustering
	contrast       bool
	meanCorrection bool
	weights        []float64
	cache          *Cache
	corrector      Corrector
	logger         *slog.Logger
}

// NewGenerator returns a generator for clustering, in contrast mode by default.
// Errors: ErrInvalidClustering, ErrInvalidWeights.
func NewGenerator(clustering daycount.Clustering, opts ...Option) (*Generator, error) {
	if clustering.IsZero() {
		return nil, fmt.Errorf("NewGenerator: %w", ErrInvalidClustering)
	}
	g := &Generator{
		clustering: clustering,
		contrast:   true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.weights != nil && len(g.weights) != clustering.Len()-1 {
		return nil, fmt.Errorf("NewGenerator: got %d weights for %d groups: %w",
			len(g.weights), clustering.Len(), ErrInvalidWeights)
	}
	if g.weights == nil {
		g.weights = DefaultWeights(clustering)
	}

	return g, nil
}

// DefaultWeights returns |g|/|0| for groups 1..k−1.
func DefaultWeights(clustering daycount.Clustering) []float64 {
	ref := float64(clustering.GroupSize(0))
	w := make([]float64, clustering.Len()-1)
	for j := range w {
		w[j] = float64(clustering.GroupSize(j+1)) / ref
	}

	return w
}

// Clustering returns the weekday partition of g.
func (g *Generator) Clustering() daycount.Clustering { return g.clustering }

// Contrast reports whether g emits contrast columns.
func (g *Generator) Contrast() bool { return g.contrast }

// Columns returns k−1 in contrast mode and k in raw mode.
func (g *Generator) Columns() int {
	if g.contrast {
		return g.clustering.Len() - 1
	}

	return g.clustering.Len()
}

// Generate allocates and fills a dom.Length()×Columns() regressor matrix.
func (g *Generator) Generate(dom period.Domain) (*matrix.Dense, error) {
	out, err := matrix.NewDense(dom.Length(), g.Columns())
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if err = g.Fill(dom, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Fill writes the regressors of dom into out, which must be
// dom.Length()×Columns().
//
// Implementation:
//   - Stage 1: group sums from the cache (or computed directly).
//   - Stage 2: corrector output folded into groups and added to a private copy.
//   - Stage 3: raw or contrast columns, optionally mean-corrected.
//
// Errors: matrix.ErrDimensionMismatch, daycount.ErrUnsupportedUnit and any
// corrector failure.
func (g *Generator) Fill(dom period.Domain, out *matrix.Dense) error {
	if err := matrix.ValidateShape(out, dom.Length(), g.Columns()); err != nil {
		return fmt.Errorf("Fill: %w", err)
	}
	if dom.IsEmpty() {
		return nil
	}

	sums, err := g.groupSums(dom)
	if err != nil {
		return fmt.Errorf("Fill: %w", err)
	}
	if g.corrector != nil {
		corr, err := g.corrector.Corrections(dom)
		if err != nil {
			return fmt.Errorf("Fill: corrector: %w", err)
		}
		folded, err := daycount.AggregateRows(corr, g.clustering)
		if err != nil {
			return fmt.Errorf("Fill: corrector: %w", err)
		}
		if sums, err = matrix.Add(sums, folded); err != nil {
			return fmt.Errorf("Fill: corrector: %w", err)
		}
	}

	var means []float64
	if g.meanCorrection {
		if means, err = g.expectations(dom); err != nil {
			return fmt.Errorf("Fill: %w", err)
		}
	}

	k := g.clustering.Len()
	cols := g.Columns()
	for i := 0; i < dom.Length(); i++ {
		src, _ := sums.Row(i)
		dst, _ := out.Row(i)
		mean := 0.0
		if means != nil {
			mean = means[i]
		}
		for j := 0; j < k-1; j++ {
			grp := j + 1
			if g.contrast {
				dst[j] = src[grp] - g.weights[j]*src[0]
				if means != nil {
					dst[j] -= mean * (float64(g.clustering.GroupSize(grp)) - g.weights[j]*float64(g.clustering.GroupSize(0))) / daycount.NumWeekdays
				}
				continue
			}
			dst[j] = src[grp] - mean*float64(g.clustering.GroupSize(grp))/daycount.NumWeekdays
		}
		if !g.contrast {
			dst[cols-1] = src[0] - mean*float64(g.clustering.GroupSize(0))/daycount.NumWeekdays
		}
	}
	g.logger.Debug("tradingdays fill",
		slog.String("clustering", g.clustering.String()),
		slog.Bool("contrast", g.contrast),
		slog.String("domain", dom.String()))

	return nil
}

// groupSums returns the uncorrected k-column group sums of dom.
func (g *Generator) groupSums(dom period.Domain) (*matrix.Dense, error) {
	if g.cache != nil {
		return g.cache.GroupSums(dom, g.clustering)
	}
	counts, err := daycount.Count(dom)
	if err != nil {
		return nil, err
	}

	return daycount.GroupSums(counts, g.clustering)
}

// expectations returns the long-run mean length in days of every period of dom.
func (g *Generator) expectations(dom period.Domain) ([]float64, error) {
	lengths, err := daycount.MeanLengths(dom.Unit())
	if err != nil {
		return nil, err
	}
	out := make([]float64, dom.Length())
	p := dom.Start()
	for i := range out {
		pos, ok := p.AnnualPosition()
		if !ok {
			pos = 0
		}
		out[i] = lengths[pos]
		p = p.Plus(1)
	}

	return out, nil
}
