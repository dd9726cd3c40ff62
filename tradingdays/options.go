// SPDX-License-Identifier: MIT

package tradingdays

import (
	"log/slog"
	"math"
)

// Option configures a Generator.
type Option func(*Generator)

// WithContrast selects contrast (true, the default) or raw (false) columns.
func WithContrast(on bool) Option {
	return func(g *Generator) { g.contrast = on }
}

// WithMeanCorrection subtracts each column's long-run expectation, so that
// regressors have zero mean over a full Gregorian cycle.
func WithMeanCorrection(on bool) Option {
	return func(g *Generator) { g.meanCorrection = on }
}

// WithWeights overrides the contrast weights of groups 1..k−1.
// Panics on NaN or Inf.
func WithWeights(w []float64) Option {
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("tradingdays: WithWeights requires finite weights")
		}
	}
	cp := append([]float64(nil), w...)
	return func(g *Generator) { g.weights = cp }
}

// WithCache serves group sums through c. A nil cache disables caching.
func WithCache(c *Cache) Option {
	return func(g *Generator) { g.cache = c }
}

// WithCorrector adds corr's per-weekday corrections to the group sums.
func WithCorrector(corr Corrector) Option {
	return func(g *Generator) { g.corrector = corr }
}

// WithLogger sets the generator logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tradingdays: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}
