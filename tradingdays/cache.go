// SPDX-License-Identifier: MIT

package tradingdays

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/timeunit"
)

// meterName scopes the cache instruments.
const meterName = "github.com/katalvlaran/lvcal/tradingdays"

// cacheKey identifies a cached window. Offsets are normalized away, so the
// unit alone fixes the period grid.
type cacheKey struct {
	clustering daycount.Clustering
	unit       timeunit.Unit
}

// cacheEntry is a contiguous block of group sums for ids [anchor, anchor+rows).
type cacheEntry struct {
	anchor  int64
	sums    *matrix.Dense
	lastUse uint64
}

// CacheStats is a point-in-time snapshot of cache activity.
type CacheStats struct {
	Entries    int
	Hits       int64
	Misses     int64
	Extensions int64
}

// Cache stores uncorrected weekday-group sums per (clustering, unit).
// Safe for concurrent use; the zero value is not usable, call NewCache.
type Cache struct {
	mu         sync.Mutex
	entries    map[cacheKey]*cacheEntry
	clock      uint64
	maxEntries int
	maxRows    int
	logger     *slog.Logger
	meter      metric.Meter

	stats      CacheStats
	hits       metric.Int64Counter
	misses     metric.Int64Counter
	extensions metric.Int64Counter
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithMaxEntries bounds the number of cached windows; the least recently used
// window is evicted on overflow. 0 means unbounded. Panics if n < 0.
func WithMaxEntries(n int) CacheOption {
	if n < 0 {
		panic("tradingdays: WithMaxEntries(n) requires n >= 0")
	}
	return func(c *Cache) { c.maxEntries = n }
}

// WithMaxRows bounds the height of a cached window. Requests whose merged
// window would exceed it are computed without touching the cache.
// 0 means unbounded. Panics if n < 0.
func WithMaxRows(n int) CacheOption {
	if n < 0 {
		panic("tradingdays: WithMaxRows(n) requires n >= 0")
	}
	return func(c *Cache) { c.maxRows = n }
}

// WithCacheLogger sets the logger used for debug traces. Panics on nil.
func WithCacheLogger(l *slog.Logger) CacheOption {
	if l == nil {
		panic("tradingdays: WithCacheLogger(nil)")
	}
	return func(c *Cache) { c.logger = l }
}

// WithMeter sets the meter providing the hit/miss/extension counters.
// Panics on nil.
func WithMeter(m metric.Meter) CacheOption {
	if m == nil {
		panic("tradingdays: WithMeter(nil)")
	}
	return func(c *Cache) { c.meter = m }
}

// NewCache returns an empty cache. Without WithMeter a no-op meter is used.
func NewCache(opts ...CacheOption) (*Cache, error) {
	c := &Cache{
		entries: make(map[cacheKey]*cacheEntry),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		meter:   noop.NewMeterProvider().Meter(meterName),
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	if c.hits, err = c.meter.Int64Counter(
		"lvcal_tradingdays_cache_hits_total",
		metric.WithDescription("Requests served entirely from a cached window"),
	); err != nil {
		return nil, fmt.Errorf("NewCache: %w", err)
	}
	if c.misses, err = c.meter.Int64Counter(
		"lvcal_tradingdays_cache_misses_total",
		metric.WithDescription("Requests with no cached window for their key"),
	); err != nil {
		return nil, fmt.Errorf("NewCache: %w", err)
	}
	if c.extensions, err = c.meter.Int64Counter(
		"lvcal_tradingdays_cache_extensions_total",
		metric.WithDescription("Requests that extended a cached window"),
	); err != nil {
		return nil, fmt.Errorf("NewCache: %w", err)
	}

	return c, nil
}

// GroupSums returns the dom.Length()×k weekday-group sums of dom.
// The result may share storage with the cache and must not be modified.
// Errors: ErrInvalidClustering, daycount.ErrUnsupportedUnit.
func (c *Cache) GroupSums(dom period.Domain, clustering daycount.Clustering) (*matrix.Dense, error) {
	if clustering.IsZero() {
		return nil, fmt.Errorf("Cache.GroupSums: %w", ErrInvalidClustering)
	}
	if !dom.Unit().IsCalendar() {
		return nil, fmt.Errorf("Cache.GroupSums: %s: %w", dom.Unit(), daycount.ErrUnsupportedUnit)
	}
	if dom.IsEmpty() {
		return matrix.NewDense(0, clustering.Len())
	}

	unit := dom.Unit()
	lo := dom.Start().Rebase(0).ID()
	hi := lo + int64(dom.Length())
	key := cacheKey{clustering: clustering, unit: unit}
	attrs := metric.WithAttributes(
		attribute.String("clustering", clustering.String()),
		attribute.String("unit", unit.String()),
	)
	ctx := context.Background()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock++

	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		c.misses.Add(ctx, 1, attrs)
		sums, err := computeSums(unit, clustering, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("Cache.GroupSums: %w", err)
		}
		if c.maxRows == 0 || int(hi-lo) <= c.maxRows {
			c.store(key, &cacheEntry{anchor: lo, sums: sums, lastUse: c.clock})
			c.logger.Debug("tradingdays cache store",
				slog.String("clustering", clustering.String()),
				slog.String("unit", unit.String()),
				slog.Int64("first", lo),
				slog.Int("rows", sums.Rows()))
		}

		return sums, nil
	}

	e.lastUse = c.clock
	end := e.anchor + int64(e.sums.Rows())
	if lo >= e.anchor && hi <= end {
		c.stats.Hits++
		c.hits.Add(ctx, 1, attrs)

		return e.sums.SliceRows(int(lo-e.anchor), int(hi-e.anchor))
	}

	newLo, newHi := min(lo, e.anchor), max(hi, end)
	if c.maxRows > 0 && int(newHi-newLo) > c.maxRows {
		c.stats.Misses++
		c.misses.Add(ctx, 1, attrs)
		c.logger.Debug("tradingdays cache bypass",
			slog.String("clustering", clustering.String()),
			slog.String("unit", unit.String()),
			slog.Int64("rows", newHi-newLo))

		return computeSums(unit, clustering, lo, hi)
	}

	parts := make([]*matrix.Dense, 0, 3)
	if newLo < e.anchor {
		head, err := computeSums(unit, clustering, newLo, e.anchor)
		if err != nil {
			return nil, fmt.Errorf("Cache.GroupSums: head: %w", err)
		}
		parts = append(parts, head)
	}
	parts = append(parts, e.sums)
	if newHi > end {
		tail, err := computeSums(unit, clustering, end, newHi)
		if err != nil {
			return nil, fmt.Errorf("Cache.GroupSums: tail: %w", err)
		}
		parts = append(parts, tail)
	}
	merged, err := matrix.StackRows(clustering.Len(), parts...)
	if err != nil {
		return nil, fmt.Errorf("Cache.GroupSums: %w", err)
	}

	c.stats.Extensions++
	c.extensions.Add(ctx, 1, attrs)
	c.logger.Debug("tradingdays cache extend",
		slog.String("clustering", clustering.String()),
		slog.String("unit", unit.String()),
		slog.Int64("head", e.anchor-newLo),
		slog.Int64("tail", newHi-end),
		slog.Int("rows", merged.Rows()))
	e.anchor, e.sums = newLo, merged

	return merged.SliceRows(int(lo-newLo), int(hi-newLo))
}

// store inserts e under key, evicting the least recently used window when full.
// Caller holds c.mu.
func (c *Cache) store(key cacheKey, e *cacheEntry) {
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[key] = e
}

// evictOldest removes the least recently used window. Caller holds c.mu.
func (c *Cache) evictOldest() {
	var oldestKey cacheKey
	var oldestUse uint64
	found := false
	for key, e := range c.entries {
		if !found || e.lastUse < oldestUse {
			oldestKey, oldestUse, found = key, e.lastUse, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
		c.logger.Debug("tradingdays cache evict",
			slog.String("clustering", oldestKey.clustering.String()),
			slog.String("unit", oldestKey.unit.String()))
	}
}

// Window reports the cached span for (clustering, unit), if any.
func (c *Cache) Window(clustering daycount.Clustering, unit timeunit.Unit) (period.Domain, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[cacheKey{clustering: clustering, unit: unit}]
	if !ok {
		return period.Domain{}, false
	}
	start, err := period.OfID(unit, e.anchor)
	if err != nil {
		return period.Domain{}, false
	}
	d, err := period.NewDomain(start, e.sums.Rows())
	if err != nil {
		return period.Domain{}, false
	}

	return d, true
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = len(c.entries)

	return s
}

// Clear drops every cached window. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// computeSums counts weekdays over offset-0 ids [lo, hi) and groups them.
func computeSums(unit timeunit.Unit, clustering daycount.Clustering, lo, hi int64) (*matrix.Dense, error) {
	start, err := period.OfID(unit, lo)
	if err != nil {
		return nil, err
	}
	dom, err := period.NewDomain(start, int(hi-lo))
	if err != nil {
		return nil, err
	}
	counts, err := daycount.Count(dom)
	if err != nil {
		return nil, err
	}

	return daycount.GroupSums(counts, clustering)
}
