// SPDX-License-Identifier: MIT

// Package engine wires configuration, logging, the trading-day cache and the
// holiday sources into one entry point.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcal/config"
	"github.com/katalvlaran/lvcal/corrector"
	"github.com/katalvlaran/lvcal/holiday"
	"github.com/katalvlaran/lvcal/internal/logging"
	"github.com/katalvlaran/lvcal/internal/telemetry"
	"github.com/katalvlaran/lvcal/matrix"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/tradingdays"
)

var (
	// ErrUnknownCalendar indicates a calendar name that was not loaded.
	ErrUnknownCalendar = errors.New("engine: unknown calendar")

	// ErrUnknownProvider indicates a provider name with no built-in source.
	ErrUnknownProvider = errors.New("engine: unknown provider")

	// ErrDuplicateCalendar indicates two definitions sharing a name.
	ErrDuplicateCalendar = errors.New("engine: duplicate calendar name")
)

// newTelemetry builds the meter providers; replaced in tests.
var newTelemetry = telemetry.New

// builtinProviders are the providers selectable from configuration.
var builtinProviders = map[string]func() holiday.Provider{
	"us-federal": func() holiday.Provider { return holiday.USFederal() },
}

// Engine serves trading-day and holiday regressors. Safe for concurrent use.
type Engine struct {
	id        string
	cfg       *config.Config
	logger    *slog.Logger
	meter     metric.Meter
	tracer    trace.Tracer
	telemetry *telemetry.Providers
	cache     *tradingdays.Cache

	mu        sync.RWMutex
	calendars map[string]*holiday.Calendar
	registry  *holiday.Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the logger built from cfg.Logging. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithMeter sets the meter for the cache counters. Panics on nil.
func WithMeter(m metric.Meter) Option {
	if m == nil {
		panic("engine: WithMeter(nil)")
	}
	return func(e *Engine) { e.meter = m }
}

// WithTracer sets the tracer for engine spans. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("engine: WithTracer(nil)")
	}
	return func(e *Engine) { e.tracer = t }
}

// New builds an engine from cfg: it creates the cache, loads every calendar
// file concurrently and registers the configured providers.
//
// Errors: config.ErrInvalidConfig, holiday.ErrInvalidDefinition,
// ErrDuplicateCalendar, ErrUnknownProvider and file errors.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (_ *Engine, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}
	e := &Engine{
		id:        uuid.NewString(),
		cfg:       cfg,
		calendars: make(map[string]*holiday.Calendar),
		registry:  holiday.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.New(cfg.Logging)
	}
	e.logger = e.logger.With(slog.String("engine_id", e.id))
	if e.tracer == nil {
		e.tracer = tracenoop.NewTracerProvider().Tracer(telemetry.MeterName)
	}
	if e.meter == nil {
		tel, terr := newTelemetry(cfg.Metrics)
		if terr != nil {
			return nil, fmt.Errorf("engine.New: %w", terr)
		}
		e.telemetry, e.meter = tel, tel.Meter
		defer func() {
			if err != nil {
				_ = tel.Shutdown(context.Background())
			}
		}()
	}

	ctx, span := e.tracer.Start(ctx, "engine.New")
	defer span.End()

	if cfg.Cache.Enabled {
		cache, err := tradingdays.NewCache(
			tradingdays.WithMaxEntries(cfg.Cache.MaxEntries),
			tradingdays.WithMaxRows(cfg.Cache.MaxRows),
			tradingdays.WithCacheLogger(e.logger),
			tradingdays.WithMeter(e.meter),
		)
		if err != nil {
			return nil, fmt.Errorf("engine.New: %w", err)
		}
		e.cache = cache
	}

	if err := e.loadCalendars(ctx, cfg.Holidays.Calendars); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load calendars")
		return nil, fmt.Errorf("engine.New: %w", err)
	}
	for _, id := range cfg.Holidays.Providers {
		mk, ok := builtinProviders[id]
		if !ok {
			return nil, fmt.Errorf("engine.New: %q: %w", id, ErrUnknownProvider)
		}
		if err := e.registry.Register(mk()); err != nil {
			return nil, fmt.Errorf("engine.New: %w", err)
		}
	}

	e.logger.Info("engine ready",
		slog.Int("calendars", len(e.calendars)),
		slog.Any("providers", e.registry.Identifiers()),
		slog.Bool("cache", e.cache != nil))

	return e, nil
}

// loadCalendars reads and builds the calendar files in parallel.
func (e *Engine) loadCalendars(ctx context.Context, paths []string) error {
	defs := make([]holiday.Definition, len(paths))
	built := make([]*holiday.Calendar, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if defs[i], err = holiday.LoadDefinition(f); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if built[i], err = defs[i].Calendar(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, def := range defs {
		if err := e.AddCalendar(def.Name, built[i]); err != nil {
			return err
		}
		e.logger.Debug("calendar loaded",
			slog.String("name", def.Name),
			slog.String("path", paths[i]),
			slog.Int("entries", built[i].Len()))
	}

	return nil
}

// AddCalendar makes c available under name and registers it as the provider
// "calendar:<name>".
// Errors: ErrDuplicateCalendar.
func (e *Engine) AddCalendar(name string, c *holiday.Calendar) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.calendars[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateCalendar)
	}
	if err := e.registry.Register(holiday.NewCalendarProvider("calendar:"+name, c)); err != nil {
		return err
	}
	e.calendars[name] = c

	return nil
}

// Calendar returns the calendar loaded under name.
func (e *Engine) Calendar(name string) (*holiday.Calendar, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.calendars[name]

	return c, ok
}

// Calendars returns the loaded calendar names, sorted.
func (e *Engine) Calendars() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.calendars))
	for name := range e.calendars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ID returns the random identifier attached to every log record of e.
func (e *Engine) ID() string { return e.id }

// MetricsHandler returns the prometheus scrape handler, nil unless the
// prometheus exporter is configured and no meter was injected.
func (e *Engine) MetricsHandler() http.Handler {
	if e.telemetry == nil {
		return nil
	}

	return e.telemetry.Handler
}

// Close releases the metric exporter.
func (e *Engine) Close(ctx context.Context) error {
	if e.telemetry == nil {
		return nil
	}

	return e.telemetry.Shutdown(ctx)
}

// Registry returns the provider registry.
func (e *Engine) Registry() *holiday.Registry { return e.registry }

// Cache returns the trading-day cache, nil when caching is disabled.
func (e *Engine) Cache() *tradingdays.Cache { return e.cache }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *config.Config { return e.cfg }

// Corrector returns the holiday corrector of the named calendars, summed with
// weight 1. No names yields corrector.Zero.
// Errors: ErrUnknownCalendar.
func (e *Engine) Corrector(calendars ...string) (corrector.Corrector, error) {
	if len(calendars) == 0 {
		return corrector.Zero, nil
	}
	parts := make([]corrector.Weighted, 0, len(calendars))
	for _, name := range calendars {
		c, ok := e.Calendar(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownCalendar)
		}
		parts = append(parts, corrector.Weighted{
			Corrector: corrector.Holidays(c, corrector.WithMeanCorrection(e.cfg.Holidays.MeanCorrection)),
			Weight:    1,
		})
	}

	return corrector.Composite(parts...), nil
}

// Generator returns a trading-day generator using the configured clustering,
// contrast and mean correction, the shared cache and the holidays of the
// named calendars.
// Errors: ErrUnknownCalendar.
func (e *Engine) Generator(calendars ...string) (*tradingdays.Generator, error) {
	corr, err := e.Corrector(calendars...)
	if err != nil {
		return nil, fmt.Errorf("Generator: %w", err)
	}
	opts := []tradingdays.Option{
		tradingdays.WithContrast(e.cfg.Regressors.Contrast),
		tradingdays.WithMeanCorrection(e.cfg.Regressors.MeanCorrection),
		tradingdays.WithLogger(e.logger),
	}
	if len(calendars) > 0 {
		opts = append(opts, tradingdays.WithCorrector(corr))
	}
	if e.cache != nil {
		opts = append(opts, tradingdays.WithCache(e.cache))
	}

	return tradingdays.NewGenerator(e.cfg.Clustering(), opts...)
}

// TradingDays returns the trading-day regressors of dom corrected for the
// named calendars.
func (e *Engine) TradingDays(dom period.Domain, calendars ...string) (*matrix.Dense, error) {
	g, err := e.Generator(calendars...)
	if err != nil {
		return nil, fmt.Errorf("TradingDays: %w", err)
	}

	return g.Generate(dom)
}

// Domain returns the periods of the configured unit from the one containing
// t0 up to, but excluding, the one containing t1.
func (e *Engine) Domain(t0, t1 time.Time) (period.Domain, error) {
	return period.DomainBetween(e.cfg.Unit(), t0, t1)
}

// TradingDaysBetween returns TradingDays over Domain(t0, t1).
func (e *Engine) TradingDaysBetween(t0, t1 time.Time, calendars ...string) (*matrix.Dense, error) {
	dom, err := e.Domain(t0, t1)
	if err != nil {
		return nil, fmt.Errorf("TradingDaysBetween: %w", err)
	}

	return e.TradingDays(dom, calendars...)
}

// Holidays returns one regressor column per entry of the named calendar.
// Errors: ErrUnknownCalendar, holiday.ErrUnsupportedUnit.
func (e *Engine) Holidays(dom period.Domain, calendar string) (*matrix.Dense, error) {
	c, ok := e.Calendar(calendar)
	if !ok {
		return nil, fmt.Errorf("Holidays: %q: %w", calendar, ErrUnknownCalendar)
	}

	return holiday.Regressors(dom, c, holiday.WithMeanCorrection(e.cfg.Holidays.MeanCorrection))
}

// Moving returns the regressor of the provider registered under id.
// ok is false when no such provider exists.
func (e *Engine) Moving(dom period.Domain, id string) (*matrix.Dense, bool, error) {
	return holiday.MovingRegressor(dom, e.registry, id)
}

// TradingDaysBatch computes TradingDays for every domain concurrently,
// sharing one generator and the cache. Results keep the input order.
func (e *Engine) TradingDaysBatch(ctx context.Context, doms []period.Domain, calendars ...string) ([]*matrix.Dense, error) {
	ctx, span := e.tracer.Start(ctx, "engine.TradingDaysBatch", trace.WithAttributes(
		attribute.Int("domains", len(doms)),
		attribute.StringSlice("calendars", calendars),
	))
	defer span.End()

	gen, err := e.Generator(calendars...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generator")
		return nil, fmt.Errorf("TradingDaysBatch: %w", err)
	}
	out := make([]*matrix.Dense, len(doms))
	g, ctx := errgroup.WithContext(ctx)
	for i, dom := range doms {
		i, dom := i, dom
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := gen.Generate(dom)
			if err != nil {
				return fmt.Errorf("domain %d: %w", i, err)
			}
			out[i] = m
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate")
		return nil, fmt.Errorf("TradingDaysBatch: %w", err)
	}

	return out, nil
}
