// Package lvcal is a calendar-aware toolkit for building time-series
// regressors: trading-day counts, holiday effects and the period arithmetic
// they rest on.
//
// What is inside:
//
//	timeunit/    — Unit (amount × calendar field), ISO-8601 text form, ratios
//	period/      — Period (one slot of a unit grid) and Domain (contiguous span)
//	daycount/    — weekday counts per period, weekday clusterings (TD2..TD7)
//	tradingdays/ — trading-day regressors with an incremental, shared cache
//	holiday/     — special days, frozen calendars, long-term means, providers
//	corrector/   — per-weekday holiday corrections, chained and composite
//	matrix/      — the dense row-major buffers every regressor is written into
//	config/      — LVCAL_* environment and YAML configuration
//	engine/      — one entry point wiring the above together
//
// Quick start:
//
//	dom, _ := period.DomainBetween(timeunit.Monthly, from, to)
//	gen, _ := tradingdays.NewGenerator(daycount.TD7)
//	td, _ := gen.Generate(dom) // dom.Length() × 6 contrasts
//
// Computations are pure; the cache is the only shared mutable state and is
// safe for concurrent use.
package lvcal
