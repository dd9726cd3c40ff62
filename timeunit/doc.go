// Package timeunit defines calendar granularities: an integer amount of a base
// chrono field (year, month, week, day, hour, minute, second, millisecond).
//
// A Unit is an immutable comparable value. Units built through Of with the same
// amount and field are equal, so the canonical values (Yearly, Quarterly,
// Monthly, ...) can be compared with ==.
//
// Ratios between units are computed from approximate field durations, with a
// month taken as one twelfth of a 365.2425-day year:
//
//	timeunit.Quarterly.Ratio(timeunit.Yearly) // 4
//	timeunit.Monthly.Ratio(timeunit.Weekly)   // NoStrictRatio
//
// Units round-trip through an ISO-8601-like duration text (P1Y, P3M, P2W, P1D,
// PT1H, PT15M, PT1S, PT0.250S). Malformed text fails with *ParseError.
package timeunit
