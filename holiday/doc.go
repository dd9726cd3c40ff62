// Package holiday models recurring special days and the holiday calendars
// built from them.
//
// A SpecialDay is a tagged value with four kinds:
//
//   - KindFixed: the same month and day every year (Fixed(12, 25)).
//   - KindEaster: a day offset from Gregorian Easter Sunday (EasterRelated(1)).
//   - KindJulianEaster: a day offset from Orthodox Easter, expressed in the
//     Gregorian calendar (JulianEasterRelated(-2)).
//   - KindFixedWeekday: the n-th weekday of a month, counted from the end
//     when n is negative (FixedWeekday(-1, daycount.Monday, 5)).
//
// Calendars are assembled with a Builder and frozen by Build. When several
// entries fall on the same date only the heaviest one counts.
//
// LongTermMean integrates a special day's date distribution over a full
// calendar cycle into a [position][weekday] table, used to center holiday
// effects so they average out across years.
//
// Moving holidays supplied by external sources plug in through the Provider
// interface and an explicit Registry; CalProvider adapts holiday definitions
// from github.com/rickar/cal/v2.
package holiday
