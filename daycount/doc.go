// Package daycount counts weekday occurrences per period and groups weekdays
// into clusterings for trading-day regressors.
//
// Weekdays are indexed Monday = 0 … Sunday = 6. For a period of n days whose
// first day falls on weekday w0, the count of weekday w is
//
//	count_w = 1 + ⌊(n − 1 − offset_w) / 7⌋,  offset_w = (w − w0) mod 7
//
// so the seven counts of a period always sum to n. Day numbers come from the
// proleptic Gregorian calendar with 1970-01-01 as day 0.
//
// A Clustering partitions the seven weekdays into k non-empty groups; group 0
// is the reference group used by contrast regressors. The usual clusterings
// are predeclared (TD2, TD2c, TD3, TD3c, TD4, TD7) and can be looked up by name.
package daycount
