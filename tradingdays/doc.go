// Package tradingdays builds trading-day regressor matrices from weekday
// counts grouped by a daycount.Clustering.
//
// What:
//
//   - Raw mode emits one column per group: groups 1..k−1 first, the reference
//     group 0 last. Columns may be mean-corrected by subtracting the group's
//     long-run share of the average period length.
//   - Contrast mode emits k−1 columns, sum_g − w_g·sum_0, with w_g = |g|/|0|
//     unless weights are supplied. This removes the exact dependency between
//     the group sums and the period length.
//
// Cache:
//
//	Group sums are cached per (clustering, unit) in an explicit Cache object.
//	A request inside the cached window is served as a row view; a request
//	reaching outside computes only the missing head and tail and splices them
//	around the cached block. Cached cells are never recomputed or rewritten.
//	One mutex spans lookup, extension and store.
//
// Corrections:
//
//	A Corrector (see package corrector) contributes per-weekday adjustments
//	which are folded into groups and added to the cached sums for the
//	caller's output only.
package tradingdays
