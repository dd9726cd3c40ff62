// Package corrector builds per-weekday calendar corrections for trading-day
// regressors.
//
// A Corrector maps a period.Domain to a Length×7 matrix (Monday..Sunday).
// Adding the matrix to the raw weekday counts of each period gives the
// counts a holiday calendar implies: a holiday falling on Wednesday removes
// one Wednesday and adds one Sunday, so the period length never changes.
//
// Correctors compose:
//
//	c := corrector.Composite(
//		corrector.Weighted{Corrector: corrector.Holidays(national), Weight: 1},
//		corrector.Weighted{Corrector: corrector.Provider(holiday.USFederal(), 1), Weight: 0.5},
//	)
//	c = corrector.Chained(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), old, c)
//
// Both composites keep the Length×7 shape and nest freely.
package corrector
