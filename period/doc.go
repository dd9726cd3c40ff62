// Package period maps calendar dates to integer period ids and manipulates
// contiguous spans of periods.
//
// A Period is identified by (offset, unit, id): id counts unit-sized steps
// from the epoch 1970-01-01T00:00, shifted back by offset periods.
//
//	IDAt(offset, unit, t)    = ⌊unitsBetween(epoch, t) / unit.Amount()⌋ − offset
//	DateAt(offset, unit, id) = epoch + unit.Amount()·(id + offset) base fields
//
// Dates are read through their wall clock in their own location; results are
// returned in UTC.
//
// A Domain is the half-open span [start, start+length). Domains support
// range extraction, union (always contiguous), intersection and selection by
// index or by date:
//
//	d, _ := period.NewDomain(period.Must(period.Of(timeunit.Monthly, jan2020)), 24)
//	y2021 := d.Select(period.Between(jan2021, jan2022)) // 12 periods
//
// Periods and domains of different units are never combined implicitly:
// such operations fail with ErrIncompatibleUnit. Periods sharing a unit but
// not an offset are rebased through their start date.
//
// Periods round-trip through the text form "<UNIT>#<id>[@offset]",
// for example "P1M#600" or "P3M#12@1".
package period
