package holiday_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/holiday"
	"github.com/katalvlaran/lvcal/period"
	"github.com/katalvlaran/lvcal/timeunit"
)

func ExampleEaster() {
	for _, y := range []int{2024, 2025} {
		fmt.Println(holiday.Easter(y).Format(time.DateOnly), holiday.JulianEaster(y).Format(time.DateOnly))
	}
	// Output:
	// 2024-03-31 2024-05-05
	// 2025-04-20 2025-04-20
}

func ExampleRegressors() {
	b := holiday.NewBuilder()
	_ = b.Add(holiday.FixedWeekday(-1, daycount.Monday, 5), holiday.Always)
	_ = b.Add(holiday.Fixed(7, 4), holiday.Always)
	c := b.Build()

	dom, _ := period.DomainBetween(timeunit.Quarterly,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	m, _ := holiday.Regressors(dom, c)
	fmt.Print(m)
	// Output:
	// [0, 0]
	// [1, 0]
	// [0, 1]
	// [0, 0]
}
