// SPDX-License-Identifier: MIT

package daycount

import "errors"

var (
	// ErrUnsupportedUnit indicates a domain finer than one day.
	ErrUnsupportedUnit = errors.New("daycount: unit finer than a day")

	// ErrInvalidClustering indicates a weekday partition with out-of-range or empty groups.
	ErrInvalidClustering = errors.New("daycount: invalid clustering")
)
