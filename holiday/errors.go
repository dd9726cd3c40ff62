// SPDX-License-Identifier: MIT

package holiday

import "errors"

var (
	// ErrFrozen indicates an Add after Build.
	ErrFrozen = errors.New("holiday: calendar is frozen")

	// ErrInvalidDay indicates a special day with out-of-range parameters.
	ErrInvalidDay = errors.New("holiday: invalid special day")

	// ErrInvalidValidity indicates a validity interval whose end precedes its start.
	ErrInvalidValidity = errors.New("holiday: invalid validity interval")

	// ErrUnsupportedUnit indicates a domain finer than one day.
	ErrUnsupportedUnit = errors.New("holiday: unit finer than a day")

	// ErrDuplicateProvider indicates a second provider registered under the same identifier.
	ErrDuplicateProvider = errors.New("holiday: provider already registered")

	// ErrInvalidDefinition indicates a YAML calendar definition that failed validation.
	ErrInvalidDefinition = errors.New("holiday: invalid calendar definition")
)
