// Package config loads the runtime configuration of lvcal.
//
// Values are layered: Default(), then an optional YAML file, then
// environment variables prefixed with LVCAL (LVCAL_LOGGING_LEVEL,
// LVCAL_CACHE_MAX_ENTRIES, LVCAL_HOLIDAYS_CALENDARS, ...). The merged result
// is validated before it is returned.
package config
