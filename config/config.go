// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/timeunit"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LVCAL"

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Cache      CacheConfig      `yaml:"cache" envconfig:"CACHE"`
	Regressors RegressorsConfig `yaml:"regressors" envconfig:"REGRESSORS"`
	Holidays   HolidaysConfig   `yaml:"holidays" envconfig:"HOLIDAYS"`
	Metrics    MetricsConfig    `yaml:"metrics" envconfig:"METRICS"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr discard"`
}

// CacheConfig bounds the trading-day cache.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled" envconfig:"ENABLED"`
	MaxEntries int  `yaml:"max_entries" envconfig:"MAX_ENTRIES" validate:"min=0"`
	MaxRows    int  `yaml:"max_rows" envconfig:"MAX_ROWS" validate:"min=0"`
}

// RegressorsConfig sets the trading-day generator defaults.
type RegressorsConfig struct {
	Clustering     string `yaml:"clustering" envconfig:"CLUSTERING" validate:"clustering"`
	Unit           string `yaml:"unit" envconfig:"UNIT" validate:"timeunit"`
	Contrast       bool   `yaml:"contrast" envconfig:"CONTRAST"`
	MeanCorrection bool   `yaml:"mean_correction" envconfig:"MEAN_CORRECTION"`
}

// HolidaysConfig lists the holiday sources loaded at startup.
type HolidaysConfig struct {
	// Calendars are paths of YAML calendar definitions.
	Calendars      []string `yaml:"calendars" envconfig:"CALENDARS" validate:"dive,required"`
	Providers      []string `yaml:"providers" envconfig:"PROVIDERS" validate:"dive,oneof=us-federal"`
	MeanCorrection bool     `yaml:"mean_correction" envconfig:"MEAN_CORRECTION"`
}

// MetricsConfig selects the exporter behind the cache counters.
type MetricsConfig struct {
	Exporter string `yaml:"exporter" envconfig:"EXPORTER" validate:"oneof=none prometheus"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 64,
			MaxRows:    4096,
		},
		Regressors: RegressorsConfig{
			Clustering: "TD7",
			Unit:       timeunit.Monthly.String(),
			Contrast:   true,
		},
		Holidays: HolidaysConfig{
			MeanCorrection: true,
		},
		Metrics: MetricsConfig{
			Exporter: "none",
		},
	}
}

// Load returns Default() overlaid with the YAML file at path (skipped when
// path is empty) and then with LVCAL_* environment variables.
// Errors: file and decode failures, ErrInvalidConfig.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	// No default tags: unset variables leave the file and built-in values alone.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Clustering returns the configured weekday clustering.
func (c *Config) Clustering() daycount.Clustering {
	cl, _ := daycount.Lookup(c.Regressors.Clustering)
	return cl
}

// Unit returns the configured default time unit.
func (c *Config) Unit() timeunit.Unit {
	u, _ := timeunit.Parse(c.Regressors.Unit)
	return u
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clustering", func(fl validator.FieldLevel) bool {
		_, ok := daycount.Lookup(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("timeunit", func(fl validator.FieldLevel) bool {
		_, err := timeunit.Parse(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks every section.
// Errors: ErrInvalidConfig listing the failing fields.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: %q fails %s", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag())
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
