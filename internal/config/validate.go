package config

import (
	"github.com/mrz1836/rwfile/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - stress writers, readers and iterations must be positive
//   - stress marker must not be empty
//   - stress timeout must not be negative
//   - log rotation values must not be negative
//   - history keep must be at least 1 when history is enabled
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateStressConfig(&cfg.Stress); err != nil {
		return err
	}

	if err := validateLogConfig(&cfg.Log); err != nil {
		return err
	}

	if cfg.History.Enabled && cfg.History.Keep < 1 {
		return errors.Wrapf(errors.ErrConfigInvalidHistory,
			"history.keep must be at least 1 when history is enabled, got %d", cfg.History.Keep)
	}
	return nil
}

func validateStressConfig(cfg *StressConfig) error {
	if cfg.Writers < 1 {
		return errors.Wrapf(errors.ErrConfigInvalidStress,
			"stress.writers must be at least 1, got %d", cfg.Writers)
	}
	if cfg.Readers < 1 {
		return errors.Wrapf(errors.ErrConfigInvalidStress,
			"stress.readers must be at least 1, got %d", cfg.Readers)
	}
	if cfg.Iterations < 1 {
		return errors.Wrapf(errors.ErrConfigInvalidStress,
			"stress.iterations must be at least 1, got %d", cfg.Iterations)
	}
	if cfg.Marker == "" {
		return errors.Wrap(errors.ErrEmptyMarker, "stress.marker")
	}
	if cfg.Timeout < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidStress,
			"stress.timeout must not be negative, got %s", cfg.Timeout)
	}
	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log rotation values must not be negative (size %d, backups %d, age %d)",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	}
	return nil
}
