package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/rwfile/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These defaults are the base layer that config files, environment
// variables, and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Stress: StressConfig{
			Writers:    constants.DefaultWriters,
			Readers:    constants.DefaultReaders,
			Iterations: constants.DefaultIterations,
			Marker:     constants.DefaultMarker,
			Timeout:    constants.DefaultStressTimeout,
		},
		Log: LogConfig{
			File:       true,
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
		History: HistoryConfig{
			Enabled: true,
			Keep:    constants.DefaultHistoryKeep,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("stress.writers", d.Stress.Writers)
	v.SetDefault("stress.readers", d.Stress.Readers)
	v.SetDefault("stress.iterations", d.Stress.Iterations)
	v.SetDefault("stress.marker", d.Stress.Marker)
	v.SetDefault("stress.timeout", d.Stress.Timeout.String())

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.keep", d.History.Keep)
}
