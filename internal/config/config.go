// Package config provides configuration management for rwfile with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (RWFILE_* prefix, e.g. RWFILE_STRESS_WRITERS)
//  3. Project config (.rwfile/config.yaml)
//  4. Global config (~/.rwfile/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for rwfile.
type Config struct {
	// Stress contains the workload settings for `rwfile stress`.
	Stress StressConfig `yaml:"stress" mapstructure:"stress" json:"stress"`

	// Log contains settings for the CLI log file.
	Log LogConfig `yaml:"log" mapstructure:"log" json:"log"`

	// History controls storage of stress reports under ~/.rwfile/runs.
	History HistoryConfig `yaml:"history" mapstructure:"history" json:"history"`
}

// StressConfig describes a concurrent reader/writer workload.
type StressConfig struct {
	// Writers is the number of writer goroutines.
	// Default: 5
	Writers int `yaml:"writers" mapstructure:"writers" json:"writers"`

	// Readers is the number of reader goroutines.
	// Default: 10
	Readers int `yaml:"readers" mapstructure:"readers" json:"readers"`

	// Iterations is the number of operations per worker.
	// Default: 1000
	Iterations int `yaml:"iterations" mapstructure:"iterations" json:"iterations"`

	// Marker is the record appended by writers and expected by readers.
	// Default: "Hello world"
	Marker string `yaml:"marker" mapstructure:"marker" json:"marker"`

	// Timeout bounds the whole run. Workers stop between operations once it
	// expires; an acquisition already waiting is not interrupted.
	// Zero disables the bound. Default: 5m
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" json:"timeout"`
}

// LogConfig controls the rotating CLI log file.
type LogConfig struct {
	// File enables writing logs to ~/.rwfile/logs/rwfile.log.
	// Default: true
	File bool `yaml:"file" mapstructure:"file" json:"file"`

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb" json:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups" json:"max_backups"`

	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days" json:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress" mapstructure:"compress" json:"compress"`
}

// HistoryConfig controls the run history store.
type HistoryConfig struct {
	// Enabled stores every stress report.
	// Default: true
	Enabled bool `yaml:"enabled" mapstructure:"enabled" json:"enabled"`

	// Keep is the number of most recent runs retained.
	// Default: 50
	Keep int `yaml:"keep" mapstructure:"keep" json:"keep"`
}
