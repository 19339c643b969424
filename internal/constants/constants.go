// Package constants provides centralized constant values used throughout rwfile.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by rwfile for organizing data.
const (
	// RWFileHome is the hidden directory name where rwfile stores its config and logs.
	// This directory is created in the user's home directory.
	RWFileHome = ".rwfile"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// EnvPrefix is the prefix for environment variable overrides (RWFILE_STRESS_WRITERS).
	EnvPrefix = "RWFILE"

	// EnvHome overrides the rwfile home directory (global config and logs).
	EnvHome = "RWFILE_HOME"
)

// Default workload values. These reproduce the reference contention scenario:
// 5 writers and 10 readers, 1000 operations each, on an 11-byte marker.
const (
	// DefaultWriters is the number of writer goroutines in a stress run.
	DefaultWriters = 5

	// DefaultReaders is the number of reader goroutines in a stress run.
	DefaultReaders = 10

	// DefaultIterations is the number of operations each worker performs.
	DefaultIterations = 1000

	// DefaultMarker is the record each writer appends and each reader expects.
	DefaultMarker = "Hello world"

	// DefaultStressTimeout bounds a stress run. Zero disables the bound.
	DefaultStressTimeout = 5 * time.Minute
)

// Log rotation defaults for the CLI log file.
const (
	// DefaultHistoryKeep is the number of stored runs kept; older ones are pruned.
	DefaultHistoryKeep = 50

	// StoreLockTimeout bounds the wait for the run history lock.
	StoreLockTimeout = 5 * time.Second
)

const (
	// LogMaxSizeMB is the size in megabytes at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated log files.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// File and directory permissions.
const (
	// DirPerm is used for directories rwfile creates.
	DirPerm = 0o750

	// FilePerm is used for files rwfile creates.
	FilePerm = 0o600
)
