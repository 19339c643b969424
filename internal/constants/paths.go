package constants

// Log file names.
const (
	// CLILogFileName is the name of the CLI log file.
	// This file is located in ~/.rwfile/logs/rwfile.log
	CLILogFileName = "rwfile.log"

	// RunLockSuffix is appended to a stress target to name its run lock file.
	RunLockSuffix = ".lock"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file.
	// This file is located in the rwfile home directory.
	GlobalConfigName = "config.yaml"
)

// Run history layout.
const (
	// RunsDir is the directory under the rwfile home holding stored stress reports.
	RunsDir = "runs"

	// RunsLockName is the lock file serializing writers of RunsDir.
	RunsLockName = ".lock"

	// RunFileExt is the extension of a stored run record.
	RunFileExt = ".json"
)
