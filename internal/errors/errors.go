// Package errors provides centralized error handling for rwfile.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// I/O failures from the filesystem are never replaced by sentinels here; they are
// wrapped with context and keep their original chain (errors.Is(err, fs.ErrNotExist)
// still holds).
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
var (
	// ErrGuardReleased indicates an I/O call on a read or write guard after
	// the guard was closed and its access slot given back to the lock.
	ErrGuardReleased = errors.New("guard already released")

	// ErrEmptyMarker indicates a workload or verification was asked to use
	// a zero-length marker.
	ErrEmptyMarker = errors.New("marker cannot be empty")

	// ErrMarkerMismatch indicates a read returned bytes that differ from the
	// expected marker.
	ErrMarkerMismatch = errors.New("marker mismatch")

	// ErrPartialMarker indicates the file length is not a whole number of markers.
	ErrPartialMarker = errors.New("file contains a partial marker")

	// ErrSizeMismatch indicates the final file size differs from the number of
	// writes the workload performed.
	ErrSizeMismatch = errors.New("file size does not match writes")

	// ErrLockHeld indicates another process holds the run lock for the target file.
	ErrLockHeld = errors.New("target is locked by another process")

	// ErrLockTimeout indicates a lock could not be acquired before the deadline.
	ErrLockTimeout = errors.New("timed out waiting for lock")

	// ErrRunNotFound indicates no stored run has the requested id.
	ErrRunNotFound = errors.New("run not found")

	// ErrRunCorrupted indicates a stored run record could not be decoded.
	ErrRunCorrupted = errors.New("run record is corrupted")

	// ErrInvalidRunID indicates a run id that is not a UUID.
	ErrInvalidRunID = errors.New("invalid run id")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidStress indicates an invalid stress configuration value.
	ErrConfigInvalidStress = errors.New("invalid stress configuration")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrConfigInvalidHistory indicates an invalid history configuration value.
	ErrConfigInvalidHistory = errors.New("invalid history configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
