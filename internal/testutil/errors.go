// Package testutil provides testing utilities for rwfile.
//
// This package contains mock errors and test doubles used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockOpen simulates a failure to open a file handle.
	ErrMockOpen = errors.New("mock open failure")

	// ErrMockClose simulates a failure to close a file handle.
	ErrMockClose = errors.New("mock close failure")

	// ErrMockSync simulates a failure to flush a file handle.
	ErrMockSync = errors.New("mock sync failure")
)
