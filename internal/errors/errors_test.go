package errors_test

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rwerrors "github.com/mrz1836/rwfile/internal/errors"
)

// testError is a custom error type that matches no sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrGuardReleased", rwerrors.ErrGuardReleased, "guard already released"},
		{"ErrEmptyMarker", rwerrors.ErrEmptyMarker, "marker cannot be empty"},
		{"ErrMarkerMismatch", rwerrors.ErrMarkerMismatch, "marker mismatch"},
		{"ErrPartialMarker", rwerrors.ErrPartialMarker, "file contains a partial marker"},
		{"ErrLockHeld", rwerrors.ErrLockHeld, "target is locked by another process"},
		{"ErrRunNotFound", rwerrors.ErrRunNotFound, "run not found"},
		{"ErrConfigNil", rwerrors.ErrConfigNil, "config is nil"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		rwerrors.ErrGuardReleased,
		rwerrors.ErrEmptyMarker,
		rwerrors.ErrMarkerMismatch,
		rwerrors.ErrPartialMarker,
		rwerrors.ErrSizeMismatch,
		rwerrors.ErrLockHeld,
		rwerrors.ErrLockTimeout,
		rwerrors.ErrRunNotFound,
		rwerrors.ErrRunCorrupted,
		rwerrors.ErrInvalidRunID,
		rwerrors.ErrConfigNil,
		rwerrors.ErrConfigInvalidStress,
		rwerrors.ErrConfigInvalidLog,
		rwerrors.ErrConfigInvalidHistory,
		rwerrors.ErrInvalidOutputFormat,
		rwerrors.ErrEmptyValue,
	}

	for i, a := range allErrors {
		for j, b := range allErrors {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b, "%v should not match %v", a, b)
		}
	}
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	wrapped := rwerrors.Wrap(fs.ErrNotExist, "open /tmp/target for reading")

	require.Error(t, wrapped)
	require.ErrorIs(t, wrapped, fs.ErrNotExist)
	assert.Equal(t, "open /tmp/target for reading: file does not exist", wrapped.Error())
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, rwerrors.Wrap(nil, "context"))
}

func TestWrap_MultipleWraps(t *testing.T) {
	err := rwerrors.Wrap(rwerrors.Wrap(rwerrors.ErrMarkerMismatch, "reader 3"), "stress run")

	require.ErrorIs(t, err, rwerrors.ErrMarkerMismatch)
	assert.Equal(t, "stress run: reader 3: marker mismatch", err.Error())
}

func TestWrapf_PreservesErrorChain(t *testing.T) {
	err := rwerrors.Wrapf(rwerrors.ErrPartialMarker, "size %d is not a multiple of %d", 23, 11)

	require.ErrorIs(t, err, rwerrors.ErrPartialMarker)
	assert.Equal(t, "size 23 is not a multiple of 11: file contains a partial marker", err.Error())
}

func TestWrapf_NilError(t *testing.T) {
	assert.NoError(t, rwerrors.Wrapf(nil, "context %d", 1))
}

func TestUserMessage(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, rwerrors.UserMessage(nil))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", rwerrors.ErrLockHeld)
		assert.Contains(t, rwerrors.UserMessage(err), "already running")
	})

	t.Run("unknown error keeps original message", func(t *testing.T) {
		assert.Equal(t, "boom", rwerrors.UserMessage(testError{msg: "boom"}))
	})
}

func TestActionable(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		msg, action := rwerrors.Actionable(nil)
		assert.Empty(t, msg)
		assert.Empty(t, action)
	})

	t.Run("sentinel has action", func(t *testing.T) {
		msg, action := rwerrors.Actionable(rwerrors.ErrInvalidOutputFormat)
		assert.NotEmpty(t, msg)
		assert.Contains(t, action, "--output")
	})

	t.Run("unknown error has no action", func(t *testing.T) {
		msg, action := rwerrors.Actionable(testError{msg: "disk on fire"})
		assert.Equal(t, "disk on fire", msg)
		assert.Empty(t, action)
	})
}

func TestExitCode2Error(t *testing.T) {
	inner := rwerrors.ErrInvalidOutputFormat
	err := rwerrors.NewExitCode2Error(inner)

	assert.Equal(t, inner.Error(), err.Error())
	require.ErrorIs(t, err, inner)
	assert.True(t, rwerrors.IsExitCode2Error(err))
	assert.True(t, rwerrors.IsExitCode2Error(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, rwerrors.IsExitCode2Error(inner))
	assert.False(t, rwerrors.IsExitCode2Error(nil))
}
