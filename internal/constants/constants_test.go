package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkloadDefaults(t *testing.T) {
	t.Run("default scenario is 5 writers and 10 readers", func(t *testing.T) {
		assert.Equal(t, 5, DefaultWriters)
		assert.Equal(t, 10, DefaultReaders)
		assert.Equal(t, 1000, DefaultIterations)
	})

	t.Run("default marker is 11 bytes", func(t *testing.T) {
		assert.Len(t, DefaultMarker, 11)
	})

	t.Run("default timeout is bounded", func(t *testing.T) {
		assert.Greater(t, DefaultStressTimeout, time.Minute)
	})
}

func TestLogRotationDefaults(t *testing.T) {
	assert.Positive(t, LogMaxSizeMB)
	assert.Positive(t, LogMaxBackups)
	assert.Positive(t, LogMaxAgeDays)
}

func TestPermissions(t *testing.T) {
	assert.Equal(t, 0o750, DirPerm)
	assert.Equal(t, 0o600, FilePerm)
}

func TestHistoryDefaults(t *testing.T) {
	assert.Positive(t, DefaultHistoryKeep)
	assert.Positive(t, StoreLockTimeout)
}
