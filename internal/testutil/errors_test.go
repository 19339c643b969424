package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrMockOpen", ErrMockOpen, "mock open failure"},
		{"ErrMockClose", ErrMockClose, "mock close failure"},
		{"ErrMockSync", ErrMockSync, "mock sync failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestMockErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMockOpen, ErrMockClose))
	assert.False(t, errors.Is(ErrMockClose, ErrMockSync))
	assert.False(t, errors.Is(ErrMockSync, ErrMockOpen))
}
