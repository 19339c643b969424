package signal

import (
	"context"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_SignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.trigger(syscall.SIGINT)

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	cause := context.Cause(h.Context())
	require.ErrorIs(t, cause, ErrInterrupted)
	assert.Contains(t, cause.Error(), "interrupt")

	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed after signal")
	}
}

func TestHandler_OnlyFirstSignalCounts(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.trigger(syscall.SIGTERM)
	h.trigger(syscall.SIGINT)

	assert.Contains(t, context.Cause(h.Context()).Error(), "terminated")
}

func TestHandler_StopWithoutSignal(t *testing.T) {
	h := NewHandler(context.Background())
	h.Stop()
	h.Stop()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	require.NotErrorIs(t, context.Cause(h.Context()), ErrInterrupted)

	select {
	case <-h.Interrupted():
		t.Fatal("interrupted channel should stay open without a signal")
	default:
	}
}

func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	<-h.Context().Done()
	require.ErrorIs(t, h.Context().Err(), context.Canceled)
}
