// Package signal cancels a command's context when the user interrupts it.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is the cancellation cause set when SIGINT or SIGTERM arrives.
var ErrInterrupted = errors.New("interrupted")

// Handler owns a context that is cancelled on the first SIGINT or SIGTERM.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler manages context lifecycle
	cancel      context.CancelCauseFunc
	sigChan     chan os.Signal
	interrupted chan struct{}
	once        sync.Once
	stopOnce    sync.Once
}

// NewHandler starts listening for SIGINT and SIGTERM.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	ctx = h.Context()
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancelCause(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		sigChan:     make(chan os.Signal, 1),
		interrupted: make(chan struct{}),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context cancelled by an interrupt or by Stop.
// After an interrupt, context.Cause returns an error wrapping ErrInterrupted.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted is closed when a signal has been received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Stop stops listening and cancels the context. Safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		h.cancel(context.Canceled)
	})
}

// trigger records the first signal; later ones are ignored.
func (h *Handler) trigger(sig os.Signal) {
	h.once.Do(func() {
		h.cancel(fmt.Errorf("%w by %s", ErrInterrupted, sig))
		close(h.interrupted)
	})
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case sig := <-h.sigChan:
			h.trigger(sig)
		}
	}
}
