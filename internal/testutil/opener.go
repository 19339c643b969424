package testutil

import (
	"sync"

	"github.com/mrz1836/rwfile/internal/rwfile"
)

// FaultyOpener wraps rwfile.OSOpener and injects failures on demand.
// It is safe for concurrent use.
type FaultyOpener struct {
	mu       sync.Mutex
	base     rwfile.OSOpener
	readErr  error
	writeErr error
	closeErr error
	syncErr  error
	opens    int
	closes   int
}

// NewFaultyOpener returns an opener that behaves like rwfile.OSOpener until
// a failure is configured.
func NewFaultyOpener() *FaultyOpener {
	return &FaultyOpener{}
}

// FailReads makes subsequent OpenRead calls return err (nil restores).
func (o *FaultyOpener) FailReads(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.readErr = err
}

// FailWrites makes subsequent OpenWrite calls return err (nil restores).
func (o *FaultyOpener) FailWrites(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.writeErr = err
}

// FailClose makes handles opened from now on return err from Close.
func (o *FaultyOpener) FailClose(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closeErr = err
}

// FailSync makes write handles opened from now on return err from Sync.
func (o *FaultyOpener) FailSync(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.syncErr = err
}

// Opens returns the number of handles successfully opened.
func (o *FaultyOpener) Opens() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens
}

// Closes returns the number of handles closed.
func (o *FaultyOpener) Closes() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closes
}

// OpenRead implements rwfile.Opener.
func (o *FaultyOpener) OpenRead(path string) (rwfile.ReadHandle, error) {
	o.mu.Lock()
	readErr, closeErr := o.readErr, o.closeErr
	o.mu.Unlock()
	if readErr != nil {
		return nil, readErr
	}

	h, err := o.base.OpenRead(path)
	if err != nil {
		return nil, err
	}
	o.opened()
	return &faultyReadHandle{ReadHandle: h, owner: o, closeErr: closeErr}, nil
}

// OpenWrite implements rwfile.Opener.
func (o *FaultyOpener) OpenWrite(path string) (rwfile.WriteHandle, error) {
	o.mu.Lock()
	writeErr, closeErr, syncErr := o.writeErr, o.closeErr, o.syncErr
	o.mu.Unlock()
	if writeErr != nil {
		return nil, writeErr
	}

	h, err := o.base.OpenWrite(path)
	if err != nil {
		return nil, err
	}
	o.opened()
	return &faultyWriteHandle{WriteHandle: h, owner: o, closeErr: closeErr, syncErr: syncErr}, nil
}

func (o *FaultyOpener) opened() {
	o.mu.Lock()
	o.opens++
	o.mu.Unlock()
}

func (o *FaultyOpener) closed() {
	o.mu.Lock()
	o.closes++
	o.mu.Unlock()
}

type faultyReadHandle struct {
	rwfile.ReadHandle

	owner    *FaultyOpener
	closeErr error
}

func (h *faultyReadHandle) Close() error {
	h.owner.closed()
	if err := h.ReadHandle.Close(); err != nil {
		return err
	}
	return h.closeErr
}

type faultyWriteHandle struct {
	rwfile.WriteHandle

	owner    *FaultyOpener
	closeErr error
	syncErr  error
}

func (h *faultyWriteHandle) Close() error {
	h.owner.closed()
	if err := h.WriteHandle.Close(); err != nil {
		return err
	}
	return h.closeErr
}

func (h *faultyWriteHandle) Sync() error {
	if h.syncErr != nil {
		return h.syncErr
	}
	return h.WriteHandle.Sync()
}
