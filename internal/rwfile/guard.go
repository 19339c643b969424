package rwfile

import (
	"io"
	"runtime"
	"sync/atomic"

	"github.com/mrz1836/rwfile/internal/errors"
)

// noCopy makes go vet's copylocks check flag guards copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// slot is one admitted access. released flips exactly once, and only the
// goroutine that flips it calls back into the File.
type slot struct {
	file     *File
	access   access
	released atomic.Bool
}

func (s *slot) release() bool {
	if !s.released.CompareAndSwap(false, true) {
		return false
	}
	s.file.release(s.access)
	return true
}

// leak is what the GC cleanup of an unclosed guard needs. It must not
// reference the guard itself, or the guard would never become unreachable.
type leak struct {
	slot   *slot
	handle io.Closer
}

func reclaim(l leak) {
	if l.slot.released.Load() {
		return
	}
	_ = l.handle.Close()
	if l.slot.release() {
		l.slot.file.reclaimed(l.slot.access)
	}
}

// guard is the state shared by both guard kinds.
type guard struct {
	noCopy  noCopy
	slot    *slot
	cleanup runtime.Cleanup
}

func (g *guard) check() error {
	if g.slot.released.Load() {
		return errors.ErrGuardReleased
	}
	return nil
}

// close stops the cleanup, closes the handle and releases the slot.
// A second call returns nil.
func (g *guard) close(h io.Closer) error {
	if g.slot.released.Load() {
		return nil
	}
	g.cleanup.Stop()
	err := h.Close()
	g.slot.release()
	return err
}

// ReadGuard holds one read slot and a private read-only handle.
// It is not safe for concurrent use; hand it between goroutines instead.
type ReadGuard struct {
	guard

	handle ReadHandle
}

func newReadGuard(f *File, h ReadHandle) *ReadGuard {
	g := &ReadGuard{
		guard:  guard{slot: &slot{file: f, access: accessRead}},
		handle: h,
	}
	g.cleanup = runtime.AddCleanup(g, reclaim, leak{slot: g.slot, handle: h})
	return g
}

// Read reads from the guard's cursor.
func (g *ReadGuard) Read(p []byte) (int, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	n, err := g.handle.Read(p)
	runtime.KeepAlive(g)
	return n, err
}

// Seek moves the guard's cursor.
func (g *ReadGuard) Seek(offset int64, whence int) (int64, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	pos, err := g.handle.Seek(offset, whence)
	runtime.KeepAlive(g)
	return pos, err
}

// Size returns the current length of the file.
func (g *ReadGuard) Size() (int64, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	info, err := g.handle.Stat()
	runtime.KeepAlive(g)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Close closes the handle and releases the read slot. Further calls
// return nil; other methods return ErrGuardReleased.
func (g *ReadGuard) Close() error {
	return g.close(g.handle)
}

// WriteGuard holds the write slot and a private writable handle.
// It is not safe for concurrent use; hand it between goroutines instead.
type WriteGuard struct {
	guard

	handle WriteHandle
}

func newWriteGuard(f *File, h WriteHandle) *WriteGuard {
	g := &WriteGuard{
		guard:  guard{slot: &slot{file: f, access: accessWrite}},
		handle: h,
	}
	g.cleanup = runtime.AddCleanup(g, reclaim, leak{slot: g.slot, handle: h})
	return g
}

// Write writes at the guard's cursor.
func (g *WriteGuard) Write(p []byte) (int, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	n, err := g.handle.Write(p)
	runtime.KeepAlive(g)
	return n, err
}

// Append moves the cursor to the end of the file and writes p.
func (g *WriteGuard) Append(p []byte) (int, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(g)
	if _, err := g.handle.Seek(0, io.SeekEnd); err != nil {
		return 0, err
	}
	return g.handle.Write(p)
}

// Seek moves the guard's cursor.
func (g *WriteGuard) Seek(offset int64, whence int) (int64, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	pos, err := g.handle.Seek(offset, whence)
	runtime.KeepAlive(g)
	return pos, err
}

// Truncate changes the size of the file. The cursor is not moved.
func (g *WriteGuard) Truncate(size int64) error {
	if err := g.check(); err != nil {
		return err
	}
	err := g.handle.Truncate(size)
	runtime.KeepAlive(g)
	return err
}

// Flush commits written data to stable storage. Close does not flush;
// call Flush first when durability matters.
func (g *WriteGuard) Flush() error {
	if err := g.check(); err != nil {
		return err
	}
	err := g.handle.Sync()
	runtime.KeepAlive(g)
	return err
}

// Close closes the handle and releases the write slot. Further calls
// return nil; other methods return ErrGuardReleased.
func (g *WriteGuard) Close() error {
	return g.close(g.handle)
}

// WithReader acquires a read guard, calls fn, and closes the guard on every
// exit path. fn's error takes precedence over the close error.
func (f *File) WithReader(fn func(*ReadGuard) error) (err error) {
	g, err := f.Reader()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := g.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(g)
}

// WithWriter acquires the write guard, calls fn, and closes the guard on
// every exit path. fn's error takes precedence over the close error.
func (f *File) WithWriter(fn func(*WriteGuard) error) (err error) {
	g, err := f.Writer()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := g.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(g)
}
