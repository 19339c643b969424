package rwfile

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mrz1836/rwfile/internal/errors"
)

// File admits readers and writers to the file at a fixed path.
//
// The admission state is a single State value guarded by mu; every read
// and write of it happens with mu held. The path and opener never change
// after New, so they need no locking.
type File struct {
	path    string
	opener  Opener
	logger  zerolog.Logger
	observe func(State)

	mu    sync.Mutex
	state State
	stats Stats
}

// Option configures a File.
type Option func(*File)

// WithOpener replaces the filesystem collaborator used to open guard handles.
func WithOpener(o Opener) Option {
	return func(f *File) {
		if o != nil {
			f.opener = o
		}
	}
}

// WithLogger sets the logger for acquisition, rollback and reclaim events.
func WithLogger(l zerolog.Logger) Option {
	return func(f *File) {
		f.logger = l
	}
}

// WithObserver registers fn to be called after every state transition.
// fn runs with the internal mutex held and must not call back into the File.
func WithObserver(fn func(State)) Option {
	return func(f *File) {
		f.observe = fn
	}
}

// New returns a File for path. It performs no I/O: the file does not have
// to exist until the first Writer call, which creates it.
func New(path string, opts ...Option) *File {
	f := &File{
		path:   path,
		opener: OSOpener{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With().Str("path", path).Logger()
	return f
}

// Path returns the path the File was created with.
func (f *File) Path() string {
	return f.path
}

// State returns a snapshot of the current admission state.
func (f *File) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Stats returns a snapshot of the cumulative counters.
func (f *File) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Reader blocks until no writer is active, then returns a read guard with
// its own read-only handle. Any number of read guards may be outstanding.
//
// If the handle cannot be opened the reservation is undone and the open
// error is returned with its chain intact.
func (f *File) Reader() (*ReadGuard, error) {
	f.reserve(accessRead)
	h, err := f.opener.OpenRead(f.path)
	if err != nil {
		f.rollback(accessRead, err)
		return nil, errors.Wrapf(err, "open %s for reading", f.path)
	}
	return newReadGuard(f, h), nil
}

// Writer blocks until no reader and no writer is active, then returns the
// single write guard with its own writable handle, creating the file if it
// does not exist. The handle is positioned at offset 0.
//
// If the handle cannot be opened the reservation is undone and the open
// error is returned with its chain intact.
func (f *File) Writer() (*WriteGuard, error) {
	f.reserve(accessWrite)
	h, err := f.opener.OpenWrite(f.path)
	if err != nil {
		f.rollback(accessWrite, err)
		return nil, errors.Wrapf(err, "open %s for writing", f.path)
	}
	return newWriteGuard(f, h), nil
}

// reserve spins until the state admits a, then takes the slot.
func (f *File) reserve(a access) {
	var spins uint64
	for {
		f.mu.Lock()
		if f.state.admits(a) {
			f.transition(a, true)
			f.stats.Spins += spins
			if a == accessWrite {
				f.stats.Writes++
			} else {
				f.stats.Reads++
			}
			f.mu.Unlock()
			break
		}
		f.mu.Unlock()
		spins++
		runtime.Gosched()
	}

	f.logger.Trace().
		Stringer("access", a).
		Uint64("spins", spins).
		Msg("access granted")
}

// rollback undoes a reservation whose handle failed to open.
func (f *File) rollback(a access, cause error) {
	f.mu.Lock()
	f.transition(a, false)
	f.stats.Rollbacks++
	if a == accessWrite {
		f.stats.Writes--
	} else {
		f.stats.Reads--
	}
	f.mu.Unlock()

	f.logger.Debug().
		Err(cause).
		Stringer("access", a).
		Msg("open failed, reservation rolled back")
}

// release gives back a slot held by a guard. It never fails.
func (f *File) release(a access) {
	f.mu.Lock()
	f.transition(a, false)
	f.mu.Unlock()
}

// reclaimed records a guard released by its GC cleanup.
func (f *File) reclaimed(a access) {
	f.mu.Lock()
	f.stats.Reclaimed++
	f.mu.Unlock()

	f.logger.Warn().
		Stringer("access", a).
		Msg("guard dropped without Close, released by garbage collector")
}

// transition applies one acquire or release of a to the state.
// Callers must hold f.mu.
func (f *File) transition(a access, acquire bool) {
	switch a {
	case accessWrite:
		f.state.Writing = acquire
	case accessRead:
		if acquire {
			f.state.Readers++
		} else {
			f.state.Readers--
		}
	}
	if f.observe != nil {
		f.observe(f.state)
	}
}
