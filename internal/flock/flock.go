package flock

import (
	"context"
	stderrors "errors"
	"os"
	"time"

	"github.com/mrz1836/rwfile/internal/constants"
	"github.com/mrz1836/rwfile/internal/errors"
)

// Lock is a held exclusive lock on a lock file.
type Lock struct {
	file *os.File
}

// Acquire creates path if needed and takes an exclusive non-blocking lock on
// it. It returns ErrLockHeld when another process holds the lock.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, constants.FilePerm) // #nosec G304 -- lock path derived from the user's target
	if err != nil {
		return nil, errors.Wrapf(err, "open lock file %s", path)
	}

	if err := Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		if isContended(err) {
			return nil, errors.Wrapf(errors.ErrLockHeld, "lock %s", path)
		}
		return nil, errors.Wrapf(err, "lock %s", path)
	}

	return &Lock{file: f}, nil
}

// retryInterval is the pause between attempts in AcquireWait.
const retryInterval = 50 * time.Millisecond

// AcquireWait retries Acquire until it succeeds, ctx is done, or timeout
// elapses. A held lock past the timeout returns ErrLockTimeout.
func AcquireWait(ctx context.Context, path string, timeout time.Duration) (*Lock, error) {
	deadline := time.Now().Add(timeout)
	for {
		l, err := Acquire(path)
		if err == nil || !stderrors.Is(err, errors.ErrLockHeld) {
			return l, err
		}

		if time.Now().After(deadline) {
			return nil, errors.Wrapf(errors.ErrLockTimeout, "lock %s", path)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.file.Name()
}

// Release unlocks and closes the lock file. The file itself is left in place.
func (l *Lock) Release() error {
	unlockErr := Unlock(l.file.Fd())
	closeErr := l.file.Close()
	if unlockErr != nil {
		return errors.Wrap(unlockErr, "unlock")
	}
	return closeErr
}
