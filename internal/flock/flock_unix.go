//go:build unix

package flock

import (
	stderrors "errors"

	"golang.org/x/sys/unix"
)

// Exclusive acquires an exclusive non-blocking lock on the file descriptor.
// Returns an error if the lock cannot be acquired immediately.
func Exclusive(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_EX|unix.LOCK_NB)
}

// Unlock releases the lock on the file descriptor.
func Unlock(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_UN)
}

// isContended reports whether err means another holder owns the lock.
func isContended(err error) bool {
	return stderrors.Is(err, unix.EWOULDBLOCK) || stderrors.Is(err, unix.EAGAIN)
}
