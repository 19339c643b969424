// Package flock provides cross-platform, non-blocking exclusive file locks
// between processes.
//
// The rwfile primitive only coordinates goroutines inside one process. The
// CLI uses this package to keep two rwfile processes from running a stress
// workload against the same target at once, which would make the final
// size check meaningless.
//
// Usage:
//
//	l, err := flock.Acquire(target + ".lock")
//	if errors.Is(err, rwerrors.ErrLockHeld) {
//	    // another process owns the target
//	}
//	defer l.Release()
package flock
