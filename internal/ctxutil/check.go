// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled returns nil while ctx is live. Once ctx is done it returns the
// cancellation cause, so a cause set with context.WithCancelCause (such as
// an interrupt) survives to the caller instead of a bare context.Canceled.
//
// Workers call it between iterations; it never blocks.
func Canceled(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	return context.Cause(ctx)
}
