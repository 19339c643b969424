// Package rwfile coordinates concurrent access to a single file within one
// process: any number of readers, or exactly one writer, never both.
//
// A File tracks how many read guards and whether a write guard are
// outstanding. Reader and Writer spin (yielding the processor between
// checks) until the requested access is admitted, reserve the slot, and
// open a private handle for the returned guard. Closing the guard gives
// the slot back. Each guard owns its handle, so concurrent readers keep
// independent cursors.
//
// Usage:
//
//	f := rwfile.New("/var/lib/app/data.bin")
//
//	w, err := f.Writer()
//	if err != nil {
//	    return err
//	}
//	defer func() { _ = w.Close() }()
//	if _, err := w.Append(record); err != nil {
//	    return err
//	}
//
// WithReader and WithWriter wrap the same pattern and release the guard on
// every exit path, including panics.
//
// Admission is not fair: a steady stream of readers can keep a writer
// waiting indefinitely, and a pending acquisition cannot be cancelled.
// Locking is in-process only; other processes opening the same path are
// not excluded.
package rwfile
