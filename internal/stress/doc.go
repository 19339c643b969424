// Package stress drives a concurrent reader/writer workload against a
// single rwfile.File and verifies the result.
//
// Writers append a fixed marker, one exclusive guard per append. Readers
// take a shared guard, seek to a random marker-aligned offset and expect
// to read exactly the marker back. Any other outcome means a reader
// observed a write in progress, which the lock must prevent.
//
//	f := rwfile.New("/tmp/target")
//	report, err := stress.Run(ctx, f, stress.Config{
//		Writers: 5, Readers: 10, Iterations: 1000, Marker: "Hello world",
//	})
package stress
