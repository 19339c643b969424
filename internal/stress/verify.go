package stress

import (
	"bytes"
	stderrors "errors"
	"io"

	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/rwfile"
)

// Verify checks under a single reader guard that the file consists only of
// whole copies of marker. A missing file is returned as the open error.
func Verify(f *rwfile.File, marker string) (*Verification, error) {
	if marker == "" {
		return nil, errors.ErrEmptyMarker
	}

	v := &Verification{Path: f.Path(), Marker: marker}
	want := []byte(marker)
	buf := make([]byte, len(want))

	err := f.WithReader(func(r *rwfile.ReadGuard) error {
		for {
			n, err := io.ReadFull(r, buf)
			switch {
			case stderrors.Is(err, io.EOF):
				return nil
			case stderrors.Is(err, io.ErrUnexpectedEOF):
				v.Size += int64(n)
				return errors.Wrapf(errors.ErrPartialMarker,
					"%d trailing bytes after %d records", n, v.Records)
			case err != nil:
				return err
			}
			if !bytes.Equal(buf, want) {
				return errors.Wrapf(errors.ErrMarkerMismatch,
					"record %d at offset %d: got %q", v.Records, v.Size, buf)
			}
			v.Size += int64(n)
			v.Records++
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "verify %s", f.Path())
	}
	return v, nil
}
