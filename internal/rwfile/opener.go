package rwfile

import (
	"io"
	"io/fs"
	"os"
)

// defaultPerm is the permission used when a writer creates the file.
const defaultPerm fs.FileMode = 0o600

// ReadHandle is the handle owned by a read guard.
type ReadHandle interface {
	io.ReadSeekCloser
	Stat() (fs.FileInfo, error)
}

// WriteHandle is the handle owned by a write guard.
type WriteHandle interface {
	io.WriteSeeker
	io.Closer
	Sync() error
	Truncate(size int64) error
}

// Opener opens independent handles on a path. Every call must return a new
// handle with its own cursor.
type Opener interface {
	// OpenRead opens path read-only.
	OpenRead(path string) (ReadHandle, error)
	// OpenWrite opens path for writing, creating it if missing. It must not
	// truncate existing content.
	OpenWrite(path string) (WriteHandle, error)
}

// OSOpener opens handles on the local filesystem.
type OSOpener struct {
	// Perm is the mode for files created by OpenWrite. Zero means 0600.
	Perm fs.FileMode
}

// OpenRead opens path with O_RDONLY.
func (o OSOpener) OpenRead(path string) (ReadHandle, error) {
	f, err := os.Open(path) // #nosec G304 -- path is chosen by the caller of New
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenWrite opens path with O_WRONLY|O_CREATE.
func (o OSOpener) OpenWrite(path string) (WriteHandle, error) {
	perm := o.Perm
	if perm == 0 {
		perm = defaultPerm
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm) // #nosec G304 -- path is chosen by the caller of New
	if err != nil {
		return nil, err
	}
	return f, nil
}
