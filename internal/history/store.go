// Package history stores stress reports on disk so past runs can be listed
// and inspected. Records are JSON files written atomically under
// ~/.rwfile/runs; a lock file serializes writers across processes.
package history

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mrz1836/rwfile/internal/constants"
	"github.com/mrz1836/rwfile/internal/ctxutil"
	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/flock"
	"github.com/mrz1836/rwfile/internal/stress"
)

// CurrentSchemaVersion is the version written into new records.
const CurrentSchemaVersion = 1

// Record is a stored stress run.
type Record struct {
	SchemaVersion int            `json:"schema_version"`
	Passed        bool           `json:"passed"`
	Error         string         `json:"error,omitempty"`
	Report        *stress.Report `json:"report"`
}

// NewRecord builds a record from a finished run. runErr is the error Run
// returned, if any.
func NewRecord(report *stress.Report, runErr error) *Record {
	r := &Record{
		SchemaVersion: CurrentSchemaVersion,
		Passed:        runErr == nil && report.Passed(),
		Report:        report,
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	return r
}

// ID returns the run id of the record.
func (r *Record) ID() string {
	return r.Report.RunID
}

// FileStore keeps records as <dir>/<run id>.json.
type FileStore struct {
	dir  string
	keep int
}

// NewFileStore returns a store rooted at dir. If dir is empty the store
// lives in <rwfile home>/runs. keep bounds the number of records retained
// by Save; zero or less keeps everything.
func NewFileStore(dir string, keep int) (*FileStore, error) {
	if dir == "" {
		home := os.Getenv(constants.EnvHome)
		if home == "" {
			userHome, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get user home directory: %w", err)
			}
			home = filepath.Join(userHome, constants.RWFileHome)
		}
		dir = filepath.Join(home, constants.RunsDir)
	}
	return &FileStore{dir: dir, keep: keep}, nil
}

// Dir returns the directory records are stored in.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes rec and prunes the oldest records beyond the keep limit.
func (s *FileStore) Save(ctx context.Context, rec *Record) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if err := validateID(rec.ID()); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	if err := os.MkdirAll(s.dir, constants.DirPerm); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	lock, err := flock.AcquireWait(ctx, s.lockPath(), constants.StoreLockTimeout)
	if err != nil {
		return fmt.Errorf("failed to save run '%s': %w", rec.ID(), err)
	}
	defer func() { _ = lock.Release() }()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to save run '%s': %w", rec.ID(), err)
	}

	if err := atomicWrite(s.recordPath(rec.ID()), data); err != nil {
		return fmt.Errorf("failed to save run '%s': %w", rec.ID(), err)
	}

	return s.prune(ctx)
}

// Get reads the record with the given run id.
func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, fmt.Errorf("failed to read run: %w", err)
	}

	path := s.recordPath(id)
	data, err := os.ReadFile(path) //#nosec G304 -- id validated as a UUID
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read run '%s': %w", id, errors.ErrRunNotFound)
		}
		return nil, fmt.Errorf("failed to read run '%s': %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Report == nil {
		return nil, fmt.Errorf("run '%s': %w. Consider deleting %s", id, errors.ErrRunCorrupted, path)
	}
	return &rec, nil
}

// List returns stored records, most recent first. Records that cannot be
// read are skipped. limit <= 0 returns all of them.
func (s *FileStore) List(ctx context.Context, limit int) ([]*Record, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	ids, err := s.ids()
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		if err := ctxutil.Canceled(ctx); err != nil {
			return nil, err
		}
		rec, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b *Record) int {
		if c := b.Report.StartedAt.Compare(a.Report.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// prune removes the oldest records beyond keep. The caller holds the lock.
func (s *FileStore) prune(ctx context.Context) error {
	if s.keep <= 0 {
		return nil
	}

	records, err := s.List(ctx, 0)
	if err != nil {
		return err
	}
	for _, rec := range records[min(s.keep, len(records)):] {
		if err := os.Remove(s.recordPath(rec.ID())); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to prune run '%s': %w", rec.ID(), err)
		}
	}
	return nil
}

// ids lists the run ids with a record file in the store directory.
func (s *FileStore) ids() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, constants.RunFileExt) {
			continue
		}
		id := strings.TrimSuffix(name, constants.RunFileExt)
		if validateID(id) == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.dir, id+constants.RunFileExt)
}

func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, constants.RunsLockName)
}

// validateID accepts only UUIDs in canonical form, which keeps ids safe to
// use as file names.
func validateID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return errors.Wrapf(errors.ErrInvalidRunID, "%q", id)
	}
	return nil
}

// atomicWrite writes data to path using write-then-rename.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Data must be on disk before the rename makes it visible.
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
