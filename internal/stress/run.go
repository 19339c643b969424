package stress

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/rwfile/internal/ctxutil"
	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/rwfile"
)

// Config describes a workload.
type Config struct {
	Writers    int    `json:"writers"`
	Readers    int    `json:"readers"`
	Iterations int    `json:"iterations"`
	Marker     string `json:"marker"`
}

// Validate rejects workloads that cannot run.
func (c Config) Validate() error {
	if c.Marker == "" {
		return errors.ErrEmptyMarker
	}
	if c.Writers < 1 || c.Readers < 1 || c.Iterations < 1 {
		return errors.Wrapf(errors.ErrConfigInvalidStress,
			"writers, readers and iterations must be positive (got %d, %d, %d)",
			c.Writers, c.Readers, c.Iterations)
	}
	return nil
}

// ExpectedSize is the file size after every writer finished every iteration.
func (c Config) ExpectedSize() int64 {
	return int64(c.Writers) * int64(c.Iterations) * int64(len(c.Marker))
}

type counters struct {
	writes     atomic.Int64
	reads      atomic.Int64
	emptyReads atomic.Int64
}

// Run truncates the target, runs cfg.Writers writers and cfg.Readers
// readers concurrently, then verifies the file.
//
// The first worker error cancels the others. Workers check ctx between
// iterations, so cancelling ctx stops the run after in-flight operations
// finish. The returned Report is non-nil whenever the run started, also
// when an error is returned.
func Run(ctx context.Context, f *rwfile.File, cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	report := &Report{
		RunID:  uuid.NewString(),
		Path:   f.Path(),
		Config: cfg,
	}
	logger := zerolog.Ctx(ctx).With().
		Str("component", "stress").
		Str("run_id", report.RunID).
		Logger()

	logger.Info().
		Str("path", report.Path).
		Int("writers", cfg.Writers).
		Int("readers", cfg.Readers).
		Int("iterations", cfg.Iterations).
		Msg("starting stress run")

	start := o.clock.Now()
	report.StartedAt = start

	if err := f.WithWriter(func(w *rwfile.WriteGuard) error {
		return w.Truncate(0)
	}); err != nil {
		return report, errors.Wrap(err, "failed to truncate target")
	}

	var c counters
	g, gctx := errgroup.WithContext(ctx)
	marker := []byte(cfg.Marker)

	for range cfg.Writers {
		g.Go(func() error {
			return write(gctx, f, marker, cfg.Iterations, &c)
		})
	}
	for i := range cfg.Readers {
		rng := o.rand(i)
		g.Go(func() error {
			return read(gctx, f, marker, cfg.Iterations, rng.Int64N, &c)
		})
	}

	err := g.Wait()

	report.Writes = c.writes.Load()
	report.Reads = c.reads.Load()
	report.EmptyReads = c.emptyReads.Load()
	report.ExpectedSize = report.Writes * int64(len(marker))

	if err != nil {
		report.Elapsed = o.clock.Since(start)
		report.Lock = f.Stats()
		logger.Error().Err(err).Int64("writes", report.Writes).Msg("stress run failed")
		return report, err
	}

	v, err := Verify(f, cfg.Marker)
	report.Elapsed = o.clock.Since(start)
	report.Lock = f.Stats()
	if err != nil {
		logger.Error().Err(err).Msg("verification failed")
		return report, err
	}
	report.Verification = v
	report.Size = v.Size

	if report.Size != report.ExpectedSize {
		return report, errors.Wrapf(errors.ErrSizeMismatch,
			"size %d, expected %d", report.Size, report.ExpectedSize)
	}

	logger.Info().
		Int64("writes", report.Writes).
		Int64("reads", report.Reads).
		Int64("size", report.Size).
		Dur("elapsed", report.Elapsed).
		Msg("stress run passed")

	return report, nil
}

func write(ctx context.Context, f *rwfile.File, marker []byte, iterations int, c *counters) error {
	for range iterations {
		if err := ctxutil.Canceled(ctx); err != nil {
			return err
		}
		if err := f.WithWriter(func(w *rwfile.WriteGuard) error {
			_, err := w.Append(marker)
			return err
		}); err != nil {
			return errors.Wrap(err, "writer")
		}
		c.writes.Add(1)
	}
	return nil
}

func read(ctx context.Context, f *rwfile.File, marker []byte, iterations int, intn func(int64) int64, c *counters) error {
	buf := make([]byte, len(marker))
	width := int64(len(marker))

	for range iterations {
		if err := ctxutil.Canceled(ctx); err != nil {
			return err
		}
		err := f.WithReader(func(r *rwfile.ReadGuard) error {
			size, err := r.Size()
			if err != nil {
				return err
			}
			records := size / width
			if records == 0 {
				c.emptyReads.Add(1)
				return nil
			}
			offset := intn(records) * width
			if _, err := r.Seek(offset, io.SeekStart); err != nil {
				return err
			}
			if _, err := io.ReadFull(r, buf); err != nil {
				return err
			}
			if !bytes.Equal(buf, marker) {
				return errors.Wrapf(errors.ErrMarkerMismatch, "offset %d: got %q", offset, buf)
			}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "reader")
		}
		c.reads.Add(1)
	}
	return nil
}
