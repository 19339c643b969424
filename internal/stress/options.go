package stress

import (
	"math/rand/v2"

	"github.com/mrz1836/rwfile/internal/clock"
)

type options struct {
	clock clock.Clock
	seed  uint64
}

// Option configures a Run.
type Option func(*options)

// WithClock sets the clock used to measure elapsed time.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithSeed makes reader offsets deterministic. Reader i draws from a PCG
// source seeded with (seed, i).
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func newOptions(opts []Option) options {
	o := options{
		clock: clock.RealClock{},
		seed:  rand.Uint64(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) rand(worker int) *rand.Rand {
	return rand.New(rand.NewPCG(o.seed, uint64(worker))) //nolint:gosec // offsets only, not security sensitive
}
