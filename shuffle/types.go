// Package shuffle options and error definitions.
package shuffle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scramble/bitrev"
	"github.com/katalvlaran/scramble/internal/parallel"
	"github.com/katalvlaran/scramble/urand"
)

// Sentinel errors for shuffle construction.
var (
	// ErrZeroLength is returned when a zero-length shuffle is requested.
	ErrZeroLength = errors.New("shuffle: length must be >= 1")

	// ErrNotPowerOfTwo is returned when length is not a power of two.
	ErrNotPowerOfTwo = errors.New("shuffle: length must be a power of two")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shuffle: invalid option supplied")
)

// defaultSourceSeed seeds the fallback Source. A fixed seed keeps the
// no-options call path reproducible; callers wanting independent
// streams must pass WithSource.
const defaultSourceSeed = 1

// Option configures shuffle behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the shuffle is invoked.
type Option func(*Options)

// Options holds the tunables shared by the shuffle constructors.
type Options struct {
	// Source supplies every uniform random draw. Defaults to a PCG
	// seeded with defaultSourceSeed, so repeated default-option calls
	// replay the same shuffle.
	Source urand.Source

	// Workers sets the goroutine count for methods whose per-index
	// work is independent (HashShuffle only; the other two methods
	// have sequential data dependencies and ignore it).
	// 1 = serial.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a deterministic PCG source and
// serial execution.
func DefaultOptions() Options {
	return Options{
		Source:  urand.New(defaultSourceSeed),
		Workers: 1,
	}
}

// WithSource supplies the uniform random source consumed by the
// randomized methods. A nil src is an option violation.
func WithSource(src urand.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil Source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithWorkers sets the parallelism for HashShuffle.
//
//	n > 0:  exactly n workers
//	n == 0: one worker per available CPU
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = parallel.NumWorkers()
		default:
			o.Workers = n
		}
	}
}

// buildOptions folds opts over the defaults and surfaces any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// validateLength enforces the power-of-two precondition shared by all
// three methods.
func validateLength(length uint32) error {
	if length == 0 {
		return ErrZeroLength
	}
	if !bitrev.IsPow2(length) {
		return fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, length)
	}

	return nil
}
