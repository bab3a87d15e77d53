// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"
	"time"
)

// DefaultMaxObjects is the default universe ceiling. Closure is O(n³), so a
// few hundred objects keep a merge well under a second.
const DefaultMaxObjects = 512

// Option configures Merge via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Merge.
type Option func(*Options)

// Options holds the parameters of one Merge call.
type Options struct {
	// MaxObjects caps the universe size. Zero disables the ceiling.
	MaxObjects int

	// OnStage is called after each pipeline stage completes, with the time the
	// stage took. It must not retain or mutate anything from the merge.
	OnStage func(stage Stage, elapsed time.Duration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - MaxObjects = DefaultMaxObjects
//   - a no-op OnStage hook
func DefaultOptions() Options {
	return Options{
		MaxObjects: DefaultMaxObjects,
		OnStage:    func(Stage, time.Duration) {},
	}
}

// WithMaxObjects sets the universe ceiling. Zero disables it; a negative value
// is an ErrOptionViolation.
func WithMaxObjects(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max objects must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxObjects = n
	}
}

// WithOnStage installs a hook fired after every stage. Passing nil has no effect.
func WithOnStage(fn func(stage Stage, elapsed time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
