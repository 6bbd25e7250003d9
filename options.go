package trackgo

import (
	"runtime"
)

type options struct {
	logger       *Logger
	parallelism  int
	capacityHint int
}

// Option configures Builder construction.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration (quiet logger, one worker per CPU, no preallocation) is
// correct for typical workloads.
type Option func(*options)

// WithLogger sets the logger used for build/filter/export diagnostics.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism caps the number of goroutines used by the multithreaded
// filter pass. Values below 1 fall back to runtime.GOMAXPROCS(0).
//
// Build is single-threaded regardless of this setting: the key map and the
// union-find forest are shared mutable state with per-operation-serialized
// updates.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithCapacityHint preallocates the key map and the union-find forest for
// the expected number of distinct features. A good hint avoids rehashing
// and slice growth during Build; a wrong one only wastes memory.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacityHint = n
		}
	}
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}
