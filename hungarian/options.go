// SPDX-License-Identifier: MIT

package hungarian

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultMaxSize bounds the padded order accepted by Solve and Assign.
	DefaultMaxSize = 512

	// DefaultEpsilon is the relative zero tolerance of CoverMethod: a reduced
	// cost counts as zero when it is ≤ DefaultEpsilon·max|c|.
	DefaultEpsilon = 1e-12
)

const (
	panicMaxSizeInvalid = "hungarian: WithMaxSize: size must be >= 0"
	panicEpsilonInvalid = "hungarian: WithEpsilon: eps must be finite, non-negative"
)

// Options configures Solve and Assign.
//
// Method  – algorithm run on the square cost matrix (default CoverMethod).
// MaxSize – largest accepted order max(rows, cols); 0 disables the bound.
// Epsilon – reduced costs ≤ Epsilon·max|c| count as zero in CoverMethod.
// Logger  – receives Debug events per cover round and per solve (default: disabled).
type Options struct {
	Method  Method
	MaxSize int
	Epsilon float64
	Logger  zerolog.Logger
}

// Option represents a functional option for configuring the solvers.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is passed.
//
// Defaults:
//   - Method:  CoverMethod.
//   - MaxSize: DefaultMaxSize.
//   - Epsilon: DefaultEpsilon.
//   - Logger:  zerolog.Nop().
func DefaultOptions() Options {
	return Options{
		Method:  CoverMethod,
		MaxSize: DefaultMaxSize,
		Epsilon: DefaultEpsilon,
		Logger:  zerolog.Nop(),
	}
}

// WithMethod selects the assignment algorithm. Unknown values surface as
// ErrUnsupportedMethod from the solve call.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithMaxSize sets the largest accepted order; 0 means unbounded.
// Panics on a negative size.
func WithMaxSize(size int) Option {
	if size < 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) {
		o.MaxSize = size
	}
}

// WithEpsilon sets the relative zero tolerance of CoverMethod; it is scaled by
// the largest absolute cost, so 0 means an exact zero test.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithLogger routes solver tracing to l. Events are emitted at Debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
