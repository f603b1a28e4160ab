// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/qsim/quantum"
	"github.com/rs/zerolog"
)

const (
	// DefaultMaxQubits bounds INITIALIZE when no option is given (256 amplitudes).
	DefaultMaxQubits = 8

	// MaxQubitsLimit is the largest accepted WithMaxQubits value. APPLY
	// materializes a 2^n × 2^n operator for an n-qubit register.
	MaxQubitsLimit = 10
)

// Options configures an Interpreter.
type Options struct {
	Logger    zerolog.Logger
	MaxQubits int
	Sampler   quantum.Sampler
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger. Statements are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxQubits sets the largest register width. It panics unless
// 1 <= n <= MaxQubitsLimit.
func WithMaxQubits(n int) Option {
	if n < 1 || n > MaxQubitsLimit {
		panic(fmt.Sprintf("circuit: WithMaxQubits(%d): want 1..%d", n, MaxQubitsLimit))
	}

	return func(o *Options) { o.MaxQubits = n }
}

// WithSampler sets the measurement source shared by every register.
// A nil sampler is ignored.
func WithSampler(s quantum.Sampler) Option {
	return func(o *Options) {
		if s != nil {
			o.Sampler = s
		}
	}
}

// WithSeed installs quantum.NewSampler(seed) for reproducible runs.
func WithSeed(seed uint64) Option {
	return WithSampler(quantum.NewSampler(seed))
}

// DefaultOptions returns a no-op logger, DefaultMaxQubits and the shared
// non-deterministic sampler.
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		MaxQubits: DefaultMaxQubits,
		Sampler:   quantum.DefaultSampler(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
