package parsearch

import (
	"github.com/op/go-logging"
)

type options struct {
	generator Generator
	logger    *logging.Logger
	seed      uint64
}

// Option configures a search run.
type Option func(*options)

// WithGenerator replaces the random generator used to populate the search
// space. The generator must fill exactly the slice it is given.
//
// If nil is passed, the default RandomGenerator is used.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithSeed seeds the default RandomGenerator. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger sets the logger for run events. If nil is passed, the package
// logger is used.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = log
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: log}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
