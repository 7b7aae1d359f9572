package parsearch

import (
	"strconv"

	"github.com/pkg/errors"
)

// Bounds of the values placed in a search space; omit and target values
// must fall inside them.
const (
	MinValue = 0
	MaxValue = 999
)

// ValueRange is the number of distinct values a search space can hold.
const ValueRange = MaxValue - MinValue + 1

// Config holds the four parameters of a search run.
type Config struct {
	// Size is the number of elements in the search space.
	Size int
	// Omit is a value the generator never places in the search space.
	Omit int
	// Workers is the number of concurrent scanners.
	Workers int
	// Target is the value being counted.
	Target int
}

// Validate checks the configuration before any synchronization object is
// created. The first violation is returned as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return &ConfigError{Field: "array size", Value: c.Size, Reason: "must not be negative"}
	case c.Omit < MinValue || c.Omit > MaxValue:
		return &ConfigError{Field: "number to omit", Value: c.Omit, Reason: "must be in [0, 999]"}
	case c.Target < MinValue || c.Target > MaxValue:
		return &ConfigError{Field: "number to search for", Value: c.Target, Reason: "must be in [0, 999]"}
	case c.Workers < 1:
		return &ConfigError{Field: "number of threads", Value: c.Workers, Reason: "must be at least 1"}
	case c.Workers > c.Size:
		return &ConfigError{Field: "number of threads", Value: c.Workers, Reason: "must not exceed the array size"}
	}
	return nil
}

// ParseArgs builds a Config from the four positional arguments
// <array_size> <num_omit> <num_threads> <num_search>. Each must be a base-10
// integer that fits in 32 bits. The result is validated.
func ParseArgs(args []string) (Config, error) {
	if len(args) != 4 {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "expected 4 arguments, got %d", len(args))
	}
	names := [...]string{"array size", "number to omit", "number of threads", "number to search for"}
	var vals [4]int
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "%s %q is not an integer", names[i], arg)
		}
		vals[i] = int(v)
	}
	cfg := Config{Size: vals[0], Omit: vals[1], Workers: vals[2], Target: vals[3]}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
