package parsearch

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("parsearch: invalid configuration")

	// ErrInvalidPartition is returned when a range cannot be split across
	// the requested number of workers.
	ErrInvalidPartition = errors.New("parsearch: invalid partition request")

	// ErrInvalidParties is returned when a rendezvous is created for fewer
	// than one party.
	ErrInvalidParties = errors.New("parsearch: parties must be positive")

	// ErrRendezvousSpent is returned to an arrival beyond the party count.
	// A rendezvous releases exactly once and is never reset.
	ErrRendezvousSpent = errors.New("parsearch: rendezvous already released")

	// ErrRendezvousBroken is returned to every party of a rendezvous that
	// was broken before it tripped.
	ErrRendezvousBroken = errors.New("parsearch: rendezvous broken")

	// ErrGenerate wraps failures to populate the search space.
	ErrGenerate = errors.New("parsearch: populate search space")
)

// ConfigError describes a single rejected run parameter.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Is reports ErrInvalidConfig as a match so callers can test the class of
// failure without a type assertion.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// GenerateError reports a generator that failed to populate the search
// space. It matches ErrGenerate and unwraps to the generator's error.
type GenerateError struct {
	cause error
}

func (e *GenerateError) Error() string {
	return ErrGenerate.Error() + ": " + e.cause.Error()
}

// Cause returns the generator's error, for errors.Cause.
func (e *GenerateError) Cause() error { return e.cause }

func (e *GenerateError) Unwrap() error { return e.cause }

func (e *GenerateError) Is(target error) bool {
	return target == ErrGenerate
}
