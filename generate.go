package parsearch

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// Generator populates a search space. It is called exactly once per run,
// after the workers have been started and before they are released.
type Generator interface {
	Fill(space []int) error
}

// GeneratorFunc adapts an ordinary function to a Generator.
type GeneratorFunc func(space []int) error

// Fill calls f(space).
func (f GeneratorFunc) Fill(space []int) error {
	return f(space)
}

// maxRedraws caps the redraws spent avoiding the omitted value. With one
// excluded value in ValueRange the chance of hitting the cap is
// (1/1000)^64, but the loop still terminates.
const maxRedraws = 64

// RandomGenerator fills a space with values drawn uniformly from
// [MinValue, MaxValue], never producing Omit.
type RandomGenerator struct {
	Omit int
	// Seed makes the sequence reproducible. Zero seeds from the clock.
	Seed uint64
}

// Fill implements Generator.
func (g RandomGenerator) Fill(space []int) error {
	if g.Omit < MinValue || g.Omit > MaxValue {
		return errors.Wrapf(ErrInvalidConfig, "omit value %d outside [%d, %d]", g.Omit, MinValue, MaxValue)
	}
	seed := g.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range space {
		space[i] = drawExcept(rng, g.Omit)
	}
	return nil
}

func drawExcept(rng *rand.Rand, omit int) int {
	for range maxRedraws {
		if v := MinValue + rng.IntN(ValueRange); v != omit {
			return v
		}
	}
	return MinValue + (omit-MinValue+1)%ValueRange
}

// copyGenerator fills a space from a fixed slice of the same length.
func copyGenerator(src []int) Generator {
	return GeneratorFunc(func(space []int) error {
		if len(space) != len(src) {
			return errors.Errorf("source has %d values, space has %d", len(src), len(space))
		}
		copy(space, src)
		return nil
	})
}
