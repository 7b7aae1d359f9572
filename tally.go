package parsearch

import (
	"github.com/llxisdsh/parsearch/internal/opt"
)

// Tally records how many matches each worker found, one cache-line slot
// per worker. Worker i writes only slot i, once, after its scan; reads are
// valid after every worker has been joined.
type Tally struct {
	slots []opt.PaddedInt_
}

// NewTally returns a tally with a zeroed slot for each of n workers.
func NewTally(n int) *Tally {
	return &Tally{slots: make([]opt.PaddedInt_, n)}
}

// Record stores the match count of a worker.
func (t *Tally) Record(worker, matches int) {
	t.slots[worker].N = matches
}

// Get returns the match count of a worker; ok is false for an index
// outside the tally.
func (t *Tally) Get(worker int) (n int, ok bool) {
	if worker < 0 || worker >= len(t.slots) {
		return 0, false
	}
	return t.slots[worker].N, true
}

// Len returns the number of worker slots.
func (t *Tally) Len() int {
	return len(t.slots)
}

// Sum returns the total over all workers.
func (t *Tally) Sum() int {
	sum := 0
	for i := range t.slots {
		sum += t.slots[i].N
	}
	return sum
}

// Slice returns a copy of the per-worker counts in worker order.
func (t *Tally) Slice() []int {
	out := make([]int, len(t.slots))
	for i := range t.slots {
		out[i] = t.slots[i].N
	}
	return out
}
