package parsearch

import (
	"sync/atomic"

	"github.com/llxisdsh/parsearch/internal/opt"
)

// Counter is a match count shared by all workers of a run.
//
// Inc serializes on a FIFO ticket lock held only for the single addition,
// so workers that find matches at the same time are served in arrival
// order and none starves. Load takes no lock and is only meaningful once
// every incrementing goroutine has been joined.
//
// It is zero-value usable.
type Counter struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
	n       opt.PaddedInt_
}

// Inc adds one to the counter under exclusive access.
func (c *Counter) Inc() {
	ticket := c.next.Add(1) - 1
	var spins int
	for c.serving.Load() != ticket {
		backoff(&spins)
	}
	c.n.N++
	// Only the ticket holder writes serving.
	c.serving.Store(ticket + 1)
}

// Load returns the current count. The caller must have joined every
// goroutine that calls Inc.
func (c *Counter) Load() int {
	return c.n.N
}
