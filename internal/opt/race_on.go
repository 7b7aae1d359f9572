//go:build race

package opt

import (
	"sync"
)

const Race_ = true

// Sema under the race detector counts permits under a mutex, so each
// Release/Acquire pair is a synchronization edge the detector can see.
//
// It is zero-value usable.
type Sema struct {
	mu    sync.Mutex
	cond  sync.Cond
	avail int
}

// Acquire blocks until a permit is available and consumes it.
func (s *Sema) Acquire() {
	s.mu.Lock()
	s.cond.L = &s.mu
	for s.avail == 0 {
		s.cond.Wait()
	}
	s.avail--
	s.mu.Unlock()
}

// Release hands out n permits, waking up to n parked goroutines.
func (s *Sema) Release(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.cond.L = &s.mu
	s.avail += n
	s.mu.Unlock()
	s.cond.Broadcast()
}
