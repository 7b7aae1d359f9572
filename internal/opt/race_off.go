//go:build !race

package opt

import (
	_ "unsafe" // for linkname
)

const Race_ = false

// Sema parks goroutines on the runtime semaphore. Release before Acquire
// banks a permit, so a wake-up is never lost.
//
// It is zero-value usable.
type Sema uint32

// Acquire blocks until a permit is available and consumes it.
func (s *Sema) Acquire() {
	semacquire((*uint32)(s))
}

// Release hands out n permits, waking up to n parked goroutines.
func (s *Sema) Release(n int) {
	for range n {
		semrelease((*uint32)(s), false, 0)
	}
}

//go:linkname semacquire sync.runtime_Semacquire
func semacquire(addr *uint32)

//go:linkname semrelease sync.runtime_Semrelease
func semrelease(addr *uint32, handoff bool, skipframes int)
