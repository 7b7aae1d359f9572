package parsearch

import (
	"runtime"
	_ "unsafe" // for linkname
)

// noCopy is embedded as a named field in types that hold synchronization
// state; go vet's copylocks check flags copies of them.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// backoff is one step of waiting for a lock whose holder does a single
// increment. It spins while the runtime deems spinning useful, then yields
// the processor so the holder can be scheduled. It never sleeps: the hold
// time is far below any timer resolution.
func backoff(spins *int) {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return
	}
	runtime.Gosched()
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
func runtime_doSpin()
