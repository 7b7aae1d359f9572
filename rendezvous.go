package parsearch

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/llxisdsh/parsearch/internal/opt"
)

// Rendezvous is a single-shot barrier for a fixed party of goroutines.
//
// Each party calls Arrive exactly once. Every arrival but the last parks;
// the last arrival trips the rendezvous and wakes exactly the parties
// already parked. All writes a party made before its own arrival
// happen-before any party's return from Arrive.
//
// Unlike a cyclic barrier, a Rendezvous is never reset: arrivals beyond the
// party count fail with ErrRendezvousSpent. Break releases everyone with
// ErrRendezvousBroken instead of tripping, so no party proceeds as if the
// rendezvous had succeeded.
type Rendezvous struct {
	_       noCopy
	parties uint32
	// state 64-bit:
	//   Bit 32:   Broken
	//   Bit 0-31: Arrivals
	state atomic.Uint64
	// sema holds the parked arrivals. It receives one permit per parked
	// party, from either the tripping arrival or Break, never both.
	sema opt.Sema
}

const rvBrokenBit = 1 << 32

// NewRendezvous creates a rendezvous for the given number of parties.
func NewRendezvous(parties int) (*Rendezvous, error) {
	if parties < 1 || uint64(parties) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidParties, "parties=%d", parties)
	}
	return &Rendezvous{parties: uint32(parties)}, nil
}

// Parties returns the number of arrivals needed to trip the rendezvous.
func (r *Rendezvous) Parties() int {
	return int(r.parties)
}

// Arrive records the caller's arrival and waits for the rest of the party.
//
// It returns the arrival index (0 to parties-1), where parties-1 indicates
// the caller tripped the rendezvous. The error is ErrRendezvousBroken if
// Break was called before the rendezvous tripped, and ErrRendezvousSpent
// if the caller is an extra arrival.
func (r *Rendezvous) Arrive() (int, error) {
	for {
		s := r.state.Load()
		if s&rvBrokenBit != 0 {
			return -1, ErrRendezvousBroken
		}
		n := uint32(s)
		if n >= r.parties {
			return -1, ErrRendezvousSpent
		}
		if !r.state.CompareAndSwap(s, s+1) {
			continue
		}
		if n+1 == r.parties {
			// n parties arrived before us and are parked (or about to be).
			r.sema.Release(int(n))
			return int(n), nil
		}
		r.sema.Acquire()
		if r.state.Load()&rvBrokenBit != 0 {
			return int(n), ErrRendezvousBroken
		}
		return int(n), nil
	}
}

// Break releases every waiting and future party with ErrRendezvousBroken.
// It has no effect on a rendezvous that has already tripped.
func (r *Rendezvous) Break() {
	for {
		s := r.state.Load()
		n := uint32(s)
		if s&rvBrokenBit != 0 || n >= r.parties {
			return
		}
		if r.state.CompareAndSwap(s, s|rvBrokenBit) {
			// Later arrivals see the broken bit and never park.
			r.sema.Release(int(n))
			return
		}
	}
}

// Arrived returns the number of parties that have arrived so far.
func (r *Rendezvous) Arrived() int {
	return int(uint32(r.state.Load()))
}

// Released reports whether the rendezvous tripped normally.
func (r *Rendezvous) Released() bool {
	s := r.state.Load()
	return s&rvBrokenBit == 0 && uint32(s) == r.parties
}

// Broken reports whether Break took effect.
func (r *Rendezvous) Broken() bool {
	return r.state.Load()&rvBrokenBit != 0
}
