package parsearch

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// WorkerState is the lifecycle stage of a Worker.
type WorkerState uint32

const (
	WorkerCreated WorkerState = iota
	WorkerWaiting
	WorkerScanning
	WorkerDone
)

func (s WorkerState) String() string {
	switch s {
	case WorkerCreated:
		return "created"
	case WorkerWaiting:
		return "waiting"
	case WorkerScanning:
		return "scanning"
	case WorkerDone:
		return "done"
	}
	return "unknown"
}

// Worker scans one partition of a shared search space for a target value.
//
// The space may still be unpopulated when the worker is built; the worker
// reads it only after the rendezvous trips.
type Worker struct {
	ID   int
	Part Partition

	space   []int
	target  int
	counter *Counter
	rv      *Rendezvous
	tally   *Tally

	state atomic.Uint32
}

func newWorker(
	id int,
	part Partition,
	space []int,
	target int,
	counter *Counter,
	rv *Rendezvous,
	tally *Tally,
) *Worker {
	return &Worker{
		ID:      id,
		Part:    part,
		space:   space,
		target:  target,
		counter: counter,
		rv:      rv,
		tally:   tally,
	}
}

// State returns the worker's current lifecycle stage.
func (w *Worker) State() WorkerState {
	return WorkerState(w.state.Load())
}

// Run waits at the rendezvous, then counts every element of the partition
// equal to the target. If the rendezvous fails the partition is not
// scanned at all and the error is returned.
func (w *Worker) Run() error {
	w.state.Store(uint32(WorkerWaiting))
	if _, err := w.rv.Arrive(); err != nil {
		w.state.Store(uint32(WorkerDone))
		return errors.Wrapf(err, "worker %d", w.ID)
	}

	w.state.Store(uint32(WorkerScanning))
	matches := 0
	for _, v := range w.space[w.Part.Offset:w.Part.End()] {
		if v == w.target {
			w.counter.Inc()
			matches++
		}
	}
	if w.tally != nil {
		w.tally.Record(w.ID, matches)
	}
	w.state.Store(uint32(WorkerDone))
	return nil
}
