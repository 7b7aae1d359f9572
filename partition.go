package parsearch

import (
	"github.com/pkg/errors"
)

// Partition is a contiguous index range [Offset, Offset+Length) of the
// search space owned by exactly one worker.
type Partition struct {
	Offset int
	Length int
}

// End returns the first index past the partition.
func (p Partition) End() int {
	return p.Offset + p.Length
}

// Split divides [0, size) into workers contiguous ranges in worker order.
//
// Every range gets size/workers elements except the last, which also takes
// the remainder size%workers. The ranges tile [0, size) with no gap and no
// overlap.
func Split(size, workers int) ([]Partition, error) {
	if size < 0 || workers < 1 || workers > size {
		return nil, errors.Wrapf(ErrInvalidPartition, "size=%d workers=%d", size, workers)
	}
	base := size / workers
	parts := make([]Partition, workers)
	for i := range parts {
		parts[i] = Partition{Offset: i * base, Length: base}
	}
	parts[workers-1].Length += size % workers
	return parts, nil
}
