package parsearch

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	color.NoColor = true
	r := &Result{
		Config:     Config{Size: 10, Omit: 7, Workers: 3, Target: 5},
		Count:      4,
		Partitions: []Partition{{0, 3}, {3, 3}, {6, 4}},
		PerWorker:  []int{1, 0, 3},
		Elapsed:    time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r, false))
	assert.Equal(t,
		"\nArray size: 10\nNumber to omit: 7\nNumber of threads: 3\nNumber to search for: 5\n"+
			"\n5 was found 4 times in this array.\n\n",
		buf.String())

	buf.Reset()
	require.NoError(t, WriteReport(&buf, r, true))
	out := buf.String()
	assert.Contains(t, out, "worker 0: [0, 3) 1 matches\n")
	assert.Contains(t, out, "worker 2: [6, 10) 3 matches\n")
	assert.Contains(t, out, "elapsed: 1ms\n")
	assert.Contains(t, out, "5 was found 4 times in this array.")
}
