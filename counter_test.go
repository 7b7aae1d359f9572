package parsearch

import (
	"sync"
	"testing"
)

func TestCounterNoLostUpdates(t *testing.T) {
	var c Counter
	const goroutines, perG = 32, 500
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range perG {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	if got := c.Load(); got != goroutines*perG {
		t.Fatalf("Load = %d, want %d", got, goroutines*perG)
	}
}

func TestCounterManyContenders(t *testing.T) {
	// Far more goroutines than processors, each holding the lock once.
	var c Counter
	const n = 2000
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	if got := c.Load(); got != n {
		t.Fatalf("Load = %d, want %d", got, n)
	}
}

func TestCounterZeroValue(t *testing.T) {
	var c Counter
	if c.Load() != 0 {
		t.Fatalf("zero Counter = %d", c.Load())
	}
	c.Inc()
	if c.Load() != 1 {
		t.Fatalf("Load after one Inc = %d", c.Load())
	}
}

func TestTallyConcurrentRecord(t *testing.T) {
	const workers = 8
	tl := NewTally(workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			tl.Record(i, i*10)
		}()
	}
	wg.Wait()

	if got := tl.Sum(); got != 280 {
		t.Errorf("Sum = %d, want 280", got)
	}
	if tl.Len() != workers {
		t.Errorf("Len = %d, want %d", tl.Len(), workers)
	}
	if v, ok := tl.Get(3); !ok || v != 30 {
		t.Errorf("Get(3) = (%d, %v)", v, ok)
	}
	if _, ok := tl.Get(workers); ok {
		t.Errorf("Get(%d) reported a slot", workers)
	}
	if _, ok := tl.Get(-1); ok {
		t.Errorf("Get(-1) reported a slot")
	}
	s := tl.Slice()
	if len(s) != workers || s[7] != 70 || s[0] != 0 {
		t.Errorf("Slice() = %v", s)
	}
}
