// Package parsearch counts a value in an integer array with a fixed party
// of workers. Workers are started first, wait at a single-shot rendezvous
// while the array is populated, then scan disjoint partitions and report
// matches to one lock-protected counter.
package parsearch

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// NoOmit marks a Result whose search space was supplied by the caller
// rather than generated with an omitted value.
const NoOmit = -1

// Result is the outcome of one search run.
type Result struct {
	Config     Config
	Count      int
	Partitions []Partition
	// PerWorker holds the number of matches each worker found.
	PerWorker []int
	Elapsed   time.Duration
}

// Run performs one coordinated search: it validates cfg, starts one worker
// per partition, populates the search space while the workers wait, then
// releases everyone at once and returns the total match count.
//
// Every failure is returned before any worker has scanned; there is no
// partial result.
func Run(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	gen := o.generator
	if gen == nil {
		gen = RandomGenerator{Omit: cfg.Omit, Seed: o.seed}
	}
	return search(cfg, gen, o)
}

// Count runs the same coordinated search over a caller-supplied space.
// The space is copied into the run's own buffer while the workers wait.
func Count(space []int, target, workers int, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	cfg := Config{Size: len(space), Omit: NoOmit, Workers: workers, Target: target}
	return search(cfg, copyGenerator(space), o)
}

func search(cfg Config, gen Generator, o *options) (*Result, error) {
	start := time.Now()
	lg := o.logger

	parts, err := Split(cfg.Size, cfg.Workers)
	if err != nil {
		return nil, err
	}
	rv, err := NewRendezvous(cfg.Workers + 1)
	if err != nil {
		return nil, err
	}
	var (
		counter Counter
		g       errgroup.Group
	)
	tally := NewTally(len(parts))
	space := make([]int, cfg.Size)
	for i, p := range parts {
		w := newWorker(i, p, space, cfg.Target, &counter, rv, tally)
		g.Go(w.Run)
	}
	lg.Debugf("started %d workers over %d elements (target %d)", cfg.Workers, cfg.Size, cfg.Target)

	if err := gen.Fill(space); err != nil {
		rv.Break()
		_ = g.Wait()
		lg.Errorf("populating search space: %v", err)
		return nil, &GenerateError{cause: err}
	}

	if _, err := rv.Arrive(); err != nil {
		rv.Break()
		_ = g.Wait()
		return nil, errors.Wrap(err, "controller arrival")
	}
	lg.Debugf("released %d workers", cfg.Workers)

	if err := g.Wait(); err != nil {
		lg.Errorf("worker failed: %v", err)
		return nil, err
	}

	res := &Result{
		Config:     cfg,
		Count:      counter.Load(),
		Partitions: parts,
		PerWorker:  tally.Slice(),
		Elapsed:    time.Since(start),
	}
	lg.Infof("%d was found %d times across %d workers in %s", cfg.Target, res.Count, cfg.Workers, res.Elapsed)
	return res, nil
}
