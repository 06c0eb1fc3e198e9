package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Joshix-1/editdistancek"
	"github.com/Joshix-1/editdistancek/testutil"
)

var errMismatch = errors.New("distance mismatch")

// config controls a cross-check run.
type config struct {
	iterations int
	seed       int64
	workers    int
	batchSize  int
	checkBytes bool

	// distance is the implementation under test.
	distance func(a, b string) int
}

// report summarizes a successful run. Durations are summed over all
// workers.
type report struct {
	Pairs     int
	Ours      time.Duration
	Reference time.Duration
}

func (c *config) normalize() {
	if c.workers < 1 {
		c.workers = 1
	}
	if c.batchSize < 1 {
		c.batchSize = 250
	}
	if c.distance == nil {
		c.distance = editdistancek.DistanceString
	}
}

// run checks cfg.iterations random string pairs against the reference
// distance. Pair i has lengths 50 + rand(0..i/100), so later pairs get
// longer. Each batch owns an RNG derived from the seed, which makes the
// generated pairs independent of the worker count.
func run(ctx context.Context, cfg config, logger *slog.Logger) (report, error) {
	cfg.normalize()

	var ours, reference atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	batches := 0
	for start := 0; start < cfg.iterations; start += cfg.batchSize {
		end := min(start+cfg.batchSize, cfg.iterations)
		batch := batches
		batches++

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := testutil.NewRNG(cfg.seed + int64(batch))
			var o, r time.Duration

			for i := start; i < end; i++ {
				a := rng.String(testutil.Alphabet, 50+rng.Intn(i/100+1))
				b := rng.String(testutil.Alphabet, 50+rng.Intn(i/100+1))

				do, dr, err := checkPair(cfg, a, b)
				if err != nil {
					return fmt.Errorf("pair %d: %w", i, err)
				}
				o += do
				r += dr
			}

			ours.Add(int64(o))
			reference.Add(int64(r))
			logger.Debug("batch done", "batch", batch, "from", start, "to", end)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report{}, err
	}

	return report{
		Pairs:     cfg.iterations,
		Ours:      time.Duration(ours.Load()),
		Reference: time.Duration(reference.Load()),
	}, nil
}

// checkPair compares the implementation under test with the reference on
// one pair and returns the time each took.
func checkPair(cfg config, a, b string) (ours, reference time.Duration, err error) {
	start := time.Now()
	want := testutil.Levenshtein([]rune(a), []rune(b))
	reference = time.Since(start)

	start = time.Now()
	got := cfg.distance(a, b)
	ours = time.Since(start)

	if got != want {
		return ours, reference, fmt.Errorf("%w: %q %q: got %d, want %d", errMismatch, a, b, got, want)
	}

	if d, ok := editdistancek.DistanceStringBounded(a, b, want); !ok || d != want {
		return ours, reference, fmt.Errorf("%w: %q %q: bounded k=%d returned (%d, %v)", errMismatch, a, b, want, d, ok)
	}
	if want > 0 {
		if d, ok := editdistancek.DistanceStringBounded(a, b, want-1); ok {
			return ours, reference, fmt.Errorf("%w: %q %q: bounded k=%d returned %d", errMismatch, a, b, want-1, d)
		}
	}

	if cfg.checkBytes {
		ab, bb := []byte(a), []byte(b)
		if got, want := editdistancek.Distance(ab, bb), testutil.Levenshtein(ab, bb); got != want {
			return ours, reference, fmt.Errorf("%w: bytes %q %q: got %d, want %d", errMismatch, a, b, got, want)
		}
	}

	return ours, reference, nil
}
