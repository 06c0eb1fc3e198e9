// Command editdistancek-check cross-checks editdistancek against a full
// dynamic-programming reference on random Unicode strings and reports the
// time spent in each.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/Joshix-1/editdistancek/internal/simd"
)

var (
	iterations = flag.Int("n", 10_000, "number of random pairs to check")
	seed       = flag.Int64("seed", 1, "random seed")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "number of parallel workers")
	batchSize  = flag.Int("batch", 250, "pairs per work unit")
	checkBytes = flag.Bool("bytes", false, "also check the UTF-8 byte encoding of each pair")
	jsonLogs   = flag.Bool("json", false, "emit JSON-formatted logs")
	verbose    = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(*jsonLogs, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting cross-check",
		"pairs", *iterations,
		"seed", *seed,
		"workers", *workers,
		"isa", simd.ActiveISA().String(),
		"override", simd.IsOverridden(),
	)

	rep, err := run(ctx, config{
		iterations: *iterations,
		seed:       *seed,
		workers:    *workers,
		batchSize:  *batchSize,
		checkBytes: *checkBytes,
	}, logger)
	if err != nil {
		logger.Error("cross-check failed", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("cross-check passed",
		"pairs", rep.Pairs,
		"reference", rep.Reference,
		"editdistancek", rep.Ours,
	)
}

// newLogger creates a logger writing to stderr, as JSON or human-readable
// text.
func newLogger(jsonOut bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOut {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
