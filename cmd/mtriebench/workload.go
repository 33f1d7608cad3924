package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/aglyzov/go-mtrie/mtrie"
)

var errViolation = errors.New("invariant violation")

// handle is the value stored for every key.
var handle = 1

// runRandom inserts random keys, removes a share of fresh random keys (mostly
// misses) and looks up more of them.
func runRandom(cfg config, log *zap.Logger) error {
	var (
		faker = gofakeit.New(cfg.Seed)
		tr    = mtrie.New[int]()
		start = time.Now()
		found int
	)

	for i := 0; i < cfg.Random; i++ {
		tr.Insert(faker.Uint64(), &handle)
	}
	for i := cfg.Random / 5; i < cfg.Random; i++ {
		tr.Remove(faker.Uint64())
	}
	for i := 0; i < cfg.Random*7/5; i++ {
		if tr.Find(faker.Uint64()) != nil {
			found++
		}
	}

	elapsed := time.Since(start)

	if err := tr.Check(); err != nil {
		return fmt.Errorf("%w: %v", errViolation, err)
	}

	log.Info("random workload",
		zap.Int("inserted", cfg.Random),
		zap.Uint64("count", tr.Count()),
		zap.Int("found", found),
		zap.Duration("elapsed", elapsed),
	)

	return nil
}

// runSequential fills several disjoint key ranges, checks the iteration, drops all
// but the first range and checks what is left.
func runSequential(cfg config, log *zap.Logger) error {
	var (
		tr    = mtrie.New[int]()
		start = time.Now()
	)

	for ep := uint64(0); ep < cfg.Epochs; ep++ {
		for j := uint64(0); j < cfg.Size; j++ {
			tr.Insert(ep*cfg.Stride+j, &handle)
		}
	}

	var visited uint64

	for it := tr.Iterate(); it.More(); it.Advance() {
		if it.Value() != &handle {
			return fmt.Errorf("%w: bad value for key %#x during iteration", errViolation, it.Key())
		}
		if key := it.Key(); key%cfg.Stride >= cfg.Size || key/cfg.Stride >= cfg.Epochs {
			return fmt.Errorf("%w: key %#x not in range during iteration", errViolation, key)
		}
		visited++
	}

	if visited != cfg.Epochs*cfg.Size {
		return fmt.Errorf("%w: iterated %d keys, expected %d", errViolation, visited, cfg.Epochs*cfg.Size)
	}

	for ep := uint64(1); ep < cfg.Epochs; ep++ {
		for j := uint64(0); j < cfg.Size; j++ {
			tr.Remove(ep*cfg.Stride + j)
		}
	}

	for ep := uint64(0); ep < cfg.Epochs+2; ep++ {
		for j := uint64(0); j < cfg.Size; j++ {
			key := ep*cfg.Stride + j

			switch found := tr.Find(key) != nil; {
			case !found && ep == 0:
				return fmt.Errorf("%w: should have found key %#x", errViolation, key)
			case found && ep > 0:
				return fmt.Errorf("%w: should not have found key %#x", errViolation, key)
			}
		}
	}

	if tr.Count() != cfg.Size {
		return fmt.Errorf("%w: wrong key count %d, expected %d", errViolation, tr.Count(), cfg.Size)
	}

	elapsed := time.Since(start)

	if err := tr.Check(); err != nil {
		return fmt.Errorf("%w: %v", errViolation, err)
	}

	stats := tr.Stats()

	log.Info("sequential workload",
		zap.Uint64("epochs", cfg.Epochs),
		zap.Uint64("size", cfg.Size),
		zap.Uint64("visited", visited),
		zap.Uint64("internal_nodes", stats.InternalNodes),
		zap.Uint64("terminal_nodes", stats.TerminalNodes),
		zap.Uint64("bytes", stats.Bytes),
		zap.Duration("elapsed", elapsed),
	)

	return nil
}

func run(cfg config, log *zap.Logger) error {
	for round := 0; round < cfg.Rounds; round++ {
		log := log.With(zap.Int("round", round))

		if err := runRandom(cfg, log); err != nil {
			return fmt.Errorf("random workload: %w", err)
		}
		if err := runSequential(cfg, log); err != nil {
			return fmt.Errorf("sequential workload: %w", err)
		}
	}

	return nil
}
