package main

import (
	"flag"
	"fmt"
)

type config struct {
	Rounds int    // repetitions of every workload
	Random int    // keys inserted by the random workload
	Epochs uint64 // key ranges inserted by the sequential workload
	Size   uint64 // keys per range
	Stride uint64 // distance between range starts
	Seed   int64
	Debug  bool
}

func parseConfig(args []string) (config, error) {
	var (
		cfg   config
		flags = flag.NewFlagSet("mtriebench", flag.ContinueOnError)
	)

	flags.IntVar(&cfg.Rounds, "rounds", 3, "repetitions of every workload")
	flags.IntVar(&cfg.Random, "random", 500_000, "keys inserted by the random workload")
	flags.Uint64Var(&cfg.Epochs, "seq-epochs", 5, "key ranges inserted by the sequential workload")
	flags.Uint64Var(&cfg.Size, "seq-size", 100_000, "keys per range")
	flags.Uint64Var(&cfg.Stride, "seq-stride", 0x300000, "distance between range starts")
	flags.Int64Var(&cfg.Seed, "seed", 1234567890, "random generator seed")
	flags.BoolVar(&cfg.Debug, "debug", false, "development logging")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.Rounds < 1:
		return cfg, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	case cfg.Random < 0:
		return cfg, fmt.Errorf("random must not be negative, got %d", cfg.Random)
	case cfg.Epochs < 1:
		return cfg, fmt.Errorf("seq-epochs must be positive, got %d", cfg.Epochs)
	case cfg.Size > cfg.Stride:
		return cfg, fmt.Errorf("seq-size %d overlaps ranges %#x apart", cfg.Size, cfg.Stride)
	}

	return cfg, nil
}
