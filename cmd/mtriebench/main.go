// Command mtriebench times random and sequential workloads on a mtrie.Trie and
// verifies the trie along the way.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	log.Debug("starting", zap.Any("config", cfg))

	start := time.Now()

	if err := run(cfg, log); err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}

	log.Info("done", zap.Duration("elapsed", time.Since(start)))
}
