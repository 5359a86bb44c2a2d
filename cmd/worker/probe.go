package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/config"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/probe"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/logger"
)

// RunProbe checks the live MusicJam deployment once and prints the result
// as JSON. The cache is not touched, so no Redis connection is needed.
func RunProbe() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	prober := probe.New(cfg.MusicJam.LiveURL, cfg.MusicJam.ProbeTimeout, nil, 0, logger.Nop())
	result := prober.Check(context.Background())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}
