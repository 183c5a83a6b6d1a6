package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/statnerf/internal/config"
	"github.com/vovakirdan/statnerf/internal/core"
	"github.com/vovakirdan/statnerf/internal/nerf"
	"github.com/vovakirdan/statnerf/internal/storage"
)

// app holds everything a subcommand needs, built once from flags and config.
type app struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	live    *config.Live
	logger  *log.Logger
	rng     nerf.Source
	nerfer  *nerf.Nerfer
}

// newApp loads config, applies flag overrides and wires the nerfer.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagMaxScore >= 0 {
		cfg.Nerf.MaxStatScore = flagMaxScore
	}
	if flagSeed != 0 {
		cfg.Nerf.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamp,
		Prefix:          cfg.Log.Prefix,
		Level:           cfg.LogLevel(),
	})

	seed := cfg.Nerf.Seed
	if seed == 0 {
		seed, err = nerf.NewSeed()
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("resolved seed", "seed", seed)

	live := config.NewLive(cfg, flagConfig)
	rng := nerf.NewSource(seed)

	// One reporter per process keeps the unreachable diagnostic to a single line.
	reporter := nerf.NewReporter(nerf.LogSink{Logger: logger})

	rt := core.DefaultConfig()
	rt.MaxStatScore = cfg.Nerf.MaxStatScore
	rt.Seed = seed
	rt.DBPath = cfg.Storage.DBPath

	return &app{
		cfg:     cfg,
		runtime: rt,
		live:    live,
		logger:  logger,
		rng:     rng,
		nerfer:  nerf.New(live, rng, reporter),
	}, nil
}

// mustApp is newApp for commands that cannot continue without it.
func mustApp() *app {
	a, err := newApp()
	if err != nil {
		fail("%v", err)
	}
	return a
}

// openStore opens the crop bank named by the config.
func (a *app) openStore() (*storage.Store, error) {
	store, err := storage.Open(a.runtime.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening crop bank: %w", err)
	}
	return store, nil
}

// withStore opens the crop bank, runs fn and closes the bank before
// returning fn's error.
func (a *app) withStore(fn func(store *storage.Store) error) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// parseStats parses three integer arguments into stats.
func parseStats(args []string) (*core.PlantStats, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("expected 3 stats, got %d", len(args))
	}

	values := make([]int, 3)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid stat %q: %w", arg, err)
		}
		values[i] = v
	}
	return core.NewPlantStats(values[0], values[1], values[2]), nil
}
