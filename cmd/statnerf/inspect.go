package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/statnerf/internal/core"
	"github.com/vovakirdan/statnerf/internal/farm"
	"github.com/vovakirdan/statnerf/internal/platform/tui"
	"github.com/vovakirdan/statnerf/internal/storage"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [gain growth strength]",
	Short: "Interactive stat inspector",
	Long: `Open a terminal view of a set of stats and the crop bank.

Controls:
  Up/Down    - Select stat
  Left/Right - Lower/raise the selected stat
  N/Space    - Nerf the stats
  R          - Reroll random stats
  Tab        - Switch to the crop bank
  Enter      - Load the selected crop (bank)
  S          - Nerf the selected crop in place (bank)
  Ctrl+R     - Reload the config file
  Q/Ctrl+C   - Quit

Examples:
  statnerf inspect
  statnerf inspect 10 10 10 --max-score 120`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected 0 or 3 stats, got %d", len(args))
		}
		return nil
	},
	Run: runInspect,
}

func runInspect(_ *cobra.Command, args []string) {
	start := core.NewPlantStats(5, 5, 5)
	if len(args) == 3 {
		var err error
		if start, err = parseStats(args); err != nil {
			fail("%v", err)
		}
	}

	a := mustApp()

	// Get terminal size
	width, height := a.runtime.ScreenW, a.runtime.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := tui.InspectorConfig{
		Nerfer: a.nerfer,
		RNG:    a.rng,
		Live:   a.live,
		Start:  *start,
		Width:  width,
		Height: height,
	}

	store, err := storage.Open(a.runtime.DBPath)
	if err != nil {
		a.logger.Warn("could not open crop bank", "error", err)
		// Continue without storage
	} else {
		cfg.Store = store
		// Farm logging would draw over the alt screen.
		cfg.Farm = farm.New(store, a.nerfer, nil)
	}

	final, err := tui.RunInspector(cfg)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(final.String())
}
