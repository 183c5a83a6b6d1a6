package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/statnerf/internal/farm"
	"github.com/vovakirdan/statnerf/internal/storage"
)

var flagDryRun bool

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Nerf every crop in the bank",
	Long: `Nerf every banked crop whose score is above the bound and record the
change in its history. Crops already within the bound are left alone.

Examples:
  statnerf batch
  statnerf batch --max-score 100
  statnerf batch --dry-run`,
	Run: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Show crops over the bound without nerfing them")
}

func runBatch(_ *cobra.Command, _ []string) {
	a := mustApp()
	err := a.withStore(func(store *storage.Store) error {
		f := farm.New(store, a.nerfer, a.logger)
		if flagDryRun {
			return previewBatch(a, f)
		}
		return nerfBatch(a, f)
	})
	if err != nil {
		fail("%v", err)
	}
}

func previewBatch(a *app, f *farm.Farm) error {
	previews, total, err := f.Preview()
	if err != nil {
		return err
	}

	for _, p := range previews {
		status := fmt.Sprintf("slack %d", p.Slack)
		if !p.Reachable {
			status += ", unreachable"
		}
		fmt.Printf("  %-20s  %s  score %d  %s\n", p.Crop.Name, &p.Crop.Stats, p.Score, status)
	}
	fmt.Printf("%d of %d crops over bound %d\n", len(previews), total, a.nerfer.MaxScore())
	return nil
}

func nerfBatch(a *app, f *farm.Farm) error {
	summary, outcomes, err := f.NerfAll()
	if err != nil {
		return err
	}

	for _, out := range outcomes {
		if !out.Result.Changed() && out.Result.Reached {
			continue
		}
		status := "ok"
		if !out.Result.Reached {
			status = "unreachable"
		}
		fmt.Printf("  %-20s  %s -> %s  %s\n", out.Crop.Name, &out.Result.Before, &out.Result.After, status)
	}

	fmt.Println()
	fmt.Printf("Checked %d, nerfed %d, unreachable %d (bound %d, seed %d)\n",
		summary.Checked, summary.Nerfed, summary.Unreachable, a.nerfer.MaxScore(), a.runtime.Seed)
	return nil
}
