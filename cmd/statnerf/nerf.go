package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/statnerf/internal/nerf"
	"github.com/vovakirdan/statnerf/internal/platform/tui"
)

var nerfCmd = &cobra.Command{
	Use:   "nerf <gain> <growth> <strength>",
	Short: "Nerf a single set of stats",
	Long: `Lower the given stats until their score fits under the bound.

The score is gain² + growth² + strength². Each step lowers one stat by 1,
chosen at random among the stats still above 1. If every stat reaches 1 and
the score is still too high, the stats are left at 1 and a diagnostic is logged.

Examples:
  statnerf nerf 10 10 10
  statnerf nerf 3 3 3 --max-score 10
  statnerf nerf 8 9 10 --seed 42`,
	Args: cobra.ExactArgs(3),
	Run:  runNerf,
}

func runNerf(_ *cobra.Command, args []string) {
	stats, err := parseStats(args)
	if err != nil {
		fail("%v", err)
	}

	a := mustApp()
	res := a.nerfer.Nerf(stats)

	fmt.Printf("  %-8s  %6s  %6s\n", "Stat", "Before", "After")
	fmt.Printf("  %-8s  %6s  %6s\n", "----", "------", "-----")
	for _, f := range nerf.Fields() {
		fmt.Printf("  %-8s  %6d  %6d\n", f.Name(), f.Get(&res.Before), f.Get(&res.After))
	}
	fmt.Println()
	fmt.Println(tui.RenderScoreLine(res.ScoreAfter, res.MaxScore))
	fmt.Printf("was %d, %s\n", res.ScoreBefore, tui.RenderSteps(res.Steps))
	fmt.Printf("seed %d\n", a.runtime.Seed)
}
