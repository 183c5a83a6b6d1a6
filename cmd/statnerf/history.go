package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/statnerf/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history <crop-id>",
	Short: "Show a crop's nerf history",
	Long: `Display the most recent nerfs applied to a banked crop.

Examples:
  statnerf history 3f1c...
  statnerf history 3f1c... --limit 50`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of entries to show")
}

func runHistory(_ *cobra.Command, args []string) {
	a := mustApp()
	err := a.withStore(func(store *storage.Store) error {
		return showHistory(store, args[0])
	})
	if errors.Is(err, storage.ErrCropNotFound) {
		fail("unknown crop %q", args[0])
	}
	if err != nil {
		fail("%v", err)
	}
}

func showHistory(store *storage.Store, id string) error {
	crop, err := store.Crop(id)
	if err != nil {
		return err
	}

	entries, err := store.NerfHistory(crop.ID, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Nerf history - %s %s\n", crop.Name, &crop.Stats)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No nerfs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-36s  %-36s  %s\n", "Date", "Before", "After", "Bound")
	fmt.Printf("  %-16s  %-36s  %-36s  %s\n", "----", "------", "-----", "-----")
	for _, e := range entries {
		bound := fmt.Sprintf("%d", e.MaxScore)
		if !e.Reached {
			bound += " (unreachable)"
		}
		fmt.Printf("  %-16s  %-36s  %-36s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%s = %d", &e.Before, e.ScoreBefore),
			fmt.Sprintf("%s = %d", &e.After, e.ScoreAfter),
			bound)
	}
	return nil
}
