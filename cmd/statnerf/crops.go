package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/statnerf/internal/nerf"
	"github.com/vovakirdan/statnerf/internal/storage"
)

var cropsCmd = &cobra.Command{
	Use:   "crops",
	Short: "Manage the crop bank",
	Long: `Add, list and remove crops kept in the local crop bank.

Examples:
  statnerf crops add wheat 8 9 10
  statnerf crops list
  statnerf crops rm 3f1c...`,
}

var cropsAddCmd = &cobra.Command{
	Use:   "add <name> <gain> <growth> <strength>",
	Short: "Add a crop to the bank",
	Args:  cobra.ExactArgs(4),
	Run:   runCropsAdd,
}

var cropsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List banked crops",
	Run:   runCropsList,
}

var cropsRmCmd = &cobra.Command{
	Use:   "rm <crop-id>",
	Short: "Remove a crop and its history",
	Args:  cobra.ExactArgs(1),
	Run:   runCropsRm,
}

func init() {
	cropsCmd.AddCommand(cropsAddCmd)
	cropsCmd.AddCommand(cropsListCmd)
	cropsCmd.AddCommand(cropsRmCmd)
}

func runCropsAdd(_ *cobra.Command, args []string) {
	stats, err := parseStats(args[1:])
	if err != nil {
		fail("%v", err)
	}

	a := mustApp()
	err = a.withStore(func(store *storage.Store) error {
		id, err := store.AddCrop(args[0], *stats)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s %s (score %d)\n", args[0], stats, nerf.Score(stats))
		fmt.Println(id)
		return nil
	})
	if err != nil {
		fail("%v", err)
	}
}

func runCropsList(_ *cobra.Command, _ []string) {
	a := mustApp()
	if err := a.withStore(listCrops); err != nil {
		fail("%v", err)
	}
	fmt.Println()
	fmt.Printf("Bound: %d\n", a.nerfer.MaxScore())
}

func listCrops(store *storage.Store) error {
	crops, err := store.ListCrops()
	if err != nil {
		return err
	}

	if len(crops) == 0 {
		fmt.Println("No crops banked yet.")
		fmt.Println()
		fmt.Println("Run 'statnerf crops add <name> <gain> <growth> <strength>' to add one.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range crops {
		if len(c.Name) > maxNameLen {
			maxNameLen = len(c.Name)
		}
	}

	fmt.Printf("  %-36s  %-*s  %4s  %6s  %8s  %5s\n", "ID", maxNameLen, "Name", "Gain", "Growth", "Strength", "Score")
	fmt.Printf("  %-36s  %-*s  %4s  %6s  %8s  %5s\n", "--", maxNameLen, "----", "----", "------", "--------", "-----")
	for _, c := range crops {
		fmt.Printf("  %-36s  %-*s  %4d  %6d  %8d  %5d\n",
			c.ID, maxNameLen, c.Name,
			c.Stats.GainValue, c.Stats.GrowthValue, c.Stats.StrengthValue,
			nerf.Score(&c.Stats))
	}
	return nil
}

func runCropsRm(_ *cobra.Command, args []string) {
	a := mustApp()
	err := a.withStore(func(store *storage.Store) error {
		return store.DeleteCrop(args[0])
	})
	if errors.Is(err, storage.ErrCropNotFound) {
		fmt.Fprintf(os.Stderr, "Error: unknown crop %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'statnerf crops list' to see banked crops.")
		os.Exit(1)
	}
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Removed %s\n", args[0])
}
