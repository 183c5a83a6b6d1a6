// statnerf keeps crop stats under a configured score bound.
//
// Usage:
//
//	statnerf nerf <gain> <growth> <strength>   - Nerf one set of stats
//	statnerf crops add|list|rm                 - Manage the crop bank
//	statnerf batch                             - Nerf every banked crop
//	statnerf history <crop-id>                 - Show a crop's nerf history
//	statnerf inspect                           - Interactive stat inspector
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.statnerf, ./configs, embedded)
//	--seed <value>      - RNG seed for reproducible nerfs
//	--max-score <n>     - Override the configured stat score bound
//	--db <path>         - Crop bank path (default: ~/.statnerf/crops.db)
//	--log-level <level> - debug, info, warn, error, fatal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagMaxScore int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "statnerf",
	Short: "statnerf - Keep crop stats under a score bound",
	Long: `statnerf lowers crop stats (gain, growth, strength) one point at a time,
picking a random stat that is still above 1, until gain² + growth² + strength²
fits under the configured bound.

Available commands:
  nerf     - Nerf a single set of stats
  crops    - Manage the crop bank
  batch    - Nerf every crop in the bank
  history  - Show a crop's nerf history
  inspect  - Interactive stat inspector

Examples:
  statnerf nerf 10 10 10
  statnerf nerf 10 10 10 --max-score 50 --seed 42
  statnerf crops add wheat 8 9 10
  statnerf batch
  statnerf inspect`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then random)")
	rootCmd.PersistentFlags().IntVar(&flagMaxScore, "max-score", -1, "Stat score bound (-1 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to crop bank database (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (empty = use config)")

	// Add subcommands
	rootCmd.AddCommand(nerfCmd)
	rootCmd.AddCommand(cropsCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(inspectCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
