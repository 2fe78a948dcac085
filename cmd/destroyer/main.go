// destroyer is a terminal arcade shooter built on a deterministic
// simulation core.
//
// Usage:
//
//	destroyer list             - List available games
//	destroyer play             - Play interactively
//	destroyer run              - Run the simulation headless and print frames
//	destroyer config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Path to a custom destroyer.yaml
//	--compat <preset>    - Compat preset: corrected, legacy
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/destroyer/internal/games/destroyer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagCompat   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "destroyer",
	Short: "Destroyer - shoot your way across a wrapping board",
	Long: `Destroyer is a terminal arcade shooter. Players are triangles that
wrap around the board edges and fire projectiles that vanish when they
leave it.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  run      - Run headless and print ASCII frames
  config   - Print the effective configuration

Examples:
  destroyer play
  destroyer play --seed 42 --compat legacy
  destroyer run --ticks 120 --shoot-every 30
  destroyer config --config ./my-destroyer.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom destroyer YAML")
	rootCmd.PersistentFlags().StringVar(&flagCompat, "compat", "", "Compat preset: corrected, legacy")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
