// platformer simulates a character jumping across a floor of tiles while
// the tiles fall away underneath.
//
// Usage:
//
//	platformer <number_of_tiles> <character_starting_position>
//	platformer history         - Show recent runs
//	platformer show <run-id>   - Show a single run
//	platformer stats           - Show aggregated results
//	platformer renderers       - List output renderers
//
// Global flags:
//
//	--seed <value>    - Set RNG seed (0 = random based on time)
//	--db <path>       - Set database path (default: ~/.platformer/runs.db)
//	--log-level <lvl> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import renderers to register them
	_ "github.com/vovakirdan/platformer/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer <number_of_tiles> <character_starting_position>",
	Short: "Jump across a floor of falling tiles",
	Long: `Platformer places a character on a row of numbered tiles. The character
jumps two surviving tiles left or right while random tiles fall away.

The game is won when at most 3 tiles are left, and lost when the tile
under the character falls.

Examples:
  platformer 10 4
  platformer 20 0 --difficulty hard
  platformer 12 6 --render live
  platformer 8 3 --seed 42 --no-record`,
	Args: cobra.ExactArgs(2),
	RunE: runGame,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(renderersCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// fail prints an error in the CLI's format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
