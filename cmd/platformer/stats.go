package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated results",
	Long:  `Shows win rate and averages over every recorded run.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Platformer statistics")
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  Runs:         %d\n", stats.Runs)
	fmt.Printf("  Victories:    %d\n", stats.Victories)
	fmt.Printf("  Defeats:      %d\n", stats.Defeats)
	fmt.Printf("  Win rate:     %.1f%%\n", stats.WinRate()*100)
	fmt.Printf("  Avg jumps:    %.1f\n", stats.AvgJumps)
	fmt.Printf("  Avg drops:    %.1f\n", stats.AvgDrops)
	fmt.Printf("  Avg duration: %s\n", stats.AvgDuration.Round(time.Millisecond))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
