package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/platformer/internal/platform/tui"
	"github.com/vovakirdan/platformer/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display the most recent recorded runs, newest first.

Examples:
  platformer history
  platformer history --limit 50
  platformer history --interactive
  platformer history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer <tiles> <start>' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-8s  %5s  %5s  %5s  %5s  %s\n", "Run", "Result", "Tiles", "Start", "Jumps", "Drops", "Date")
	fmt.Printf("  %-8s  %-8s  %5s  %5s  %5s  %5s  %s\n", "---", "------", "-----", "-----", "-----", "-----", "----")

	for _, row := range tui.HistoryRows(runs) {
		// Columns: run, result, tiles, start, end, jumps, drops, time, date
		fmt.Printf("  %-8s  %-8s  %5s  %5s  %5s  %5s  %s\n", row[0], row[1], row[2], row[3], row[5], row[6], row[8])
	}

	fmt.Println()
	fmt.Println("Run 'platformer show <run>' for details.")
}
