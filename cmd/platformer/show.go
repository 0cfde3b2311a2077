package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/storage"
)

// prefixScanLimit bounds how many runs a short id is matched against.
const prefixScanLimit = 1000

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a recorded run",
	Long: `Display the details of one recorded run. The id may be the full run id
or the short prefix printed by 'platformer history'.`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	run, err := findRun(store, args[0])
	if err != nil {
		fail("%v", err)
	}
	if run == nil {
		fail("no run %q", args[0])
	}

	fmt.Printf("Run %s\n", run.RunID)
	fmt.Println()
	fmt.Printf("  Result:     %s\n", run.Outcome)
	fmt.Printf("  Floor:      %d tiles, started on %d\n", run.Tiles, run.Start)
	fmt.Printf("  Ended on:   %d\n", run.Position)
	fmt.Printf("  Tiles left: %v\n", run.Floor)
	fmt.Printf("  Jumps:      %d (%d redirected)\n", run.Jumps, run.Fallbacks)
	fmt.Printf("  Drops:      %d\n", run.Drops)
	fmt.Printf("  Duration:   %s\n", run.Duration.Round(time.Millisecond))
	fmt.Printf("  Seed:       %d\n", run.Seed)
	fmt.Printf("  Played:     %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
}

// findRun looks up a run by full id, falling back to a unique prefix match
// among recent runs.
func findRun(store *storage.Store, id string) (*storage.RunEntry, error) {
	run, err := store.RunByID(id)
	if err != nil || run != nil {
		return run, err
	}

	runs, err := store.RecentRuns(prefixScanLimit)
	if err != nil {
		return nil, err
	}
	var match *storage.RunEntry
	for i := range runs {
		if !strings.HasPrefix(runs[i].RunID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("run id %q is ambiguous", id)
		}
		match = &runs[i]
	}
	return match, nil
}
