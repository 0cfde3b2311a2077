package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entry := RunEntry{
		RunID:     "run-1",
		Tiles:     10,
		Start:     4,
		Seed:      77,
		Outcome:   core.Victory,
		Position:  6,
		Floor:     []int{2, 6, 9},
		Jumps:     12,
		Fallbacks: 3,
		Drops:     7,
		Duration:  1500 * time.Millisecond,
	}
	if _, err := store.SaveRun(entry); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID("run-1")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	if got.Tiles != 10 || got.Start != 4 || got.Seed != 77 || got.Position != 6 {
		t.Errorf("Unexpected run fields: %+v", got)
	}
	if got.Outcome != core.Victory {
		t.Errorf("Expected outcome victory, got %v", got.Outcome)
	}
	if len(got.Floor) != 3 || got.Floor[0] != 2 || got.Floor[1] != 6 || got.Floor[2] != 9 {
		t.Errorf("Floor not restored, got %v", got.Floor)
	}
	if got.Jumps != 12 || got.Fallbacks != 3 || got.Drops != 7 {
		t.Errorf("Counters not restored: %+v", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", got.Duration)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for unknown run, got %+v", got)
	}
}

func TestStoreRecentRunsLimitAndOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(RunEntry{
			RunID:   "run-" + string(rune('a'+i)),
			Tiles:   10 + i,
			Outcome: core.Defeat,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].RunID != "run-e" || runs[1].RunID != "run-d" || runs[2].RunID != "run-c" {
		t.Errorf("Runs not in expected order: %s %s %s", runs[0].RunID, runs[1].RunID, runs[2].RunID)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{RunID: "dup", Outcome: core.Victory}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(RunEntry{RunID: "dup", Outcome: core.Victory}); err == nil {
		t.Error("Expected an error saving a duplicate run ID")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunEntry{RunID: "a", Outcome: core.Victory, Jumps: 10, Drops: 7, Duration: time.Second})
	store.SaveRun(RunEntry{RunID: "b", Outcome: core.Defeat, Jumps: 2, Drops: 3, Duration: 3 * time.Second})
	store.SaveRun(RunEntry{RunID: "c", Outcome: core.Victory, Jumps: 6, Drops: 5, Duration: 2 * time.Second})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Victories != 2 || stats.Defeats != 1 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.AvgJumps != 6 || stats.AvgDrops != 5 {
		t.Errorf("Unexpected averages: jumps %v drops %v", stats.AvgJumps, stats.AvgDrops)
	}
	if stats.AvgDuration != 2*time.Second {
		t.Errorf("Expected average duration 2s, got %v", stats.AvgDuration)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{RunID: "a", Outcome: core.Victory})
	store.SaveRun(RunEntry{RunID: "b", Outcome: core.Defeat})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	result := platformer.Result{
		ID:       "6b1c8a0e-0000-4000-8000-000000000000",
		Tiles:    8,
		Start:    2,
		Outcome:  core.Defeat,
		Position: 4,
		Floor:    []int{0, 1, 2, 3, 5},
		Drops:    3,
	}
	if err := store.SaveResult(result); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	got, err := store.RunByID(result.ID)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	if got.Outcome != core.Defeat || got.Position != 4 || len(got.Floor) != 5 {
		t.Errorf("Result not stored faithfully: %+v", got)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
