package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("runner", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runner", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runner", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("patrol", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for runner
	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for patrol
	patrolScores, err := store.TopScores("patrol", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(patrolScores) != 1 {
		t.Errorf("Expected 1 patrol score, got %d", len(patrolScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("runner", 100)
	store.SaveScore("runner", 300)
	store.SaveScore("runner", 200)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("runner", 100)
	store.SaveScore("runner", 200)
	store.SaveScore("patrol", 300)

	// Clear only runner scores
	err = store.ClearScores("runner")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// runner should be empty
	runnerScores, _ := store.TopScores("runner", 10)
	if len(runnerScores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runnerScores))
	}

	// Patrol should still have scores
	patrolScores, _ := store.TopScores("patrol", 10)
	if len(patrolScores) != 1 {
		t.Errorf("Patrol scores should not be affected by clearing runner")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:   "runner",
		Score:    640,
		Rescues:  8,
		Target:   8,
		Won:      true,
		Seed:     42,
		Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Run ID %q is not a UUID: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if run.GameID != "runner" || run.Score != 640 || run.Rescues != 8 || !run.Won || run.Seed != 42 {
		t.Errorf("Unexpected run: %+v", run)
	}
	if run.Duration != 95*time.Second {
		t.Errorf("Expected duration 95s, got %v", run.Duration)
	}
}

func TestStoreSaveRunKeepsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", GameID: "patrol"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("Expected ID to be kept, got %q", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", GameID: "patrol"}); err == nil {
		t.Error("Expected duplicate run ID to fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for missing run, got %+v", run)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		store.SaveRun(Run{GameID: "runner", Score: i * 100})
	}
	store.SaveRun(Run{GameID: "patrol", Score: 10})

	runs, err := store.RecentRuns("runner", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 300 || runs[1].Score != 200 {
		t.Errorf("Runs not newest first: %v", runs)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 runs across games, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", 100)
	store.SaveScore("runner", 300)
	store.SaveRun(Run{GameID: "runner", Score: 100, Rescues: 2})
	store.SaveRun(Run{GameID: "runner", Score: 300, Rescues: 8, Won: true})

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.TotalRescues != 10 {
		t.Errorf("Unexpected run stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("patrol")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", 100)
	store.SaveRun(Run{GameID: "runner", Score: 100})
	store.SaveScore("patrol", 50)
	store.SaveScore("patrol", 70)
	store.SaveRun(Run{GameID: "patrol", Score: 50})
	store.SaveRun(Run{GameID: "patrol", Score: 70, Won: true})

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(all))
	}
	if all["patrol"].GamesCount != 2 || all["patrol"].HighScore != 70 {
		t.Errorf("Unexpected patrol stats: %+v", all["patrol"])
	}
}

func TestStoreStatsCountScorelessRuns(t *testing.T) {
	store := openTestStore(t)

	// A runner that crashes straight away leaves a run but no score row.
	store.SaveRun(Run{GameID: "runner", Target: 8})

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 1 || stats.Losses != 1 || stats.HighScore != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should come from the run")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["runner"]; !ok {
		t.Errorf("Expected runner in all stats, got %v", all)
	}
}

func TestStoreClearScoresRemovesRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "runner"})
	store.SaveRun(Run{GameID: "patrol"})

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].GameID != "patrol" {
		t.Errorf("Expected only the patrol run to remain, got %v", runs)
	}
}
