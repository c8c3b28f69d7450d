package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("arena", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].LevelID != "classic" {
		t.Errorf("LevelID = %q", scores[0].LevelID)
	}

	arena, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(arena) != 1 {
		t.Errorf("Expected 1 arena score, got %d", len(arena))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", (i+1)*100)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an unplayed level, got %d", high)
	}

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 300)
	store.SaveScore("arena", 900)

	if high, _ = store.HighScore("classic"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("classic", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ = store.HighScore("arena"); high != 900 {
		t.Error("Clearing one level must not touch another")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	won := Run{RunID: uuid.New(), LevelID: "classic", Score: 650, Ticks: 420, Destroyed: 4, Outcome: "won"}
	lost := Run{RunID: uuid.New(), LevelID: "classic", Score: 50, Ticks: 90, Destroyed: 1, Outcome: "lost"}
	other := Run{LevelID: "arena", Score: 10, Ticks: 12, Outcome: "lost"} // RunID assigned on save

	for _, r := range []Run{won, lost, other} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RunByID(won.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Score != 650 || got.Ticks != 420 || got.Destroyed != 4 || got.Outcome != "won" {
		t.Errorf("RunByID() = %+v", got)
	}

	if _, err := store.RunByID(uuid.New()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID(unknown) error = %v, expected ErrRunNotFound", err)
	}

	if _, err := store.SaveRun(won); err == nil {
		t.Error("saving the same run id twice should fail")
	}

	classic, err := store.RecentRuns("classic", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(classic) != 2 || classic[0].RunID != lost.RunID {
		t.Errorf("RecentRuns(classic) = %+v, expected newest first", classic)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 || all[0].LevelID != "arena" || all[0].RunID == uuid.Nil {
		t.Errorf("RecentRuns(\"\") = %+v", all)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{LevelID: "classic", Score: 100, Outcome: "won"})
	store.SaveRun(Run{LevelID: "classic", Score: 300, Outcome: "lost"})
	store.SaveRun(Run{LevelID: "arena", Score: 40, Outcome: "lost"})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	classic := stats["classic"]
	if classic == nil {
		t.Fatal("missing classic stats")
	}
	if classic.Runs != 2 || classic.Wins != 1 || classic.HighScore != 300 || classic.AvgScore != 200 {
		t.Errorf("classic stats = %+v", classic)
	}
	if stats["arena"] == nil || stats["arena"].Wins != 0 {
		t.Errorf("arena stats = %+v", stats["arena"])
	}
}
