package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{GameID: "shooter", Player: "ana", Score: 100, Level: 1, Kills: 2, Duration: 8 * time.Second},
		{GameID: "shooter", Player: "bo", Score: 50, Level: 1, Kills: 0, Duration: 5 * time.Second},
		{GameID: "shooter", Player: "ana", Score: 640, Level: 3, Kills: 12, Duration: 41500 * time.Millisecond},
		{GameID: "other", Player: "ana", Score: 500},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	top := scores[0]
	if top.Score != 640 || top.Level != 3 || top.Kills != 12 || top.Player != "ana" {
		t.Errorf("top entry = %+v", top)
	}
	if top.Duration != 41500*time.Millisecond {
		t.Errorf("duration = %v, expected 41.5s", top.Duration)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 || other[0].Level != 1 {
		t.Errorf("other game entries = %+v, expected one entry with level defaulted to 1", other)
	}
}

func TestStoreRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore() with empty game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{GameID: "shooter", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("shooter", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(ScoreEntry{GameID: "shooter", Player: "ana", Score: 30})
	store.SaveScore(ScoreEntry{GameID: "shooter", Player: "bo", Score: 90})
	store.SaveScore(ScoreEntry{GameID: "shooter", Player: "ana", Score: 70})

	scores, err := store.PlayerScores("shooter", "ana", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 70 {
		t.Errorf("ana's scores = %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 300})
	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 200})

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 200})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 300})

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("shooter", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's scores should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 100, Level: 1, Kills: 3, Duration: 10 * time.Second})
	store.SaveScore(ScoreEntry{GameID: "shooter", Score: 700, Level: 3, Kills: 20, Duration: 50 * time.Second})

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 700 || stats.BestLevel != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 400 || stats.TotalKills != 23 || stats.PlayTime != time.Minute {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.SaveScore(ScoreEntry{GameID: "shooter", Score: i}); err != nil {
				t.Errorf("SaveScore() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	scores, err := store.TopScores("shooter", 100)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 8 {
		t.Errorf("Expected 8 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
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
