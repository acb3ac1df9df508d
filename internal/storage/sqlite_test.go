package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 5, 20} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different variant
	if _, err := store.SaveScore("snake_walls", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "snake" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	walls, err := store.TopScores("snake_walls", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(walls) != 1 {
		t.Errorf("Expected 1 snake_walls score, got %d", len(walls))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("snake", i+1)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 5},  // Default limit of 10
		{-1, 5}, // Default limit of 10
	}
	for _, tc := range tests {
		scores, err := store.TopScores("snake", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) returned %d rows, expected %d", tc.limit, len(scores), tc.want)
		}
	}

	scores, _ := store.TopScores("snake", 3)
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("snake", 7)
	second, _ := store.SaveScore("snake", 7)

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("Ties should list older runs first, got IDs %d, %d", scores[0].ID, scores[1].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("snake", 4)
	store.SaveScore("snake", 12)
	store.SaveScore("snake", 8)

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score of 12, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 1)
	store.SaveScore("snake", 2)
	store.SaveScore("snake_wrap", 3)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("snake", 10); len(scores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("snake_wrap", 10); len(scores) != 1 {
		t.Errorf("snake_wrap scores should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("snake", i)
	}

	scores, err := store.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty variant: %+v", empty)
	}

	store.SaveScore("snake", 2)
	store.SaveScore("snake", 4)
	store.SaveScore("snake_walls", 9)

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 4 {
		t.Errorf("HighScore = %d, expected 4", stats.HighScore)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, expected 3", stats.AvgScore)
	}
	if stats.TotalScore != 6 {
		t.Errorf("TotalScore = %d, expected 6", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(all))
	}
	if all["snake_walls"].HighScore != 9 {
		t.Errorf("snake_walls HighScore = %d, expected 9", all["snake_walls"].HighScore)
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".snake", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
