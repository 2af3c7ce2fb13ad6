package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/game"
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

func result(mode config.Mode, score int) game.Result {
	return game.Result{
		Player: "tester",
		Score:  score,
		Steps:  score * 10,
		Level:  "Empty",
		Mode:   mode,
		Speed:  5,
		Ended:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveResult(result(config.ModeClassic, score)); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	if _, err := store.SaveResult(result(config.ModeGun, 500)); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores(config.ModeClassic, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	e := scores[0]
	if e.Player != "tester" || e.Level != "Empty" || e.Mode != config.ModeClassic || e.Steps != 2000 || e.Speed != 5 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.RunID == "" {
		t.Error("RunID should be set")
	}
	if !e.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", e.CreatedAt)
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("Expected 4 scores led by 500, got %v", all)
	}
}

func TestStoreRunIDsUnique(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveResult(result(config.ModeGun, 1))
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	b, err := store.SaveResult(result(config.ModeGun, 1))
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if a == b {
		t.Errorf("run IDs should differ, both %q", a)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveResult(result(config.ModeSpeed, (i+1)*100))
	}

	scores, err := store.TopScores(config.ModeSpeed, 3)
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

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(config.ModeClassic)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.ReportScore(result(config.ModeClassic, score))
	}

	high, err = store.HighScore(config.ModeClassic)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result(config.ModeClassic, 100))
	store.SaveResult(result(config.ModeClassic, 200))
	store.SaveResult(result(config.ModeGun, 300))

	if err := store.ClearScores(config.ModeClassic); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores(config.ModeClassic, 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	gun, _ := store.TopScores(config.ModeGun, 10)
	if len(gun) != 1 {
		t.Error("Gun scores should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result(config.ModeGun, 2))
	store.SaveResult(result(config.ModeGun, 4))
	store.SaveResult(result(config.ModeSpeed, 7))

	st, err := store.Stats(config.ModeGun)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 4 || st.AvgScore != 3 || st.TotalSteps != 60 {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats(config.ModeClassic)
	if err != nil {
		t.Fatalf("Stats() on empty mode failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all[config.ModeSpeed].HighScore != 7 {
		t.Errorf("unexpected AllStats: %v", all)
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
