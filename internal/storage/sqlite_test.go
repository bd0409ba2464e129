package storage

import (
	"os"
	"path/filepath"
	"strings"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTop(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{12, 3, 40, 7} {
		if _, err := store.SaveGame(GameRecord{Skill: "normal", Score: score}); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(games) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(games))
	}
	for i, want := range []int{40, 12, 7} {
		if games[i].Score != want {
			t.Errorf("Expected games[%d].Score = %d, got %d", i, want, games[i].Score)
		}
	}
	if games[0].Player != "local" {
		t.Errorf("Expected default player 'local', got %q", games[0].Player)
	}
}

func TestStoreRecordFields(t *testing.T) {
	store := openTestStore(t)
	when := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	id, err := store.SaveGame(GameRecord{
		Player:    "alice",
		Skill:     "expert",
		Score:     31,
		Medal:     "Gold",
		Bounces:   31,
		Pickups:   4,
		Duration:  95 * time.Second,
		CreatedAt: when,
	})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected record, got nil")
	}
	if got.Player != "alice" || got.Skill != "expert" || got.Medal != "Gold" {
		t.Errorf("Unexpected record: %+v", got)
	}
	if got.Pickups != 4 || got.Duration != 95*time.Second {
		t.Errorf("Unexpected stats: pickups=%d duration=%v", got.Pickups, got.Duration)
	}
	if !got.CreatedAt.Equal(when) {
		t.Errorf("Expected created_at %v, got %v", when, got.CreatedAt)
	}

	missing, err := store.GameByID(id + 100)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for missing record")
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.SaveGame(GameRecord{
			Player:    []string{"a", "b"}[i%2],
			Skill:     "normal",
			Score:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	recent, err := store.RecentGames(2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 4 || recent[1].Score != 3 {
		t.Errorf("Expected newest first [4 3], got %+v", recent)
	}

	mine, err := store.PlayerGames("b", 10)
	if err != nil {
		t.Fatalf("PlayerGames() failed: %v", err)
	}
	if len(mine) != 2 || mine[0].Score != 3 || mine[1].Score != 1 {
		t.Errorf("Expected player b games [3 1], got %+v", mine)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	games := []GameRecord{
		{Skill: "normal", Score: 10, Bounces: 10, Duration: time.Minute},
		{Skill: "normal", Score: 20, Bounces: 20, Duration: 2 * time.Minute},
		{Skill: "expert", Score: 6, Bounces: 6, Duration: 30 * time.Second},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 20 || stats.AvgScore != 12 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.TotalBounces != 36 || stats.TotalPlay != 210*time.Second {
		t.Errorf("Unexpected sums: bounces=%d play=%v", stats.TotalBounces, stats.TotalPlay)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 20 {
		t.Errorf("Expected high score 20, got %d", high)
	}

	bySkill, err := store.SkillStats()
	if err != nil {
		t.Fatalf("SkillStats() failed: %v", err)
	}
	if len(bySkill) != 2 {
		t.Fatalf("Expected 2 skills, got %d", len(bySkill))
	}
	if n := bySkill["normal"]; n == nil || n.GamesCount != 2 || n.HighScore != 20 || n.AvgScore != 15 {
		t.Errorf("Unexpected normal stats: %+v", n)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveGame(GameRecord{Skill: "normal", Score: 5}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	games, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(games))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.bounce-test/history.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".bounce-test", "history.db")); err != nil {
		t.Errorf("Expected database under home: %v", err)
	}
}

func TestStoreOpenBadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(filepath.Join(blocker, "sub", "x.db"))
	if err == nil {
		t.Fatal("Expected error for path under a regular file")
	}
	if !strings.HasPrefix(err.Error(), "storage:") {
		t.Errorf("Expected prefixed error, got %v", err)
	}
}
