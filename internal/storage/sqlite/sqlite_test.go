package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/internal/storage/storagetest"
)

func newTestBackend(t *testing.T) (*Backend, string) {
	t.Helper()
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "futmanager-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	b, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}
	return b, dbPath
}

func TestBackend(t *testing.T) {
	b, _ := newTestBackend(t)
	defer b.Close()

	storagetest.RunBackendTests(t, b)
}

func TestBackend_PersistsAcrossReopen(t *testing.T) {
	b, dbPath := newTestBackend(t)
	ctx := context.Background()

	store := storage.New(b)
	history := []models.GameHistory{{
		ID:         "day1",
		Timestamp:  1710000000000,
		DateString: "09/03/2024",
		Teams: []models.Team{
			{ID: 1, Name: "Team 1", Players: []models.Player{{ID: "p1", Name: "Ana", Stars: 4}}, AverageStars: 4, TotalStars: 4},
		},
		Stats: models.GameStats{TotalPlayers: 1, AverageBalance: 4},
	}}
	if err := store.SaveHistory(ctx, history); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen backend: %v", err)
	}
	store = storage.New(reopened)
	defer store.Close()

	loaded, err := store.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "day1" || loaded[0].Teams[0].Players[0].Name != "Ana" {
		t.Errorf("Unexpected history after reopen: %+v", loaded)
	}
}
