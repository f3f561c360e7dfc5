package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	return store
}

func TestStoreSaveAndLoadMap(t *testing.T) {
	store := openTestStore(t)

	data := []byte("name: My Maze\nlayout:\n  - \"###\"\n")
	if err := store.SaveMap("my-maze", "My Maze", data); err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}

	entry, err := store.LoadMap("my-maze")
	if err != nil {
		t.Fatalf("LoadMap() failed: %v", err)
	}
	if entry.Name != "My Maze" {
		t.Errorf("Name = %q", entry.Name)
	}
	if string(entry.Data) != string(data) {
		t.Errorf("Data round trip failed: %q", entry.Data)
	}

	// Saving again under the same id replaces the previous version.
	if err := store.SaveMap("my-maze", "My Maze v2", []byte("name: v2\n")); err != nil {
		t.Fatalf("SaveMap() overwrite failed: %v", err)
	}
	entry, err = store.LoadMap("my-maze")
	if err != nil {
		t.Fatalf("LoadMap() after overwrite failed: %v", err)
	}
	if entry.Name != "My Maze v2" {
		t.Errorf("Name after overwrite = %q", entry.Name)
	}

	maps, err := store.ListMaps()
	if err != nil {
		t.Fatalf("ListMaps() failed: %v", err)
	}
	if len(maps) != 1 {
		t.Errorf("Expected 1 map after overwrite, got %d", len(maps))
	}
}

func TestStoreLoadMissingMap(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadMap("nope"); err == nil {
		t.Error("Expected an error for a missing map")
	}
	if err := store.DeleteMap("nope"); err == nil {
		t.Error("Expected an error deleting a missing map")
	}
}

func TestStoreDeleteMap(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveMap("a", "A", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteMap("a"); err != nil {
		t.Fatalf("DeleteMap() failed: %v", err)
	}
	maps, err := store.ListMaps()
	if err != nil {
		t.Fatal(err)
	}
	if len(maps) != 0 {
		t.Errorf("Expected no maps after delete, got %d", len(maps))
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.RecordSession("corridor", uint64(100*(i+1)), i, 30); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}
	if _, err := store.RecordSession("atrium", 42, 1, 10); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions("corridor", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	// Latest first.
	if sessions[0].Steps != 500 {
		t.Errorf("Expected latest session first, got steps=%d", sessions[0].Steps)
	}
	if sessions[0].Teleports != 4 {
		t.Errorf("Teleports = %d, expected 4", sessions[0].Teleports)
	}

	all, err := store.RecentSessions("", 100)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 sessions across worlds, got %d", len(all))
	}
}
