package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	// Save some completions
	if _, err := store.SaveCompletion("corridor", 4, 12); err != nil {
		t.Fatalf("SaveCompletion() failed: %v", err)
	}
	if _, err := store.SaveCompletion("corridor", 2, 8); err != nil {
		t.Fatalf("SaveCompletion() failed: %v", err)
	}
	if _, err := store.SaveCompletion("corridor", 6, 30); err != nil {
		t.Fatalf("SaveCompletion() failed: %v", err)
	}

	// Different level
	if _, err := store.SaveCompletion("shaft", 1, 5); err != nil {
		t.Fatalf("SaveCompletion() failed: %v", err)
	}

	entries, err := store.AllCompletions("corridor")
	if err != nil {
		t.Fatalf("AllCompletions() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 completions, got %d", len(entries))
	}

	// Best move count first
	if entries[0].Moves != 2 {
		t.Errorf("Expected best completion first (2 moves), got %d", entries[0].Moves)
	}

	shaftEntries, err := store.AllCompletions("shaft")
	if err != nil {
		t.Fatalf("AllCompletions() failed: %v", err)
	}
	if len(shaftEntries) != 1 {
		t.Errorf("Expected 1 shaft completion, got %d", len(shaftEntries))
	}
}

func TestStoreBestMoves(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No completions yet
	_, ok, err := store.BestMoves("corridor")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best for an uncompleted level")
	}

	store.SaveCompletion("corridor", 5, 20)
	store.SaveCompletion("corridor", 2, 9)
	store.SaveCompletion("corridor", 3, 11)

	best, ok, err := store.BestMoves("corridor")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if !ok || best != 2 {
		t.Errorf("Expected best of 2 moves, got %d (ok=%v)", best, ok)
	}
}

func TestStoreHistoryLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 completions
	for i := 0; i < 5; i++ {
		store.SaveCompletion("corridor", i+2, (i+1)*10)
	}

	// Request only 3
	entries, err := store.History("corridor", 3)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(entries))
	}
}

func TestStoreCompletedLevels(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveCompletion("shaft", 1, 5)
	store.SaveCompletion("corridor", 2, 8)
	store.SaveCompletion("corridor", 3, 9)

	ids, err := store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}

	if len(ids) != 2 || ids[0] != "corridor" || ids[1] != "shaft" {
		t.Errorf("CompletedLevels() = %v, want [corridor shaft]", ids)
	}
}

func TestStoreClearCompletions(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveCompletion("corridor", 2, 8)
	store.SaveCompletion("corridor", 3, 12)
	store.SaveCompletion("shaft", 1, 5)

	// Clear only corridor completions
	if err := store.ClearCompletions("corridor"); err != nil {
		t.Fatalf("ClearCompletions() failed: %v", err)
	}

	// Corridor should be empty
	entries, _ := store.AllCompletions("corridor")
	if len(entries) != 0 {
		t.Errorf("Expected 0 corridor completions after clear, got %d", len(entries))
	}

	// Shaft should still have completions
	shaftEntries, _ := store.AllCompletions("shaft")
	if len(shaftEntries) != 1 {
		t.Errorf("Shaft completions should not be affected by clearing corridor")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
