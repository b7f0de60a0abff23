package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFileStorage_SaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "puyo-go-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// path is unexported but we are in the same package.
	testPath := filepath.Join(tmpDir, "scores.json")
	storage := &JSONFileStorage{path: testPath}

	// 1. Load on a non-existent file returns empty, not an error
	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on non-existent file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	// 2. Save
	testEntries := []ScoreHistoryEntry{
		{Score: 100, Chains: 2, Timestamp: "2023-01-01"},
		{Score: 200, Chains: 4, Timestamp: "2023-01-02"},
	}
	if err := storage.SaveAll(testEntries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("File was not created at %s", testPath)
	}

	// 3. Load returns what was saved
	loadedEntries, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loadedEntries) != len(testEntries) {
		t.Errorf("Expected %d entries, got %d", len(testEntries), len(loadedEntries))
	}
	if loadedEntries[0].Score != 100 || loadedEntries[1].Chains != 4 {
		t.Errorf("Loaded content mismatch. Got: %+v", loadedEntries)
	}
}

func TestJSONFileStorage_CorruptFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "puyo-go-test-corrupt")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "corrupt.json")
	if err := os.WriteFile(testPath, []byte("{ not valid json }"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	storage := &JSONFileStorage{path: testPath}
	if _, err := storage.LoadAll(); err == nil {
		t.Error("Expected error when loading corrupt file, got nil")
	}
}

func TestJSONFileStorage_EmptyFile(t *testing.T) {
	// Empty file is valid (EOF handled)
	tmpDir, err := os.MkdirTemp("", "puyo-go-test-empty")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "empty.json")
	if err := os.WriteFile(testPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write empty file: %v", err)
	}

	storage := &JSONFileStorage{path: testPath}
	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries from empty file, got %d", len(entries))
	}
}
