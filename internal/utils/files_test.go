package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindDefinitionFiles(t *testing.T) {
	tmpDir := t.TempDir()

	// Create nested structure with mixed extensions
	sub := filepath.Join(tmpDir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	for _, name := range []string{"b.json", "a.json", "readme.md"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write nested file: %v", err)
	}

	files, err := FindDefinitionFiles(tmpDir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 .json files, got %d: %v", len(files), files)
	}

	// Results are sorted
	want := []string{
		filepath.Join(tmpDir, "a.json"),
		filepath.Join(tmpDir, "b.json"),
		filepath.Join(sub, "c.json"),
	}
	for i, w := range want {
		if files[i] != w {
			t.Errorf("file %d: expected %s, got %s", i, w, files[i])
		}
	}
}

func TestFindDefinitionFilesEmpty(t *testing.T) {
	files, err := FindDefinitionFiles(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestFindDefinitionFilesMissingDir(t *testing.T) {
	if _, err := FindDefinitionFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
