package testutil

import (
	"path/filepath"
	"testing"
)

// WriteTree populates fsys with the given files, creating parent
// directories as needed. Keys are absolute paths, values file contents.
func WriteTree(t *testing.T, fsys *MemoryFS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// AssertExists fails the test if path does not exist on fsys
func AssertExists(t *testing.T, fsys *MemoryFS, path string) {
	t.Helper()
	if _, err := fsys.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

// AssertNotExists fails the test if path exists on fsys
func AssertNotExists(t *testing.T, fsys *MemoryFS, path string) {
	t.Helper()
	if _, err := fsys.Stat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}
