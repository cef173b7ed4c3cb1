package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteAssetTree lays out an assets root with one subdirectory per key and
// an empty file for every listed filename.
func WriteAssetTree(t testing.TB, root string, folders map[string][]string) {
	t.Helper()

	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir assets root %s: %v", root, err)
	}
	for folder, files := range folders {
		dir := filepath.Join(root, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		for _, name := range files {
			WriteFile(t, filepath.Join(dir, name))
		}
	}
}

// WriteFile creates an empty file at path, making parent directories as
// needed.
func WriteFile(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
