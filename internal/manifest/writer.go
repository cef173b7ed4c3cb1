package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile serializes the manifest as indented JSON at path, replacing any
// existing file. The write is a plain truncating overwrite; the artifact is
// cheap to regenerate, so there is no atomic rename.
func WriteFile(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %q: %w", path, err)
	}
	return nil
}

// ReadFile parses a manifest previously written by WriteFile.
func ReadFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	return m, nil
}
