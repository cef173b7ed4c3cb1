package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Build scans the immediate subdirectories of root and groups matching mesh
// filenames per folder and per agent. A missing root yields an empty
// manifest rather than an error. Folders with no matching files still
// appear with an empty agent map. Other traversal failures abort the scan.
func Build(root string) (Manifest, error) {
	result := Manifest{}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("read assets root %q: %w", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		agents, err := scanFolder(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		result[entry.Name()] = agents
	}

	return result, nil
}

type placedFile struct {
	name  string
	index int
}

func scanFolder(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %q: %w", dir, err)
	}

	grouped := map[string][]placedFile{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		placement, ok := ParsePlacement(entry.Name())
		if !ok {
			continue
		}
		grouped[placement.Agent] = append(grouped[placement.Agent], placedFile{
			name:  entry.Name(),
			index: placement.Index,
		})
	}

	agents := make(map[string][]string, len(grouped))
	for agent, files := range grouped {
		// Stable keeps enumeration order for duplicate indices; that
		// order is not contractual.
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].index < files[j].index
		})
		names := make([]string, len(files))
		for i, file := range files {
			names[i] = file.name
		}
		agents[agent] = names
	}

	return agents, nil
}
