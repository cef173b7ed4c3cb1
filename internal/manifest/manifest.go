package manifest

// Manifest maps a folder name to the agents found inside it, and each agent
// identifier to that agent's mesh filenames ordered by placement index.
type Manifest map[string]map[string][]string

// Stats summarizes the contents of a manifest.
type Stats struct {
	Folders int
	Agents  int
	Files   int
}

// Stats counts the folders, agent groups, and filenames in the manifest.
func (m Manifest) Stats() Stats {
	stats := Stats{Folders: len(m)}
	for _, agents := range m {
		stats.Agents += len(agents)
		for _, files := range agents {
			stats.Files += len(files)
		}
	}
	return stats
}
