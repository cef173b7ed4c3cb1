package ledger

import "time"

// Run is one recorded manifest generation.
type Run struct {
	ID           int64
	RunID        string
	AssetsRoot   string
	ManifestPath string
	FolderCount  int
	AgentCount   int
	FileCount    int
	Duration     time.Duration
	StartedAt    time.Time
	FinishedAt   time.Time
}
