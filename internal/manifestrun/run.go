package manifestrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"meshman/internal/config"
	"meshman/internal/ledger"
	"meshman/internal/manifest"
)

// ErrRunInProgress indicates another meshman invocation holds the run lock.
var ErrRunInProgress = errors.New("another meshman run is in progress")

// Options overrides configured paths for a single run.
type Options struct {
	AssetsRoot   string
	ManifestPath string
}

// Result summarizes a completed run.
type Result struct {
	RunID        string
	AssetsRoot   string
	ManifestPath string
	Manifest     manifest.Manifest
	Stats        manifest.Stats
	Duration     time.Duration
}

// Run executes one generate pass: lock, scan, write, record.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	root := strings.TrimSpace(opts.AssetsRoot)
	if root == "" {
		root = cfg.Paths.AssetsDir
	}
	outPath := strings.TrimSpace(opts.ManifestPath)
	if outPath == "" {
		outPath = cfg.Paths.ManifestPath
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock file %s)", ErrRunInProgress, cfg.LockPath())
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			logger.Warn("release run lock", "error", unlockErr)
		}
	}()

	runID := uuid.NewString()
	runLogger := logger.With("run_id", runID)
	started := time.Now()

	runLogger.Info("scanning assets", "root", root)
	built, err := manifest.Build(root)
	if err != nil {
		return nil, err
	}

	if err := manifest.WriteFile(outPath, built); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:        runID,
		AssetsRoot:   root,
		ManifestPath: outPath,
		Manifest:     built,
		Stats:        built.Stats(),
		Duration:     time.Since(started),
	}

	recordRun(ctx, cfg, runLogger, result, started)

	runLogger.Info("manifest generated",
		"manifest", result.ManifestPath,
		"folders", result.Stats.Folders,
		"agents", result.Stats.Agents,
		"files", result.Stats.Files,
		"duration", result.Duration,
	)

	return result, nil
}

// recordRun appends the run to the ledger. Best effort: a broken ledger
// must not fail a run that already produced its manifest.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, result *Result, started time.Time) {
	if !cfg.Ledger.Enabled {
		return
	}

	store, err := ledger.Open(cfg)
	if err != nil {
		logger.Warn("open ledger", "error", err)
		return
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("close ledger", "error", closeErr)
		}
	}()

	_, err = store.RecordRun(ctx, ledger.Run{
		RunID:        result.RunID,
		AssetsRoot:   result.AssetsRoot,
		ManifestPath: result.ManifestPath,
		FolderCount:  result.Stats.Folders,
		AgentCount:   result.Stats.Agents,
		FileCount:    result.Stats.Files,
		Duration:     result.Duration,
		StartedAt:    started,
		FinishedAt:   started.Add(result.Duration),
	})
	if err != nil {
		logger.Warn("record run", "error", err)
	}
}
