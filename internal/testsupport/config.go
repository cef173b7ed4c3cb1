package testsupport

import (
	"path/filepath"
	"testing"

	"meshman/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.ManifestPath = filepath.Join(base, "assets_manifest.json")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "state", "logs")
	cfg.Ledger.Path = filepath.Join(base, "state", "ledger.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	return &cfg
}

// WithLedgerDisabled turns off run recording on the test config.
func WithLedgerDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Ledger.Enabled = false
	}
}

// WithLedgerRetention caps the number of retained runs on the test config.
func WithLedgerRetention(keep int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Ledger.Retention = keep
	}
}
