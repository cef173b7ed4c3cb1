package config

const (
	defaultAssetsDir       = "assets"
	defaultManifestFile    = "assets_manifest.json"
	defaultStateDir        = "~/.local/share/meshman"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultLedgerRetention = 500
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir:    defaultAssetsDir,
			ManifestPath: defaultManifestFile,
			StateDir:     defaultStateDir,
		},
		Ledger: Ledger{
			Enabled:   true,
			Retention: defaultLedgerRetention,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
