// Package manifestrun orchestrates a single manifest generation run.
//
// A run takes the flock guard in the state directory, scans the assets
// tree, overwrites the manifest file, and records the run in the ledger
// when enabled. Ledger failures are logged and do not fail the run; the
// manifest is the product, the ledger is bookkeeping.
package manifestrun
