// Package ledger persists a record of manifest generation runs in SQLite.
//
// Each generate run appends one row: run identifier, scanned root, manifest
// path, folder/agent/file counts, and timing. The ledger is an audit trail
// only; the manifest itself is always rebuilt from the filesystem, never
// from these rows.
//
// Schema changes bump the version in schema.go; users delete the database
// to adopt the new schema.
package ledger
