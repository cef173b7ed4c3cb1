// Package logging constructs the slog loggers used across meshman.
//
// Output fans out to stderr and, when a log directory is configured, an
// append-only log file. Console and JSON handler formats are supported;
// unknown levels fall back to info so a typo in config never silences the
// tool.
package logging
