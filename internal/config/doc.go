// Package config loads, normalizes, and validates meshman configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit flag path,
// ~/.config/meshman/config.toml, or a project-local meshman.toml. A missing
// file is not an error; defaults apply.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors.
package config
