// Package ordering provides numeric-aware string collation for
// human-facing output, so folder "10" follows folder "2".
package ordering
