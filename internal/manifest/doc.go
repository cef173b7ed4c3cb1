// Package manifest builds and serializes the placed-mesh asset manifest.
//
// A manifest maps each immediate subdirectory of an assets root to the
// agents whose placed GLB meshes it contains, and each agent to its mesh
// filenames ordered by the numeric index embedded in the name. The mapping
// is rebuilt from scratch on every run; nothing here is incremental.
//
// Filenames are matched against a fixed grammar anchored at the start of
// the name. Anything that does not match is silently excluded.
package manifest
