// Package storage defines the backend seam for the bulk loader and the
// kind-string dispatch that selects an engine exactly once at startup.
//
// Two engines are provided:
//   - pebble: log-structured (LSM). Refuses to open an existing destination.
//   - bolt:   memory-mapped B-tree. Reuses an existing destination directory.
//
// The open-behavior asymmetry between the two engines is long-standing
// observed behavior and is preserved deliberately.
package storage
