// Package boltstore provides the memory-mapped B-tree engine for the bulk
// loader, backed by bbolt. The destination is a directory holding a single
// database file; an existing directory is reused.
//
// One write transaction is open at all times between Open and Close. Commit
// commits it and begins the next, so the loader's batch boundaries map
// one-to-one onto bbolt transactions.
package boltstore
