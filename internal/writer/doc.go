// Package writer persists manifest entries as records through a storage
// backend, committing in fixed-size batches. It is the core of the bulk
// loader: one sequential pass, one open transaction at a time, every error
// fatal to the run.
package writer
