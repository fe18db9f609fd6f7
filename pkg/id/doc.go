// Package id provides a compact, lexicographically sortable run identifier.
//
// A RunID is 12 bytes big-endian: [8 bytes ms_timestamp][4 bytes sequence],
// rendered as hex. Byte-wise comparison preserves chronological order, and
// IDs generated within the same millisecond remain strictly increasing by
// sequence. labelstore tags every conversion run with one so that log lines
// from overlapping invocations can be told apart.
package id
