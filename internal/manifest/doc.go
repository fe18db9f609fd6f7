// Package manifest reads the input list file: whitespace-separated
// (path, label) pairs, one entry per pair. Parsing stops quietly at the
// first token pair that does not form a valid entry, mirroring stream
// extraction semantics of the list files this tool has always consumed.
package manifest
