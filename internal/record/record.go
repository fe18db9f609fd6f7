// Package record derives the key/value pair written for each manifest entry.
package record

import (
	"fmt"
	"path"
	"strings"

	"github.com/furyphoenix/labelstore/internal/manifest"
)

// Record is the derived key/value pair for one manifest entry. Keys embed a
// zero-padded sequence number so they sort in write order in both backends.
type Record struct {
	Key   string
	Value string
}

// FromEntry derives the Record for the entry at sequence position seq.
//
// Key:   "%08d_<stem>" where stem is the entry path with its extension
// stripped. Value: "%04d" label.
func FromEntry(seq int, e manifest.Entry) Record {
	return Record{
		Key:   fmt.Sprintf("%08d_%s", seq, stem(e.Path)),
		Value: fmt.Sprintf("%04d", e.Label),
	}
}

// stem removes the final extension from p, if any. Paths without an
// extension pass through unchanged.
func stem(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}
