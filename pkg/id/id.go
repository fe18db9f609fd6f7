package id

import (
	"encoding/binary"
	"sync"
	"time"
)

// RunID is a 12-byte identifier: [8 bytes ms_timestamp][4 bytes sequence].
type RunID [12]byte

// Bytes returns the raw 12-byte representation.
func (r RunID) Bytes() []byte { b := make([]byte, 12); copy(b, r[:]); return b }

// String returns a hex string.
func (r RunID) String() string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(r)*2)
	for i, v := range r {
		out[i*2] = hexdigits[v>>4]
		out[i*2+1] = hexdigits[v&0x0f]
	}
	return string(out)
}

var (
	mu       sync.Mutex
	lastMs   int64
	sequence uint32
)

// NowMs returns current time in milliseconds since Unix epoch.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// NewRunID returns a new process-monotonic RunID. If the clock goes
// backwards, it pins to the last seen millisecond and increments the
// sequence instead.
func NewRunID() RunID {
	mu.Lock()
	defer mu.Unlock()

	ms := NowMs()
	if ms < lastMs {
		ms = lastMs
	}
	if ms == lastMs {
		sequence++
	} else {
		sequence = 0
	}
	lastMs = ms

	var r RunID
	binary.BigEndian.PutUint64(r[0:8], uint64(ms))
	binary.BigEndian.PutUint32(r[8:12], sequence)
	return r
}
