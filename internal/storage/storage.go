package storage

import (
	"fmt"

	"github.com/furyphoenix/labelstore/internal/config"
	boltstore "github.com/furyphoenix/labelstore/internal/storage/bolt"
	pebblestore "github.com/furyphoenix/labelstore/internal/storage/pebble"
)

// Backend is the write surface shared by both engines. A Backend stages
// pairs into one open batch/transaction at a time; Commit durably applies
// the staged pairs and opens a fresh batch for subsequent writes.
//
// Backends are not safe for concurrent use. The loader owns the handle
// exclusively for the life of the process.
type Backend interface {
	// Put stages a key/value pair into the current batch.
	Put(key, value []byte) error
	// Commit durably applies all staged pairs and opens a fresh batch.
	Commit() error
	// Close releases all engine resources. Safe to call with staged but
	// uncommitted pairs; those are discarded.
	Close() error
}

// Kind identifies a storage engine.
type Kind string

const (
	KindPebble Kind = "pebble"
	KindBolt   Kind = "bolt"
)

// ParseKind validates a backend string. It fails before any destination
// state is touched, so an unknown engine never leaves a partial DB behind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPebble, KindBolt:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown backend %q (want %q or %q)", s, KindPebble, KindBolt)
	}
}

// Open creates the destination at path and returns a Backend for kind.
func Open(kind Kind, path string, cfg config.Config) (Backend, error) {
	switch kind {
	case KindPebble:
		return pebblestore.Open(pebblestore.Options{
			Path:            path,
			WriteBufferSize: cfg.Pebble.WriteBufferSize,
		})
	case KindBolt:
		return boltstore.Open(boltstore.Options{
			Dir:      path,
			FileName: cfg.Bolt.FileName,
			FileMode: cfg.Bolt.FileMode,
		})
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}
