package pebblestore

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// Options configures the Pebble store wrapper.
type Options struct {
	// Path is the destination database directory. It must not already hold
	// a database; opening an existing destination fails.
	Path string
	// WriteBufferSize is the memtable size in bytes. If zero, a 256 MiB
	// buffer is used.
	WriteBufferSize int
	// PebbleOptions allows advanced tuning of Pebble. If nil, sensible
	// defaults are used.
	PebbleOptions *pebble.Options
}

// Store wraps a Pebble database with one open batch staged for commit.
type Store struct {
	db    *pebble.DB
	batch *pebble.Batch
}

// Open creates a Pebble database at opts.Path. The destination must not
// already exist as a database.
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("pebblestore: Options.Path is required")
	}
	if opts.WriteBufferSize <= 0 {
		opts.WriteBufferSize = 256 << 20
	}

	po := opts.PebbleOptions
	if po == nil {
		po = &pebble.Options{}
	}
	po.ErrorIfExists = true
	po.MemTableSize = uint64(opts.WriteBufferSize)

	db, err := pebble.Open(opts.Path, po)
	if err != nil {
		return nil, fmt.Errorf("open pebble %s: %w", opts.Path, err)
	}

	return &Store{
		db:    db,
		batch: db.NewBatch(),
	}, nil
}

// Put stages a key/value pair into the current batch.
func (s *Store) Put(key, value []byte) error {
	return s.batch.Set(key, value, nil)
}

// Commit applies the staged batch with WAL sync and opens a fresh batch.
func (s *Store) Commit() error {
	if err := s.batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	if err := s.batch.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}
	s.batch = s.db.NewBatch()
	return nil
}

// Close discards any staged but uncommitted pairs and closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if s.batch != nil {
		_ = s.batch.Close()
		s.batch = nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get copies the value for the given key. Used by tests and verification
// tooling; the bulk-load path itself is write-only.
func (s *Store) Get(key []byte) ([]byte, error) {
	val, closer, err := s.db.Get(key)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), val...), nil
}

// NewIter creates a raw Pebble iterator with the provided options.
func (s *Store) NewIter(opts *pebble.IterOptions) (*pebble.Iterator, error) {
	return s.db.NewIter(opts)
}
