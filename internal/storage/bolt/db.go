package boltstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// All records live in a single bucket.
var bucketLabels = []byte("labels")

// Options configures the bolt store.
type Options struct {
	// Dir is the destination directory. Created if absent; reused if present.
	Dir string
	// FileName is the database file inside Dir. Defaults to "labels.db".
	FileName string
	// FileMode is the mode for the database file. Defaults to 0600.
	FileMode os.FileMode
}

// Store wraps a bbolt database with one open write transaction staged for
// commit.
type Store struct {
	db     *bolt.DB
	tx     *bolt.Tx
	bucket *bolt.Bucket
}

// Open creates (or reuses) the destination directory, opens the database
// file inside it and begins the first write transaction.
func Open(opts Options) (*Store, error) {
	if opts.Dir == "" {
		return nil, errors.New("boltstore: Options.Dir is required")
	}
	if opts.FileName == "" {
		opts.FileName = "labels.db"
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0o600
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", opts.Dir, err)
	}

	db, err := bolt.Open(filepath.Join(opts.Dir, opts.FileName), opts.FileMode, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLabels)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	s := &Store{db: db}
	if err := s.begin(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) begin() error {
	tx, err := s.db.Begin(true)
	if err != nil {
		return fmt.Errorf("begin txn: %w", err)
	}
	s.tx = tx
	s.bucket = tx.Bucket(bucketLabels)
	return nil
}

// Put stages a key/value pair into the current transaction.
func (s *Store) Put(key, value []byte) error {
	return s.bucket.Put(key, value)
}

// Commit commits the current transaction and begins the next.
func (s *Store) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit txn: %w", err)
	}
	s.tx = nil
	s.bucket = nil
	return s.begin()
}

// Close rolls back any staged but uncommitted pairs and closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
		s.bucket = nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// HasKeyWithPrefix reports whether any committed key starts with prefix.
func (s *Store) HasKeyWithPrefix(prefix []byte) bool {
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketLabels).Cursor()
		k, _ := c.Seek(prefix)
		found = k != nil && len(k) >= len(prefix) && string(k[:len(prefix)]) == string(prefix)
		return nil
	})
	return found
}

// Get copies the value for the given key from committed state. Used by
// tests and verification tooling; the bulk-load path itself is write-only.
func (s *Store) Get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketLabels).Get(key)
		if v == nil {
			return fmt.Errorf("key %q not found", key)
		}
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}
