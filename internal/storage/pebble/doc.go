// Package pebblestore provides the log-structured engine for the bulk
// loader: a thin wrapper around Pebble that stages writes into one batch at
// a time and commits with WAL sync.
//
// Usage:
//
//	s, err := pebblestore.Open(pebblestore.Options{Path: "./out"})
//	if err != nil { /* handle */ }
//	defer s.Close()
//
//	_ = s.Put([]byte("k"), []byte("v"))
//	_ = s.Commit()
//
// Open refuses a path that already holds a database.
package pebblestore
