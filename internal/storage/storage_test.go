package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/furyphoenix/labelstore/internal/config"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"pebble", "bolt"} {
		kind, err := ParseKind(s)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", s, err)
		}
		if string(kind) != s {
			t.Fatalf("kind = %q", kind)
		}
	}
	for _, s := range []string{"", "leveldb", "lmdb", "PEBBLE"} {
		if _, err := ParseKind(s); err == nil {
			t.Fatalf("ParseKind(%q) succeeded, want error", s)
		}
	}
}

func TestOpenDispatch(t *testing.T) {
	cfg := config.Default()
	for _, kind := range []Kind{KindPebble, KindBolt} {
		dir := filepath.Join(t.TempDir(), string(kind))
		be, err := Open(kind, dir, cfg)
		if err != nil {
			t.Fatalf("open %s: %v", kind, err)
		}
		if err := be.Put([]byte("k"), []byte("v")); err != nil {
			t.Fatalf("put %s: %v", kind, err)
		}
		if err := be.Commit(); err != nil {
			t.Fatalf("commit %s: %v", kind, err)
		}
		if err := be.Close(); err != nil {
			t.Fatalf("close %s: %v", kind, err)
		}
	}
}

func TestBoltTuningReachesEngine(t *testing.T) {
	cfg := config.Default()
	cfg.Bolt.FileName = "tuned.db"
	cfg.Bolt.FileMode = 0o640

	dir := filepath.Join(t.TempDir(), "b")
	be, err := Open(KindBolt, dir, cfg)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	defer be.Close()

	info, err := os.Stat(filepath.Join(dir, "tuned.db"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o640 {
		t.Fatalf("file mode = %o, want 640", got)
	}
}

func TestExistingDestinationAsymmetry(t *testing.T) {
	cfg := config.Default()

	// pebble: second open of the same destination fails
	dir := filepath.Join(t.TempDir(), "p")
	be, err := Open(KindPebble, dir, cfg)
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	if err := be.Close(); err != nil {
		t.Fatalf("close pebble: %v", err)
	}
	if _, err := Open(KindPebble, dir, cfg); err == nil {
		t.Fatalf("pebble reopened existing destination, want error")
	}

	// bolt: second open of the same destination succeeds
	dir = filepath.Join(t.TempDir(), "b")
	be, err = Open(KindBolt, dir, cfg)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	if err := be.Close(); err != nil {
		t.Fatalf("close bolt: %v", err)
	}
	be, err = Open(KindBolt, dir, cfg)
	if err != nil {
		t.Fatalf("bolt refused existing destination: %v", err)
	}
	_ = be.Close()
}
