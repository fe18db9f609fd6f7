package config

import (
	"encoding/json"
	"os"
)

// Config is the top-level configuration for a conversion run.
type Config struct {
	// Backend selects the storage engine: "pebble" or "bolt".
	Backend string `json:"backend"`
	// Shuffle applies a uniform random permutation to the manifest before
	// any record is written.
	Shuffle bool `json:"shuffle"`
	// BatchSize is the number of staged records per commit.
	BatchSize int `json:"batchSize"`

	// Gray, ResizeWidth and ResizeHeight are recorded for downstream image
	// pipelines; the writer itself ignores them.
	Gray         bool `json:"gray"`
	ResizeWidth  int  `json:"resizeWidth"`
	ResizeHeight int  `json:"resizeHeight"`

	Pebble PebbleConfig `json:"pebble"`
	Bolt   BoltConfig   `json:"bolt"`
}

// PebbleConfig captures tuning for the log-structured backend.
type PebbleConfig struct {
	// WriteBufferSize is the memtable size in bytes.
	WriteBufferSize int `json:"writeBufferSize"`
}

// BoltConfig captures tuning for the B-tree backend.
type BoltConfig struct {
	// FileName is the database file created inside the destination directory.
	FileName string `json:"fileName"`
	// FileMode is the permission mode for the database file, as a decimal
	// JSON number (e.g. 384 for 0600).
	FileMode os.FileMode `json:"fileMode"`
}

// Default returns built-in defaults. The bolt backend is the default engine,
// matching the batch sizes and buffer sizes the converter has always used.
func Default() Config {
	return Config{
		Backend:   "bolt",
		BatchSize: 1000,
		Pebble: PebbleConfig{
			WriteBufferSize: 256 << 20,
		},
		Bolt: BoltConfig{
			FileName: "labels.db",
			FileMode: 0o600,
		},
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
