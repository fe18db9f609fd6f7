package config

import (
	"os"
	"strconv"
)

// FromEnv overlays LABELSTORE_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("LABELSTORE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("LABELSTORE_SHUFFLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Shuffle = b
		}
	}
	if v := os.Getenv("LABELSTORE_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BatchSize = n
		}
	}
	if v := os.Getenv("LABELSTORE_PEBBLE_WRITE_BUFFER_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Pebble.WriteBufferSize = n
		}
	}
	if v := os.Getenv("LABELSTORE_BOLT_FILE_NAME"); v != "" {
		cfg.Bolt.FileName = v
	}
	if v := os.Getenv("LABELSTORE_BOLT_FILE_MODE"); v != "" {
		// octal, matching how modes are written on the command line
		if n, err := strconv.ParseUint(v, 8, 32); err == nil && n != 0 {
			cfg.Bolt.FileMode = os.FileMode(n)
		}
	}
}
