package convert

import (
	"fmt"

	cfgpkg "github.com/furyphoenix/labelstore/internal/config"
	"github.com/furyphoenix/labelstore/internal/manifest"
	"github.com/furyphoenix/labelstore/internal/storage"
	"github.com/furyphoenix/labelstore/internal/writer"
	"github.com/furyphoenix/labelstore/pkg/id"
	"github.com/furyphoenix/labelstore/pkg/log"
)

// Options carries everything one conversion run needs.
type Options struct {
	// ListFile is the manifest of (path, label) pairs.
	ListFile string
	// DBPath is the destination database path.
	DBPath string
	Config cfgpkg.Config
	Logger log.Logger
}

// Run executes one conversion: load (and optionally shuffle) the manifest,
// open the destination backend, write every entry in fixed-size batches.
// The backend handle is released on every exit path, including mid-run
// write failures.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewLogger()
	}
	logger = logger.With(log.Str("run_id", id.NewRunID().String()))

	// Validate the backend string before touching the manifest or the
	// destination. An unknown engine must fail before any entry is staged.
	kind, err := storage.ParseKind(opts.Config.Backend)
	if err != nil {
		return err
	}

	entries, err := manifest.Load(opts.ListFile)
	if err != nil {
		return err
	}
	logger.Info("loaded manifest",
		log.Str("file", opts.ListFile),
		log.Int("entries", len(entries)))

	if opts.Config.Shuffle {
		logger.Info("shuffling data")
		manifest.Shuffle(entries, nil)
	}

	logger.Info("opening backend",
		log.Str("backend", string(kind)),
		log.Str("path", opts.DBPath))
	be, err := storage.Open(kind, opts.DBPath, opts.Config)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", kind, err)
	}

	runErr := writer.Run(logger.WithComponent("writer"), be, entries, opts.Config.BatchSize)

	if err := be.Close(); err != nil {
		logger.Error("close backend", log.Err(err))
		if runErr == nil {
			runErr = fmt.Errorf("close %s backend: %w", kind, err)
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("conversion complete", log.Int("entries", len(entries)))
	return nil
}
