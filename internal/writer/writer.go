package writer

import (
	"fmt"

	"github.com/furyphoenix/labelstore/internal/manifest"
	"github.com/furyphoenix/labelstore/internal/record"
	"github.com/furyphoenix/labelstore/internal/storage"
	"github.com/furyphoenix/labelstore/pkg/log"
)

// DefaultBatchSize is the number of staged records per commit.
const DefaultBatchSize = 1000

// Run writes one record per entry into be, committing every batchSize
// staged records and once more for a trailing partial batch. For N entries
// this issues ceil(N/batchSize) commits; an empty manifest issues none.
//
// Sequence numbers follow the order of entries, so a shuffled manifest
// produces shuffled key stems under still-sequential key numbers.
//
// The first backend error aborts the run. Run never closes be; the caller
// owns the handle and must release it on every exit path.
func Run(logger log.Logger, be storage.Backend, entries []manifest.Entry, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	count := 0
	for seq, entry := range entries {
		rec := record.FromEntry(seq, entry)
		if err := be.Put([]byte(rec.Key), []byte(rec.Value)); err != nil {
			return fmt.Errorf("put %q: %w", rec.Key, err)
		}
		count++
		if count%batchSize == 0 {
			if err := be.Commit(); err != nil {
				return fmt.Errorf("commit after %d records: %w", count, err)
			}
			logger.Info("processed files", log.Int("count", count))
		}
	}

	// trailing partial batch
	if count%batchSize != 0 {
		if err := be.Commit(); err != nil {
			return fmt.Errorf("final commit after %d records: %w", count, err)
		}
		logger.Info("processed files", log.Int("count", count))
	}
	return nil
}
