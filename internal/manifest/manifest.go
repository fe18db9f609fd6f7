package manifest

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// Entry is one (path, label) pair from the list file. Immutable once parsed.
type Entry struct {
	Path  string
	Label int
}

// Load reads whitespace-separated (path, label) pairs from the file at path.
// It stops at the first pair that cannot be parsed: a trailing path without a
// label, or a label token that is not an integer, terminates the scan without
// error. Entries keep file order.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var entries []Entry
	for sc.Scan() {
		p := sc.Text()
		if !sc.Scan() {
			break
		}
		label, err := strconv.Atoi(sc.Text())
		if err != nil {
			break
		}
		entries = append(entries, Entry{Path: p, Label: label})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return entries, nil
}

// Shuffle applies a uniform random permutation to entries in place. The full
// permutation is applied before any entry is handed downstream. A nil rng
// uses the shared math/rand source.
func Shuffle(entries []Entry, rng *rand.Rand) {
	swap := func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if rng != nil {
		rng.Shuffle(len(entries), swap)
		return
	}
	rand.Shuffle(len(entries), swap)
}
