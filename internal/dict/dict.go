// Package dict loads a stream of whitespace-separated words into a
// trie.TrieST, mapping each word to its 0-based position in the stream.
// A repeated word keeps its last position.
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/AlexKokoz/Algs4/trie"
)

// ErrEmptyPath is returned by Open for an empty path.
var ErrEmptyPath = errors.New("dict: path is empty")

// Stats summarizes a load.
type Stats struct {
	Words    int // words read
	Distinct int // keys in the table afterwards
}

// Load reads every word from r into st. Words that are not valid UTF-8
// abort the load with the trie error.
func Load(r io.Reader, st *trie.TrieST[int], log zerolog.Logger) (Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var stats Stats
	for sc.Scan() {
		word := sc.Text()
		if err := st.Put(word, stats.Words); err != nil {
			return stats, fmt.Errorf("dict: word %d: %w", stats.Words, err)
		}
		stats.Words++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("dict: read failed: %w", err)
	}
	stats.Distinct = st.Size()
	log.Debug().Int("words", stats.Words).Int("distinct", stats.Distinct).Msg("dictionary loaded")

	return stats, nil
}

// Open returns a reader for path; "-" means stdin, which the caller must not close.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	switch path {
	case "":
		return nil, ErrEmptyPath
	case "-":
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: %w", err)
	}

	return f, nil
}
