// internal/puzzle/catalog.go
//
// The puzzle catalog: a text resource with one puzzle code per line,
// selected by line number. A bad line is a data-integrity problem for
// that one puzzle only — the loader reports it and keeps going, so a
// corrupted entry never takes the runtime down.

package puzzle

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Entry is one decoded catalog line.
type Entry struct {
	ID     int // 1-based line position among valid entries
	Code   string
	Puzzle *Puzzle
}

// Catalog is an immutable, indexed set of puzzles.
type Catalog struct {
	entries []Entry
}

// LoadCatalog reads one code per line from r, skipping blank lines and
// '#' comments. Lines that fail to decode are logged and skipped.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := Decode(line)
		if err != nil {
			log.Warn().Int("line", lineNum).Err(err).Msg("skipping bad catalog entry")
			continue
		}
		c.entries = append(c.entries, Entry{ID: len(c.entries) + 1, Code: line, Puzzle: p})
	}
	return c, sc.Err()
}

// LoadCatalogFile opens and loads a catalog file, logging a summary.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("puzzles", c.Len()).Msg("catalog loaded")
	return c, nil
}

// Len returns the number of valid puzzles.
func (c *Catalog) Len() int { return len(c.entries) }

// Get returns the entry with the given 1-based id.
func (c *Catalog) Get(id int) (Entry, bool) {
	if id < 1 || id > len(c.entries) {
		return Entry{}, false
	}
	return c.entries[id-1], true
}

// Entries returns all valid entries in catalog order.
func (c *Catalog) Entries() []Entry { return c.entries }
