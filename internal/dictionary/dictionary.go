// internal/dictionary/dictionary.go
//
// Immutable word list with fast membership and prefix queries.
// Responsibilities:
//   - Load a dictionary once from a text file (one word per line,
//     Shavian or ASCII-transliterated), normalizing and dropping
//     anything outside the alphabet.
//   - Answer Contains/HasPrefix in time proportional to the query
//     length, not the dictionary size (rune trie).
//   - Expose a Walker so the search engine can extend a prefix one
//     letter at a time without re-walking it.
//
// The dictionary is compiler-side infrastructure only; the runtime
// never needs it because puzzle codes carry their own word tables.

package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordhexgame/wordhex/internal/alphabet"
)

type node struct {
	children map[rune]*node
	terminal bool
}

// Dictionary is a read-only prefix tree over alphabet letters.
type Dictionary struct {
	root *node
	n    int
}

// New builds a Dictionary from an explicit word list. Words are
// normalized from ASCII transliteration; words containing runes
// outside the alphabet are skipped.
func New(words []string) *Dictionary {
	d := &Dictionary{root: &node{}}
	for _, w := range words {
		d.add(alphabet.Decode(strings.TrimSpace(w)))
	}
	return d
}

// Load reads one word per line from r. Blank lines and lines starting
// with '#' are ignored. Returns the number of words skipped for
// containing unsupported runes.
func Load(r io.Reader) (*Dictionary, int, error) {
	d := &Dictionary{root: &node{}}
	skipped := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := alphabet.Decode(line)
		if !validLetters(w) {
			skipped++
			continue
		}
		d.add(w)
	}
	return d, skipped, sc.Err()
}

// LoadFile opens and loads a dictionary file, logging a summary.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, skipped, err := Load(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", d.Len()).Int("skipped", skipped).Msg("dictionary loaded")
	return d, nil
}

func validLetters(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !alphabet.IsLetter(r) {
			return false
		}
	}
	return true
}

func (d *Dictionary) add(w string) {
	if !validLetters(w) {
		return
	}
	n := d.root
	for _, r := range w {
		if n.children == nil {
			n.children = make(map[rune]*node)
		}
		child, ok := n.children[r]
		if !ok {
			child = &node{}
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		d.n++
	}
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return d.n }

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	n := d.walk(word)
	return n != nil && n.terminal
}

// HasPrefix reports whether any dictionary word starts with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.walk(prefix) != nil
}

func (d *Dictionary) walk(s string) *node {
	n := d.root
	for _, r := range s {
		n = n.children[r]
		if n == nil {
			return nil
		}
	}
	return n
}

// Walker is a cursor into the trie, positioned after some prefix.
// The zero-cost copy semantics make it cheap to hold one per search
// stack frame.
type Walker struct {
	n *node
}

// Walk returns a Walker positioned at the empty prefix.
func (d *Dictionary) Walk() Walker { return Walker{n: d.root} }

// Step advances the cursor by one letter. Reports false when no
// dictionary word continues with r.
func (w Walker) Step(r rune) (Walker, bool) {
	if w.n == nil {
		return Walker{}, false
	}
	child := w.n.children[r]
	if child == nil {
		return Walker{}, false
	}
	return Walker{n: child}, true
}

// Terminal reports whether the prefix walked so far is itself a word.
func (w Walker) Terminal() bool { return w.n != nil && w.n.terminal }
