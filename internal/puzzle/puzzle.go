// internal/puzzle/puzzle.go
//
// The Puzzle bundle: an immutable grid plus its ordered, classified
// word list. Built once by the compiler, serialized to a single-line
// code, decoded unchanged by the runtime. Never mutated afterwards.

package puzzle

import (
	"fmt"

	"github.com/wordhexgame/wordhex/internal/hexgrid"
)

// MinWordLength is the shortest word a puzzle may contain.
const MinWordLength = 4

// Classification tags a discovered word.
type Classification int

const (
	// Normal words are required for completion and score points.
	Normal Classification = iota
	// Bonus words feed a secondary tally and never gate completion.
	Bonus
	// Excluded words are intentionally omitted from scoring and from
	// the visible word count; shown only if the player stumbles onto
	// one.
	Excluded
)

// String returns the lowercase name used in JSON snapshots.
func (c Classification) String() string {
	switch c {
	case Bonus:
		return "bonus"
	case Excluded:
		return "excluded"
	default:
		return "normal"
	}
}

// tag returns the puzzle-code suffix for c ("" for normal).
func (c Classification) tag() string {
	switch c {
	case Bonus:
		return ":b"
	case Excluded:
		return ":x"
	default:
		return ""
	}
}

// Word is a dictionary entry with every path that spells it in the
// grid. Multiple paths per word are all retained so the runtime can
// accept any of them as a correct trace.
type Word struct {
	Letters string
	Class   Classification
	Paths   []hexgrid.Path
}

// Puzzle is the immutable bundle of grid and classified words.
type Puzzle struct {
	Grid  *hexgrid.Grid
	Words []Word

	byLetters map[string]int
}

// New validates and assembles a Puzzle. Every word must have at least
// one valid path over g that spells its letters, and no word may
// appear twice.
func New(g *hexgrid.Grid, words []Word) (*Puzzle, error) {
	p := &Puzzle{Grid: g, Words: words, byLetters: make(map[string]int, len(words))}
	for i, w := range words {
		if lenRunes(w.Letters) < MinWordLength {
			return nil, fmt.Errorf("word %q shorter than %d letters", w.Letters, MinWordLength)
		}
		if len(w.Paths) == 0 {
			return nil, fmt.Errorf("word %q has no paths", w.Letters)
		}
		for _, path := range w.Paths {
			letters, err := path.Letters(g)
			if err != nil {
				return nil, fmt.Errorf("word %q: %w", w.Letters, err)
			}
			if letters != w.Letters {
				return nil, fmt.Errorf("word %q: path spells %q", w.Letters, letters)
			}
		}
		if _, dup := p.byLetters[w.Letters]; dup {
			return nil, fmt.Errorf("duplicate word %q", w.Letters)
		}
		p.byLetters[w.Letters] = i
	}
	return p, nil
}

// Lookup returns the index of the word spelled by letters, if any.
func (p *Puzzle) Lookup(letters string) (int, bool) {
	i, ok := p.byLetters[letters]
	return i, ok
}

// NumNormal counts the words required for completion.
func (p *Puzzle) NumNormal() int {
	n := 0
	for _, w := range p.Words {
		if w.Class == Normal {
			n++
		}
	}
	return n
}

// NumVisible counts the words shown to the player (normal + bonus;
// excluded words stay off the visible count).
func (p *Puzzle) NumVisible() int {
	n := 0
	for _, w := range p.Words {
		if w.Class != Excluded {
			n++
		}
	}
	return n
}

// NormalLetters sums the letter counts of all normal words; used for
// the progress-based suggested hint level.
func (p *Puzzle) NormalLetters() int {
	n := 0
	for _, w := range p.Words {
		if w.Class == Normal {
			n += lenRunes(w.Letters)
		}
	}
	return n
}

// Equal reports whether two puzzles have the same grid, word set,
// classifications, and path-per-word. Order matters: the codec
// round-trip preserves it.
func (p *Puzzle) Equal(o *Puzzle) bool {
	if o == nil || !p.Grid.Equal(o.Grid) || len(p.Words) != len(o.Words) {
		return false
	}
	for i, w := range p.Words {
		ow := o.Words[i]
		if w.Letters != ow.Letters || w.Class != ow.Class || len(w.Paths) != len(ow.Paths) {
			return false
		}
		for j, path := range w.Paths {
			if !path.Equal(ow.Paths[j]) {
				return false
			}
		}
	}
	return true
}

func lenRunes(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
