// internal/compiler/compiler.go
//
// The offline puzzle compiler: authoring grid + dictionary + curated
// classification lists in, classified Puzzle out.
// Responsibilities:
//   - Parse the authoring grid and run the exhaustive word search.
//   - Apply bonus/excluded classification by exact letter match;
//     list words the grid does not actually contain are reported but
//     never fatal.
//   - Warn (not error) on an empty word list — a valid puzzle, just
//     not a useful one.

package compiler

import (
	"bufio"
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/dictionary"
	"github.com/wordhexgame/wordhex/internal/finder"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// Input bundles everything one compilation needs.
type Input struct {
	GridText  string
	Dict      *dictionary.Dictionary
	Bonus     []string
	Excluded  []string
	MinLength int // 0 means the default of 4
	Workers   int // <=1 runs the search serially
}

// Result is a compiled puzzle plus authoring feedback.
type Result struct {
	Puzzle *puzzle.Puzzle
	// UnknownBonus/UnknownExcluded are classification-list words the
	// grid does not contain. Informational only.
	UnknownBonus    []string
	UnknownExcluded []string
}

// Build runs the full pipeline. The only fatal failures are a
// malformed grid and a cancelled context.
func Build(ctx context.Context, in Input) (*Result, error) {
	g, err := hexgrid.Parse(in.GridText)
	if err != nil {
		return nil, err
	}

	found, err := finder.FindParallel(ctx, g, in.Dict, in.MinLength, in.Workers)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		log.Warn().Msg("no words found in grid; puzzle will be empty")
	}

	bonus := toSet(in.Bonus)
	excluded := toSet(in.Excluded)

	words := make([]puzzle.Word, 0, len(found))
	for _, fw := range found {
		class := puzzle.Normal
		switch {
		// Excluded wins when a word is on both lists.
		case excluded[fw.Letters]:
			class = puzzle.Excluded
			delete(excluded, fw.Letters)
		case bonus[fw.Letters]:
			class = puzzle.Bonus
			delete(bonus, fw.Letters)
		}
		words = append(words, puzzle.Word{Letters: fw.Letters, Class: class, Paths: fw.Paths})
	}

	p, err := puzzle.New(g, words)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Puzzle:          p,
		UnknownBonus:    remaining(bonus),
		UnknownExcluded: remaining(excluded),
	}
	for _, w := range res.UnknownBonus {
		log.Info().Str("word", alphabet.Encode(w)).Msg("bonus-list word not in grid; ignored")
	}
	for _, w := range res.UnknownExcluded {
		log.Info().Str("word", alphabet.Encode(w)).Msg("excluded-list word not in grid; ignored")
	}
	return res, nil
}

// ReadWordList loads a classification list: one word per line, blank
// lines and '#' comments skipped, ASCII transliteration accepted.
func ReadWordList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, alphabet.Decode(line))
	}
	return out, sc.Err()
}

// ReadWordListFile is the path-based convenience form of ReadWordList.
func ReadWordListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWordList(f)
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func remaining(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
