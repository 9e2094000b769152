// internal/finder/finder.go
//
// Exhaustive word search over a hex grid.
// Responsibilities:
//   - Depth-first traversal from every present cell, extending one
//     adjacent unvisited cell at a time.
//   - Prune any branch whose letter sequence is not a dictionary
//     prefix, so the search follows real prefixes instead of 6^depth.
//   - Record every path of length >= minLength whose letters form a
//     dictionary word; all alternate paths for a word are retained.
//
// Determinism: start cells are visited row-major and neighbors in the
// fixed direction order, and the result is sorted (words by collation,
// paths by start index then step string), so repeated runs over the
// same inputs are byte-identical after encoding. The parallel variant
// preserves this by merging per-cell results and applying the same
// sort.

package finder

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wordhexgame/wordhex/internal/dictionary"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
)

// MinWordLength is the default minimum length for a recorded word.
const MinWordLength = 4

// FoundWord is one dictionary word together with every path that
// spells it.
type FoundWord struct {
	Letters string
	Paths   []hexgrid.Path
}

// Find enumerates every word of length >= minLength in the grid.
// A minLength below 1 falls back to MinWordLength. The result is
// sorted and deterministic; an empty grid vocabulary yields an empty
// slice, which is a valid (if unhelpful) puzzle.
func Find(g *hexgrid.Grid, dict *dictionary.Dictionary, minLength int) []FoundWord {
	if minLength < 1 {
		minLength = MinWordLength
	}

	acc := make(map[string][]hexgrid.Path)
	for i := 0; i < g.NumCells(); i++ {
		searchFrom(g, dict, g.CoordOf(i), minLength, acc)
	}
	return sorted(acc)
}

// FindParallel runs the outer loop across workers goroutines, one
// start cell at a time. Each start-cell search is read-only over the
// shared grid and dictionary and writes to its own accumulator, so
// the merge is race-free. Output is identical to Find.
func FindParallel(ctx context.Context, g *hexgrid.Grid, dict *dictionary.Dictionary, minLength, workers int) ([]FoundWord, error) {
	if workers <= 1 {
		return Find(g, dict, minLength), nil
	}
	if minLength < 1 {
		minLength = MinWordLength
	}

	perCell := make([]map[string][]hexgrid.Path, g.NumCells())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < g.NumCells(); i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			acc := make(map[string][]hexgrid.Path)
			searchFrom(g, dict, g.CoordOf(i), minLength, acc)
			perCell[i] = acc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Merge in start-cell order so path order matches the serial run.
	merged := make(map[string][]hexgrid.Path)
	for _, acc := range perCell {
		for w, paths := range acc {
			merged[w] = append(merged[w], paths...)
		}
	}
	return sorted(merged), nil
}

type searchState struct {
	grid    *hexgrid.Grid
	min     int
	acc     map[string][]hexgrid.Path
	visited []bool
	start   hexgrid.Coord
	steps   []hexgrid.Direction
	letters []rune
}

func searchFrom(g *hexgrid.Grid, dict *dictionary.Dictionary, start hexgrid.Coord, minLength int, acc map[string][]hexgrid.Path) {
	letter, ok := g.At(start)
	if !ok {
		return
	}
	w, ok := dict.Walk().Step(letter)
	if !ok {
		return
	}

	st := &searchState{
		grid:    g,
		min:     minLength,
		acc:     acc,
		visited: make([]bool, g.NumCells()),
		start:   start,
	}
	st.visited[g.Index(start)] = true
	st.letters = append(st.letters, letter)
	st.extend(start, w)
}

func (st *searchState) extend(c hexgrid.Coord, w dictionary.Walker) {
	if w.Terminal() && len(st.letters) >= st.min {
		st.record()
	}

	for d := hexgrid.Direction(0); d < hexgrid.NumDirections; d++ {
		next := c.Step(d)
		letter, ok := st.grid.At(next)
		if !ok || st.visited[st.grid.Index(next)] {
			continue
		}
		nw, ok := w.Step(letter)
		if !ok {
			continue // no dictionary continuation: prune
		}

		st.visited[st.grid.Index(next)] = true
		st.steps = append(st.steps, d)
		st.letters = append(st.letters, letter)

		st.extend(next, nw)

		st.letters = st.letters[:len(st.letters)-1]
		st.steps = st.steps[:len(st.steps)-1]
		st.visited[st.grid.Index(next)] = false
	}
}

func (st *searchState) record() {
	word := string(st.letters)
	path := hexgrid.Path{Start: st.start, Steps: append([]hexgrid.Direction(nil), st.steps...)}
	st.acc[word] = append(st.acc[word], path)
}

func sorted(acc map[string][]hexgrid.Path) []FoundWord {
	out := make([]FoundWord, 0, len(acc))
	for w, paths := range acc {
		out = append(out, FoundWord{Letters: w, Paths: paths})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Letters < out[j].Letters })
	for _, fw := range out {
		sortPaths(fw.Paths)
	}
	return out
}

func sortPaths(paths []hexgrid.Path) {
	sort.Slice(paths, func(i, j int) bool {
		a, b := paths[i], paths[j]
		if a.Start.Y != b.Start.Y {
			return a.Start.Y < b.Start.Y
		}
		if a.Start.X != b.Start.X {
			return a.Start.X < b.Start.X
		}
		return strings.Compare(a.StepString(), b.StepString()) < 0
	})
}
