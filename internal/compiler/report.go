// internal/compiler/report.go
//
// Human-readable authoring review of a compiled puzzle: the grid with
// per-cell start/visit counts, then the classified word list. The
// machine-readable view of the same Puzzle is the puzzle code.

package compiler

import (
	"fmt"
	"io"

	"github.com/vyevs/ansi"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// Report writes the review to w. With color set, classifications and
// letters are ANSI-highlighted for terminals.
func Report(w io.Writer, res *Result, color bool) {
	p := res.Puzzle
	counts := puzzle.CountsFor(p, func(int) bool { return true })

	paint := func(name, s string) string {
		if !color {
			return s
		}
		return ansi.FGColorName(name) + s + ansi.Clear
	}

	// Grid rows, odd rows indented half a cell, counts underneath.
	for y := 0; y < p.Grid.Height(); y++ {
		indent := ""
		if y%2 == 1 {
			indent = "   "
		}

		fmt.Fprint(w, indent)
		for x := 0; x < p.Grid.Width(); x++ {
			r, ok := p.Grid.At(hexgrid.Coord{X: x, Y: y})
			if !ok {
				fmt.Fprint(w, "  .   ")
				continue
			}
			fmt.Fprintf(w, "  %s   ", paint("cyan", string(r)))
		}
		fmt.Fprintln(w)

		fmt.Fprint(w, indent)
		for x := 0; x < p.Grid.Width(); x++ {
			c := counts.At(hexgrid.Coord{X: x, Y: y})
			fmt.Fprintf(w, "%2d %-3d", c.Starts, c.Visits)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	for _, word := range p.Words {
		line := fmt.Sprintf("%s (%s)", word.Letters, alphabet.Encode(word.Letters))
		switch word.Class {
		case puzzle.Bonus:
			fmt.Fprintf(w, "%s %s\n", line, paint("yellow", "(bonus)"))
		case puzzle.Excluded:
			fmt.Fprintf(w, "%s %s\n", line, paint("red", "(excluded)"))
		default:
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "\n%d words (%d normal, %d visible)\n",
		len(p.Words), p.NumNormal(), p.NumVisible())

	for _, word := range res.UnknownBonus {
		fmt.Fprintf(w, "note: bonus word %s not in grid\n", alphabet.Encode(word))
	}
	for _, word := range res.UnknownExcluded {
		fmt.Fprintf(w, "note: excluded word %s not in grid\n", alphabet.Encode(word))
	}
}
