// internal/puzzle/counts.go
//
// Per-cell hint counts derived from the word table and a found-set:
// how many not-yet-found words start at each cell, and how many pass
// through it. Pure derivation; nothing here mutates the puzzle.

package puzzle

import "github.com/wordhexgame/wordhex/internal/hexgrid"

// CellCounts holds the hint numbers for one grid cell.
type CellCounts struct {
	Starts int `json:"starts"`
	Visits int `json:"visits"`
}

// Counts is the per-cell table for a whole grid.
type Counts struct {
	cells []CellCounts
	width int
}

// CountsFor computes the table over every normal and bonus word whose
// index satisfies unfound. Excluded words never contribute. Each word
// counts once via its canonical (first) path, so the numbers stay
// stable regardless of how many alternate routes exist.
func CountsFor(p *Puzzle, unfound func(wordIndex int) bool) *Counts {
	c := &Counts{
		cells: make([]CellCounts, p.Grid.NumCells()),
		width: p.Grid.Width(),
	}
	for i, w := range p.Words {
		if w.Class == Excluded || !unfound(i) {
			continue
		}
		cells, err := w.Paths[0].Cells(p.Grid)
		if err != nil {
			continue // validated at construction; can't happen
		}
		c.cells[p.Grid.Index(cells[0])].Starts++
		for _, cell := range cells {
			c.cells[p.Grid.Index(cell)].Visits++
		}
	}
	return c
}

// At returns the counts for cell coordinate co.
func (c *Counts) At(co hexgrid.Coord) CellCounts {
	return c.cells[co.Y*c.width+co.X]
}

// Cells returns the row-major table, for snapshots and reports.
func (c *Counts) Cells() []CellCounts { return c.cells }
