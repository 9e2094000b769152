// internal/hexgrid/path.go
//
// Path is the one shared notion of "a valid word path" used by the
// word finder, the puzzle codec, and the gameplay trace rules: an
// ordered sequence of distinct present cells, each consecutive pair
// hex-adjacent.

package hexgrid

import (
	"fmt"
	"strings"
)

// Path records a route through the grid as a start cell plus direction
// steps. The compact form is what puzzle codes store.
type Path struct {
	Start Coord
	Steps []Direction
}

// Len returns the number of cells the path covers.
func (p Path) Len() int { return len(p.Steps) + 1 }

// Cells expands the path to its cell coordinates over g, validating
// the path invariants as it goes: every cell in bounds and present,
// no cell revisited.
func (p Path) Cells(g *Grid) ([]Coord, error) {
	cells := make([]Coord, 0, p.Len())
	visited := make(map[Coord]bool, p.Len())

	c := p.Start
	for i := 0; ; i++ {
		if !g.Present(c) {
			return nil, fmt.Errorf("path leaves the grid at step %d (%d,%d)", i, c.X, c.Y)
		}
		if visited[c] {
			return nil, fmt.Errorf("path revisits cell (%d,%d) at step %d", c.X, c.Y, i)
		}
		visited[c] = true
		cells = append(cells, c)

		if i == len(p.Steps) {
			return cells, nil
		}
		if !p.Steps[i].Valid() {
			return nil, fmt.Errorf("invalid direction %d at step %d", p.Steps[i], i)
		}
		c = c.Step(p.Steps[i])
	}
}

// Letters spells out the word the path traces over g.
func (p Path) Letters(g *Grid) (string, error) {
	cells, err := p.Cells(g)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range cells {
		r, _ := g.At(c)
		b.WriteRune(r)
	}
	return b.String(), nil
}

// PathFromCells converts an explicit cell sequence (such as a finished
// player trace) back to the compact start+steps form. It validates the
// same invariants as Cells.
func PathFromCells(g *Grid, cells []Coord) (Path, error) {
	if len(cells) == 0 {
		return Path{}, fmt.Errorf("empty path")
	}
	p := Path{Start: cells[0], Steps: make([]Direction, 0, len(cells)-1)}
	visited := map[Coord]bool{}
	for i, c := range cells {
		if !g.Present(c) {
			return Path{}, fmt.Errorf("cell (%d,%d) is not a letter", c.X, c.Y)
		}
		if visited[c] {
			return Path{}, fmt.Errorf("cell (%d,%d) repeated", c.X, c.Y)
		}
		visited[c] = true
		if i == 0 {
			continue
		}
		prev := cells[i-1]
		found := false
		for d := Direction(0); d < NumDirections; d++ {
			if prev.Step(d) == c {
				p.Steps = append(p.Steps, d)
				found = true
				break
			}
		}
		if !found {
			return Path{}, fmt.Errorf("cells (%d,%d) and (%d,%d) are not adjacent", prev.X, prev.Y, c.X, c.Y)
		}
	}
	return p, nil
}

// StepString renders the steps as puzzle-code digits.
func (p Path) StepString() string {
	b := make([]byte, len(p.Steps))
	for i, d := range p.Steps {
		b[i] = d.Digit()
	}
	return string(b)
}

// Equal reports whether two paths are identical.
func (p Path) Equal(o Path) bool {
	if p.Start != o.Start || len(p.Steps) != len(o.Steps) {
		return false
	}
	for i, d := range p.Steps {
		if o.Steps[i] != d {
			return false
		}
	}
	return true
}
