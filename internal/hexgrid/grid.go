// internal/hexgrid/grid.go
//
// Grid model shared by the compiler and the runtime.
// Responsibilities:
//   - Parse authoring input (rows of letters, '.' gaps, insignificant
//     whitespace) into a rectangular cell table.
//   - Answer presence and letter queries by (x, y) coordinate.
//   - Enumerate present neighbors using the six-direction parity table.
//
// A cell either holds a letter of the supported alphabet or is a gap.
// Gaps are holes: they are never neighbors and never traversable.

package hexgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wordhexgame/wordhex/internal/alphabet"
)

// Gap is the authoring character for a permanent hole in the grid.
const Gap = '.'

// ErrMalformedGrid is the base error for authoring input that violates
// the shape or character rules.
var ErrMalformedGrid = errors.New("malformed grid")

// Coord addresses a cell in the offset hexagonal coordinate system.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	x, y := Step(c.X, c.Y, d)
	return Coord{X: x, Y: y}
}

// Grid is a rectangular bounding box of cells. Immutable after Parse.
type Grid struct {
	cells  []rune // letter, or 0 for a gap; row-major
	width  int
	height int
}

// Parse builds a Grid from authoring input: rows separated by line
// breaks, letters in Shavian or ASCII-transliterated form, '.' for
// gaps. Spaces and tabs carry no meaning and are dropped. Short rows
// are padded with gaps to the bounding width.
func Parse(s string) (*Grid, error) {
	var rows [][]rune
	width := 0

	for lineNum, line := range strings.Split(s, "\n") {
		var row []rune
		for _, r := range line {
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			if r == Gap {
				row = append(row, 0)
				continue
			}
			letter := alphabet.DecodeRune(r)
			if !alphabet.IsLetter(letter) {
				return nil, fmt.Errorf("%w: unsupported character %q on row %d", ErrMalformedGrid, r, lineNum+1)
			}
			row = append(row, letter)
		}
		if len(row) == 0 {
			// Blank lines are allowed only as trailing decoration.
			row = nil
		}
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}

	// Drop trailing blank rows.
	for len(rows) > 0 && rows[len(rows)-1] == nil {
		rows = rows[:len(rows)-1]
	}

	if width == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}
	hasLetter := false
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: blank row %d inside grid", ErrMalformedGrid, i+1)
		}
		for _, r := range row {
			if r != 0 {
				hasLetter = true
			}
		}
	}
	if !hasLetter {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}

	g := &Grid{
		cells:  make([]rune, width*len(rows)),
		width:  width,
		height: len(rows),
	}
	for y, row := range rows {
		copy(g.cells[y*width:], row)
	}
	return g, nil
}

// New builds a Grid directly from a row-major cell table. Used by the
// puzzle codec, which has already validated every cell. A zero rune
// marks a gap.
func New(cells []rune, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d for %d cells", ErrMalformedGrid, width, height, len(cells))
	}
	hasLetter := false
	for _, r := range cells {
		if r == 0 {
			continue
		}
		if !alphabet.IsLetter(r) {
			return nil, fmt.Errorf("%w: unsupported cell %q", ErrMalformedGrid, r)
		}
		hasLetter = true
	}
	if !hasLetter {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}
	g := &Grid{cells: make([]rune, len(cells)), width: width, height: height}
	copy(g.cells, cells)
	return g, nil
}

// Width returns the bounding-box width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the bounding-box height in cells.
func (g *Grid) Height() int { return g.height }

// NumCells returns width*height, the size of the cell table.
func (g *Grid) NumCells() int { return len(g.cells) }

// InBounds reports whether c lies within the bounding box.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the letter at c and whether a letter is present there.
// Out-of-bounds coordinates and gaps both report absent.
func (g *Grid) At(c Coord) (rune, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	r := g.cells[c.Y*g.width+c.X]
	return r, r != 0
}

// Present reports whether c holds a letter.
func (g *Grid) Present(c Coord) bool {
	_, ok := g.At(c)
	return ok
}

// Index flattens c to a row-major cell index. The caller must ensure c
// is in bounds.
func (g *Grid) Index(c Coord) int { return c.Y*g.width + c.X }

// CoordOf is the inverse of Index.
func (g *Grid) CoordOf(i int) Coord {
	return Coord{X: i % g.width, Y: i / g.width}
}

// Adjacent reports whether a and b are hex neighbors. Gaps are never
// adjacent to anything.
func (g *Grid) Adjacent(a, b Coord) bool {
	if !g.Present(a) || !g.Present(b) {
		return false
	}
	for d := Direction(0); d < NumDirections; d++ {
		if a.Step(d) == b {
			return true
		}
	}
	return false
}

// Neighbors returns the present, in-bounds neighbors of c in the fixed
// direction order.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.Present(c) {
		return nil
	}
	out := make([]Coord, 0, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		if n := c.Step(d); g.Present(n) {
			out = append(out, n)
		}
	}
	return out
}

// Rows renders the grid as authoring-style row strings in ASCII form,
// with '.' for gaps. Used by the codec and the compiler report.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		for x := 0; x < g.width; x++ {
			r := g.cells[y*g.width+x]
			if r == 0 {
				b.WriteRune(Gap)
			} else {
				b.WriteRune(alphabet.EncodeRune(r))
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i, r := range g.cells {
		if o.cells[i] != r {
			return false
		}
	}
	return true
}
