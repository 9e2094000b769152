// internal/hexgrid/directions.go
//
// Hex adjacency for a grid whose odd rows are shifted right by half a
// cell. Directions are numbered in a fixed compass order so that word
// paths serialize deterministically:
//
//	0: up-left    1: up-right
//	2: left       3: right
//	4: down-left  5: down-right
//
// On even rows "up-left" is the cell at (x-1, y-1) and "up-right" is
// (x, y-1); on odd rows they are (x, y-1) and (x+1, y-1). The same
// parity shift applies downward.

package hexgrid

import "fmt"

// Direction identifies one of the six hex neighbor directions.
type Direction uint8

// NumDirections is the number of hex neighbor directions.
const NumDirections = 6

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool { return d < NumDirections }

// Digit returns the single ASCII digit used for d in puzzle codes.
func (d Direction) Digit() byte { return '0' + byte(d) }

// ParseDirection converts a puzzle-code digit back to a Direction.
func ParseDirection(b byte) (Direction, error) {
	if b < '0' || b >= '0'+NumDirections {
		return 0, fmt.Errorf("invalid direction digit %q", b)
	}
	return Direction(b - '0'), nil
}

// reverse returns the direction that undoes d.
func (d Direction) reverse() Direction { return NumDirections - 1 - d }

// Step returns the coordinate reached by moving one cell from (x, y)
// in direction d. The result may be out of bounds (including negative);
// callers check against the grid dimensions.
func Step(x, y int, d Direction) (int, int) {
	switch d {
	case 2:
		return x - 1, y
	case 3:
		return x + 1, y
	}

	yOff := -1
	if d >= 4 {
		yOff = 1
	}

	// Horizontal shift depends on the row parity of the source row.
	xOff := int(d&1) - 1 + (y & 1)

	return x + xOff, y + yOff
}
