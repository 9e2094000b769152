package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordhexgame/wordhex/internal/alphabet"
)

func TestPathCells(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")

	p := Path{Start: Coord{X: 0, Y: 0}, Steps: []Direction{3, 5, 3}}
	cells, err := p.Cells(g)
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, cells)
	assert.Equal(t, 4, p.Len())

	letters, err := p.Letters(g)
	require.NoError(t, err)
	assert.Equal(t, alphabet.Decode("ABEF"), letters)
}

func TestPathLeavesGrid(t *testing.T) {
	g := mustParse(t, "AB\nCD")
	p := Path{Start: Coord{X: 1, Y: 0}, Steps: []Direction{3}}
	_, err := p.Cells(g)
	assert.Error(t, err)
}

func TestPathOntoGap(t *testing.T) {
	g := mustParse(t, "A.B")
	p := Path{Start: Coord{X: 0, Y: 0}, Steps: []Direction{3}}
	_, err := p.Cells(g)
	assert.Error(t, err)
}

func TestPathRevisit(t *testing.T) {
	g := mustParse(t, "AB\nCD")
	p := Path{Start: Coord{X: 0, Y: 0}, Steps: []Direction{3, 2}}
	_, err := p.Cells(g)
	assert.Error(t, err)
}

func TestPathBadDirection(t *testing.T) {
	g := mustParse(t, "AB\nCD")
	p := Path{Start: Coord{X: 0, Y: 0}, Steps: []Direction{7}}
	_, err := p.Cells(g)
	assert.Error(t, err)
}

func TestPathFromCellsRoundTrip(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")
	want := Path{Start: Coord{X: 0, Y: 2}, Steps: []Direction{3, 1, 0}}

	cells, err := want.Cells(g)
	require.NoError(t, err)

	got, err := PathFromCells(g, cells)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestPathFromCellsErrors(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")

	_, err := PathFromCells(g, nil)
	assert.Error(t, err)

	// Not adjacent.
	_, err = PathFromCells(g, []Coord{{0, 0}, {2, 2}})
	assert.Error(t, err)

	// Repeated cell.
	_, err = PathFromCells(g, []Coord{{0, 0}, {1, 0}, {0, 0}})
	assert.Error(t, err)
}

func TestStepString(t *testing.T) {
	p := Path{Start: Coord{}, Steps: []Direction{0, 3, 5}}
	assert.Equal(t, "035", p.StepString())
	assert.Equal(t, "", Path{}.StepString())
}
