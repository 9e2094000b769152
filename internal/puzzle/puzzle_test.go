package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
)

// testPuzzle builds the shared fixture:
//
//	A B C
//	 D E F
//	G H I
//
// with ABEF and GHEB normal, DEIH bonus, EFIH excluded.
func testPuzzle(t *testing.T) *Puzzle {
	t.Helper()
	g, err := hexgrid.Parse("ABC\nDEF\nGHI")
	require.NoError(t, err)

	words := []Word{
		{Letters: alphabet.Decode("ABEF"), Class: Normal,
			Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 0, Y: 0}, Steps: []hexgrid.Direction{3, 5, 3}}}},
		{Letters: alphabet.Decode("DEIH"), Class: Bonus,
			Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 0, Y: 1}, Steps: []hexgrid.Direction{3, 5, 2}}}},
		{Letters: alphabet.Decode("EFIH"), Class: Excluded,
			Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 1, Y: 1}, Steps: []hexgrid.Direction{3, 4, 2}}}},
		{Letters: alphabet.Decode("GHEB"), Class: Normal,
			Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 0, Y: 2}, Steps: []hexgrid.Direction{3, 1, 0}}}},
	}
	p, err := New(g, words)
	require.NoError(t, err)
	return p
}

func TestNewAndLookup(t *testing.T) {
	p := testPuzzle(t)
	assert.Equal(t, 2, p.NumNormal())
	assert.Equal(t, 3, p.NumVisible())
	assert.Equal(t, 8, p.NormalLetters())

	i, ok := p.Lookup(alphabet.Decode("GHEB"))
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = p.Lookup(alphabet.Decode("ABED"))
	assert.False(t, ok)
}

func TestNewRejectsShortWord(t *testing.T) {
	g, err := hexgrid.Parse("ABC\nDEF\nGHI")
	require.NoError(t, err)
	_, err = New(g, []Word{{Letters: alphabet.Decode("ABE"),
		Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 0, Y: 0}, Steps: []hexgrid.Direction{3, 5}}}}})
	assert.Error(t, err)
}

func TestNewRejectsPathlessWord(t *testing.T) {
	g, err := hexgrid.Parse("ABC\nDEF\nGHI")
	require.NoError(t, err)
	_, err = New(g, []Word{{Letters: alphabet.Decode("ABEF")}})
	assert.Error(t, err)
}

func TestNewRejectsMisspellingPath(t *testing.T) {
	g, err := hexgrid.Parse("ABC\nDEF\nGHI")
	require.NoError(t, err)
	// The path spells ABEF, not ABED.
	_, err = New(g, []Word{{Letters: alphabet.Decode("ABED"),
		Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 0, Y: 0}, Steps: []hexgrid.Direction{3, 5, 3}}}}})
	assert.Error(t, err)
}

func TestNewRejectsDuplicateWord(t *testing.T) {
	g, err := hexgrid.Parse("ABC\nDEF\nGHI")
	require.NoError(t, err)
	w := Word{Letters: alphabet.Decode("ABEF"),
		Paths: []hexgrid.Path{{Start: hexgrid.Coord{X: 0, Y: 0}, Steps: []hexgrid.Direction{3, 5, 3}}}}
	_, err = New(g, []Word{w, w})
	assert.Error(t, err)
}

func TestClassificationStrings(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "bonus", Bonus.String())
	assert.Equal(t, "excluded", Excluded.String())
}

func TestCountsFor(t *testing.T) {
	p := testPuzzle(t)

	all := CountsFor(p, func(int) bool { return true })

	// E (1,1) is visited by ABEF, DEIH, and GHEB; excluded EFIH never
	// counts. Only DEIH starts at D.
	e := all.At(hexgrid.Coord{X: 1, Y: 1})
	assert.Equal(t, 0, e.Starts)
	assert.Equal(t, 3, e.Visits)

	d := all.At(hexgrid.Coord{X: 0, Y: 1})
	assert.Equal(t, 1, d.Starts)
	assert.Equal(t, 1, d.Visits)

	a := all.At(hexgrid.Coord{X: 0, Y: 0})
	assert.Equal(t, 1, a.Starts)
	assert.Equal(t, 1, a.Visits)

	// C is on no path.
	c := all.At(hexgrid.Coord{X: 2, Y: 0})
	assert.Equal(t, 0, c.Starts)
	assert.Equal(t, 0, c.Visits)

	// Finding ABEF (index 0) removes its contribution.
	rest := CountsFor(p, func(i int) bool { return i != 0 })
	assert.Equal(t, 2, rest.At(hexgrid.Coord{X: 1, Y: 1}).Visits)
	assert.Equal(t, 0, rest.At(hexgrid.Coord{X: 0, Y: 0}).Visits)

	assert.Len(t, all.Cells(), p.Grid.NumCells())
}

func TestPuzzleEqual(t *testing.T) {
	a := testPuzzle(t)
	b := testPuzzle(t)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	b.Words[0].Class = Bonus
	assert.False(t, a.Equal(b))
}
