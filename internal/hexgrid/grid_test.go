package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordhexgame/wordhex/internal/alphabet"
)

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

func TestParseBasic(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 9, g.NumCells())
	assert.Equal(t, []string{"ABC", "DEF", "GHI"}, g.Rows())

	r, ok := g.At(Coord{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, alphabet.DecodeRune('E'), r)
}

func TestParseShavianInput(t *testing.T) {
	// Shavian letters parse the same as their transliteration.
	ascii := mustParse(t, "AB\nCD")
	shavian := mustParse(t, alphabet.Decode("AB")+"\n"+alphabet.Decode("CD"))
	assert.True(t, ascii.Equal(shavian))
}

func TestParseWhitespaceAndPadding(t *testing.T) {
	// Spaces are decoration; short rows pad with gaps; trailing blank
	// lines are dropped.
	g := mustParse(t, " A B C \r\nDE\n\n")
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.False(t, g.Present(Coord{X: 2, Y: 1}))
	assert.Equal(t, []string{"ABC", "DE."}, g.Rows())
}

func TestParseGaps(t *testing.T) {
	g := mustParse(t, "A.B\n.C.")
	assert.True(t, g.Present(Coord{X: 0, Y: 0}))
	assert.False(t, g.Present(Coord{X: 1, Y: 0}))
	assert.True(t, g.Present(Coord{X: 1, Y: 1}))
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"only blanks":      "\n  \n",
		"interior blank":   "AB\n\nCD",
		"unsupported rune": "AB\nC?",
		"digit":            "A1",
		"all gaps":         "...\n...",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedGrid)
		})
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New([]rune{0, 0}, 2, 1)
	assert.ErrorIs(t, err, ErrMalformedGrid)

	_, err = New([]rune{'x'}, 1, 1)
	assert.ErrorIs(t, err, ErrMalformedGrid)

	_, err = New([]rune{alphabet.FirstLetter}, 2, 1)
	assert.ErrorIs(t, err, ErrMalformedGrid)

	g, err := New([]rune{alphabet.FirstLetter, 0}, 2, 1)
	require.NoError(t, err)
	assert.True(t, g.Present(Coord{X: 0, Y: 0}))
	assert.False(t, g.Present(Coord{X: 1, Y: 0}))
}

func TestAtOutOfBounds(t *testing.T) {
	g := mustParse(t, "AB\nCD")
	_, ok := g.At(Coord{X: -1, Y: 0})
	assert.False(t, ok)
	_, ok = g.At(Coord{X: 0, Y: 2})
	assert.False(t, ok)
}

func TestIndexCoordOf(t *testing.T) {
	g := mustParse(t, "ABC\nDEF")
	for i := 0; i < g.NumCells(); i++ {
		assert.Equal(t, i, g.Index(g.CoordOf(i)))
	}
}

func TestAdjacent(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")

	// (1,1) is on an odd row: its up-right neighbor is (2,0).
	assert.True(t, g.Adjacent(Coord{X: 1, Y: 1}, Coord{X: 2, Y: 0}))
	// (1,0) is on an even row: (2,1) is not a neighbor.
	assert.False(t, g.Adjacent(Coord{X: 1, Y: 0}, Coord{X: 2, Y: 1}))
	// Never self-adjacent.
	assert.False(t, g.Adjacent(Coord{X: 1, Y: 1}, Coord{X: 1, Y: 1}))
}

func TestAdjacentGaps(t *testing.T) {
	g := mustParse(t, "A.B")
	assert.False(t, g.Adjacent(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0}))
	assert.False(t, g.Adjacent(Coord{X: 0, Y: 0}, Coord{X: 2, Y: 0}))
}

func TestNeighbors(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")

	// Center of an odd row touches all six.
	n := g.Neighbors(Coord{X: 1, Y: 1})
	assert.Len(t, n, 6)
	assert.Equal(t, []Coord{
		{1, 0}, {2, 0}, {0, 1}, {2, 1}, {1, 2}, {2, 2},
	}, n)

	// Corner of an even row.
	n = g.Neighbors(Coord{X: 0, Y: 0})
	assert.Equal(t, []Coord{{1, 0}, {0, 1}}, n)

	// Gaps have no neighbors.
	gapped := mustParse(t, "A.B")
	assert.Nil(t, gapped.Neighbors(Coord{X: 1, Y: 0}))
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "AB\nCD")
	b := mustParse(t, "AB\nCD")
	c := mustParse(t, "AB\nCE")
	d := mustParse(t, "ABCD")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}
