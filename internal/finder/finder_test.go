package finder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/dictionary"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
)

// testGrid is the shared fixture:
//
//	A B C
//	 D E F
//	G H I
//
// ABEF, DEIH, EFIH, and GHEB are traceable; AAAA is not.
func testGrid(t *testing.T) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.Parse("ABC\nDEF\nGHI")
	require.NoError(t, err)
	return g
}

func testDict() *dictionary.Dictionary {
	return dictionary.New([]string{"ABEF", "DEIH", "EFIH", "GHEB", "AAAA", "ABE"})
}

func TestFind(t *testing.T) {
	found := Find(testGrid(t), testDict(), 0)

	letters := make([]string, len(found))
	for i, fw := range found {
		letters[i] = alphabet.Encode(fw.Letters)
	}
	assert.Equal(t, []string{"ABEF", "DEIH", "EFIH", "GHEB"}, letters)

	// Each word in this grid has exactly one route.
	for _, fw := range found {
		assert.Len(t, fw.Paths, 1, "word %s", alphabet.Encode(fw.Letters))
	}

	// Spot-check one path.
	p := found[0].Paths[0]
	assert.Equal(t, hexgrid.Coord{X: 0, Y: 0}, p.Start)
	assert.Equal(t, "353", p.StepString())
}

func TestFindRespectsMinLength(t *testing.T) {
	// ABE is a dictionary word but below the default minimum.
	found := Find(testGrid(t), testDict(), 0)
	for _, fw := range found {
		assert.GreaterOrEqual(t, len([]rune(fw.Letters)), MinWordLength)
	}

	// Lowering the minimum surfaces it.
	found = Find(testGrid(t), testDict(), 3)
	letters := make([]string, len(found))
	for i, fw := range found {
		letters[i] = alphabet.Encode(fw.Letters)
	}
	assert.Contains(t, letters, "ABE")
}

func TestFindPathsNeverReuseCells(t *testing.T) {
	g := testGrid(t)
	for _, fw := range Find(g, testDict(), 0) {
		for _, p := range fw.Paths {
			cells, err := p.Cells(g)
			require.NoError(t, err)
			seen := make(map[hexgrid.Coord]bool)
			for _, c := range cells {
				assert.False(t, seen[c])
				seen[c] = true
			}
		}
	}
}

func TestFindAlternatePaths(t *testing.T) {
	// A B
	//  B A
	// ABBA must use all four cells, and either B can come second, so
	// the word has multiple routes.
	g, err := hexgrid.Parse("AB\nBA")
	require.NoError(t, err)
	d := dictionary.New([]string{"ABBA"})

	found := Find(g, d, 0)
	require.Len(t, found, 1)
	assert.GreaterOrEqual(t, len(found[0].Paths), 2)
}

func TestFindParallelMatchesSerial(t *testing.T) {
	g := testGrid(t)
	d := testDict()

	serial := Find(g, d, 0)
	for _, workers := range []int{2, 4, 16} {
		parallel, err := FindParallel(context.Background(), g, d, 0, workers)
		require.NoError(t, err)
		require.Len(t, parallel, len(serial))
		for i := range serial {
			assert.Equal(t, serial[i].Letters, parallel[i].Letters)
			require.Len(t, parallel[i].Paths, len(serial[i].Paths))
			for j := range serial[i].Paths {
				assert.True(t, serial[i].Paths[j].Equal(parallel[i].Paths[j]))
			}
		}
	}
}

func TestFindParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FindParallel(ctx, testGrid(t), testDict(), 0, 4)
	assert.Error(t, err)
}

func TestFindEmptyVocabulary(t *testing.T) {
	d := dictionary.New([]string{"QQQQ"})
	assert.Empty(t, Find(testGrid(t), d, 0))
}
