package compiler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/dictionary"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

const testGridText = "ABC\nDEF\nGHI"

func testDict() *dictionary.Dictionary {
	return dictionary.New([]string{"ABEF", "DEIH", "EFIH", "GHEB", "QQQQ"})
}

func TestBuild(t *testing.T) {
	res, err := Build(context.Background(), Input{
		GridText: testGridText,
		Dict:     testDict(),
		Bonus:    []string{alphabet.Decode("DEIH"), alphabet.Decode("RRRR")},
		Excluded: []string{alphabet.Decode("EFIH")},
	})
	require.NoError(t, err)

	p := res.Puzzle
	require.Len(t, p.Words, 4)
	assert.Equal(t, 2, p.NumNormal())
	assert.Equal(t, 3, p.NumVisible())

	classes := map[string]puzzle.Classification{}
	for _, w := range p.Words {
		classes[alphabet.Encode(w.Letters)] = w.Class
	}
	assert.Equal(t, puzzle.Normal, classes["ABEF"])
	assert.Equal(t, puzzle.Bonus, classes["DEIH"])
	assert.Equal(t, puzzle.Excluded, classes["EFIH"])
	assert.Equal(t, puzzle.Normal, classes["GHEB"])

	// RRRR is on the bonus list but not in the grid.
	assert.Equal(t, []string{alphabet.Decode("RRRR")}, res.UnknownBonus)
	assert.Empty(t, res.UnknownExcluded)
}

func TestBuildExcludedBeatsBonus(t *testing.T) {
	res, err := Build(context.Background(), Input{
		GridText: testGridText,
		Dict:     testDict(),
		Bonus:    []string{alphabet.Decode("EFIH")},
		Excluded: []string{alphabet.Decode("EFIH")},
	})
	require.NoError(t, err)

	i, ok := res.Puzzle.Lookup(alphabet.Decode("EFIH"))
	require.True(t, ok)
	assert.Equal(t, puzzle.Excluded, res.Puzzle.Words[i].Class)
}

func TestBuildDeterministicAcrossWorkers(t *testing.T) {
	var codes []string
	for _, workers := range []int{0, 1, 4, 16} {
		res, err := Build(context.Background(), Input{
			GridText: testGridText,
			Dict:     testDict(),
			Workers:  workers,
		})
		require.NoError(t, err)
		code, err := puzzle.Save(res.Puzzle)
		require.NoError(t, err)
		codes = append(codes, code)
	}
	for _, code := range codes[1:] {
		assert.Equal(t, codes[0], code)
	}
}

func TestBuildRoundTripsThroughCode(t *testing.T) {
	res, err := Build(context.Background(), Input{GridText: testGridText, Dict: testDict()})
	require.NoError(t, err)

	code, err := puzzle.Save(res.Puzzle)
	require.NoError(t, err)
	decoded, err := puzzle.Load(code)
	require.NoError(t, err)
	assert.True(t, res.Puzzle.Equal(decoded))
}

func TestBuildMalformedGrid(t *testing.T) {
	_, err := Build(context.Background(), Input{GridText: "A?C", Dict: testDict()})
	assert.Error(t, err)
}

func TestBuildEmptyWordList(t *testing.T) {
	res, err := Build(context.Background(), Input{
		GridText: testGridText,
		Dict:     dictionary.New([]string{"QQQQ"}),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Puzzle.Words)
}

func TestReadWordList(t *testing.T) {
	in := strings.NewReader("# curated\nABEF\n\nDEIH\n")
	words, err := ReadWordList(in)
	require.NoError(t, err)
	assert.Equal(t, []string{alphabet.Decode("ABEF"), alphabet.Decode("DEIH")}, words)
}

func TestReport(t *testing.T) {
	res, err := Build(context.Background(), Input{
		GridText: testGridText,
		Dict:     testDict(),
		Bonus:    []string{alphabet.Decode("DEIH")},
		Excluded: []string{alphabet.Decode("EFIH")},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Report(&buf, res, false)
	out := buf.String()

	assert.Contains(t, out, "(ABEF)")
	assert.Contains(t, out, "(bonus)")
	assert.Contains(t, out, "(excluded)")
	assert.Contains(t, out, "4 words (2 normal, 3 visible)")
	// Plain output carries no escape codes.
	assert.NotContains(t, out, "\x1b[")
}
