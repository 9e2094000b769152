package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordhexgame/wordhex/internal/dictionary"
	"github.com/wordhexgame/wordhex/internal/game"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// Full pipeline over a ragged honeycomb in native Shavian: compile,
// encode, decode, then play the word back along its exact path.
func TestHoneycombPlaythrough(t *testing.T) {
	const gridText = "𐑱𐑖𐑩\n𐑼𐑦𐑤𐑯\n𐑦𐑑𐑟𐑮𐑴"
	const word = "𐑱𐑼𐑦𐑑" // (0,0) -> (0,1) -> (1,1) -> (1,2)

	res, err := Build(context.Background(), Input{
		GridText: gridText,
		Dict:     dictionary.New([]string{word}),
	})
	require.NoError(t, err)
	require.Len(t, res.Puzzle.Words, 1)
	assert.Equal(t, word, res.Puzzle.Words[0].Letters)

	// Short rows pad with gaps to the bounding width.
	g := res.Puzzle.Grid
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.False(t, g.Present(hexgrid.Coord{X: 3, Y: 0}))
	assert.False(t, g.Present(hexgrid.Coord{X: 4, Y: 1}))

	code, err := puzzle.Save(res.Puzzle)
	require.NoError(t, err)
	decoded, err := puzzle.Load(code)
	require.NoError(t, err)
	require.True(t, res.Puzzle.Equal(decoded))

	s := game.NewSession(0, decoded)
	require.NoError(t, s.BeginTrace(hexgrid.Coord{X: 0, Y: 0}))
	require.NoError(t, s.ExtendTrace(hexgrid.Coord{X: 0, Y: 1}))
	require.NoError(t, s.ExtendTrace(hexgrid.Coord{X: 1, Y: 1}))
	require.NoError(t, s.ExtendTrace(hexgrid.Coord{X: 1, Y: 2}))

	trace := s.EndTrace()
	assert.Equal(t, game.OutcomeFound, trace.Outcome)
	assert.Equal(t, word, trace.Word)
	assert.Equal(t, trace.Points, s.Score())
	assert.Greater(t, s.Score(), 0)
	assert.True(t, trace.Finished)
	assert.Equal(t, game.PhaseFinished, s.Phase())
}
