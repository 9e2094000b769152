package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	good, err := Encode(testPuzzle(t))
	require.NoError(t, err)

	in := strings.Join([]string{
		"# header comment",
		"",
		good,
		"w1;garbage",
		"w1;3x2;AB./CDE;00352,05202",
	}, "\n")

	c, err := LoadCatalog(strings.NewReader(in))
	require.NoError(t, err)
	// The garbage line is skipped, not fatal; ids stay dense.
	require.Equal(t, 2, c.Len())

	e1, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, good, e1.Code)
	assert.True(t, testPuzzle(t).Equal(e1.Puzzle))

	e2, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, 2, e2.ID)

	_, ok = c.Get(0)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.False(t, ok)

	assert.Len(t, c.Entries(), 2)
}

func TestLoadCatalogEmpty(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
