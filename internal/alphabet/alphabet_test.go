package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetBounds(t *testing.T) {
	assert.Equal(t, 48, NumLetters)
	assert.True(t, IsLetter(FirstLetter))
	assert.True(t, IsLetter(LastLetter))
	assert.False(t, IsLetter(FirstLetter-1))
	assert.False(t, IsLetter(LastLetter+1))
	assert.False(t, IsLetter('A'))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(FirstLetter))
	assert.Equal(t, NumLetters-1, Index(LastLetter))
	assert.Equal(t, -1, Index('z'))
}

func TestTransliterationRoundTrip(t *testing.T) {
	// Every letter must survive Shavian -> ASCII -> Shavian.
	for r := FirstLetter; r <= LastLetter; r++ {
		ascii := EncodeRune(r)
		require.NotEqual(t, r, ascii)
		assert.Equal(t, r, DecodeRune(ascii))
	}
}

func TestTransliterationRanges(t *testing.T) {
	assert.Equal(t, 'A', EncodeRune(FirstLetter))
	assert.Equal(t, 'Z', EncodeRune(FirstLetter+25))
	assert.Equal(t, 'a', EncodeRune(FirstLetter+26))
	assert.Equal(t, 'v', EncodeRune(LastLetter))
}

func TestNonLettersPassThrough(t *testing.T) {
	assert.Equal(t, '.', EncodeRune('.'))
	assert.Equal(t, '.', DecodeRune('.'))
	assert.Equal(t, '/', DecodeRune('/'))
	// 'w'..'z' are outside the lowercase transliteration range.
	assert.Equal(t, 'w', DecodeRune('w'))
	assert.Equal(t, 'z', DecodeRune('z'))
}

func TestStringForms(t *testing.T) {
	shavian := Decode("ABcd")
	assert.Equal(t, "ABcd", Encode(shavian))
	// Decoding Shavian input is a no-op.
	assert.Equal(t, shavian, Decode(shavian))
}

func TestLess(t *testing.T) {
	a := Decode("ABEF")
	b := Decode("DEIH")
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.False(t, Less(a, a))
}
