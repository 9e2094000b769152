// internal/alphabet/alphabet.go
//
// The domain alphabet for WordHex: the 48-letter Shavian block
// (U+10450..U+1047F).
// Responsibilities:
//   - Classify runes as letters of the supported alphabet.
//   - Transliterate between Shavian and a compact ASCII form used in
//     puzzle codes and authoring files ('A'..'Z' then 'a'..'v').
//   - Define the collation order used for alphabetical word lists.
//
// Notes:
//   - The ASCII form exists so that puzzle codes stay single-byte printable
//     text; it is not a phonetic romanization.
//   - Runes outside the alphabet pass through both transliterations
//     unchanged so that '.' gaps and separators survive.

package alphabet

// First and last letters of the Shavian block.
const (
	FirstLetter rune = '\U00010450'
	LastLetter  rune = '\U0001047F'

	// NumLetters is the size of the alphabet.
	NumLetters = int(LastLetter-FirstLetter) + 1
)

// upperRange is how many letters map onto 'A'..'Z'; the remaining
// NumLetters-26 map onto 'a'..'v'.
const upperRange = 26

// IsLetter reports whether r is a letter of the supported alphabet.
func IsLetter(r rune) bool {
	return r >= FirstLetter && r <= LastLetter
}

// Index returns the collation position of r within the alphabet (0..47),
// or -1 if r is not a letter.
func Index(r rune) int {
	if !IsLetter(r) {
		return -1
	}
	return int(r - FirstLetter)
}

// EncodeRune maps a Shavian letter to its ASCII form.
// Non-alphabet runes are returned unchanged.
func EncodeRune(r rune) rune {
	switch {
	case r >= FirstLetter && r < FirstLetter+upperRange:
		return 'A' + (r - FirstLetter)
	case r >= FirstLetter+upperRange && r <= LastLetter:
		return 'a' + (r - FirstLetter - upperRange)
	default:
		return r
	}
}

// DecodeRune maps an ASCII-form letter back to Shavian.
// Non-transliteration runes are returned unchanged, so Shavian input
// passes through decoding untouched.
func DecodeRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return FirstLetter + (r - 'A')
	case r >= 'a' && r <= 'a'+rune(NumLetters-upperRange)-1:
		return FirstLetter + upperRange + (r - 'a')
	default:
		return r
	}
}

// Encode transliterates a string of Shavian letters to ASCII form.
func Encode(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, EncodeRune(r))
	}
	return string(out)
}

// Decode transliterates an ASCII-form string to Shavian letters.
func Decode(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, DecodeRune(r))
	}
	return string(out)
}

// Less reports whether word a collates before word b.
// Collation is plain code-point order, which matches the alphabet's
// defined letter ordering.
func Less(a, b string) bool {
	return a < b
}
