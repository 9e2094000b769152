// internal/game/hints.go
//
// Progressive hint disclosure. All pure functions over the puzzle's
// word table and a found-set:
//
//	level 0: nothing beyond found words and lengths
//	level 1: per-cell start/contains counts
//	level 2: alphabetical insertion of unfound words, or a partial
//	         letter reveal, per the player's toggle
//
// Raising the level only ever adds information per unfound word.

package game

import (
	"strings"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// redactRune fills the hidden positions of an unfound word.
const redactRune = '·'

// revealHead and revealTail are the number of leading/trailing letters
// a partial reveal exposes. 1+1 never gives away a whole word at the
// minimum word length of 4.
const (
	revealHead = 1
	revealTail = 1
)

// partialReveal redacts word down to its first revealHead and last
// revealTail letters.
func partialReveal(word string) string {
	runes := []rune(word)
	var b strings.Builder
	for i, r := range runes {
		if i < revealHead || i >= len(runes)-revealTail {
			b.WriteRune(r)
		} else {
			b.WriteRune(redactRune)
		}
	}
	return b.String()
}

// redacted hides every letter of a word of the given length.
func redacted(length int) string {
	return strings.Repeat(string(redactRune), length)
}

// wordViews builds the displayed word list.
//
// Found words appear in discovery order and always show their letters
// and classification. Unfound normal/bonus words appear redacted; at
// hint level 2 with the alphabetical toggle they are merged into the
// list in collation order, and with the partial toggle they expose
// their leading/trailing letters. Excluded words appear only once
// found.
func wordViews(p *puzzle.Puzzle, foundOrder []int, level int, mode RevealMode) []WordView {
	foundSet := make(map[int]bool, len(foundOrder))
	for _, i := range foundOrder {
		foundSet[i] = true
	}

	found := make([]WordView, 0, len(foundOrder))
	for _, i := range foundOrder {
		w := p.Words[i]
		found = append(found, WordView{
			Display: w.Letters,
			Length:  runeLen(w.Letters),
			Found:   true,
			Class:   w.Class.String(),
		})
	}

	type unfoundWord struct {
		letters string
		view    WordView
	}
	var unfound []unfoundWord
	for i, w := range p.Words {
		if foundSet[i] || w.Class == puzzle.Excluded {
			continue
		}
		n := runeLen(w.Letters)
		display := redacted(n)
		if level >= 2 && mode == RevealPartial {
			display = partialReveal(w.Letters)
		}
		unfound = append(unfound, unfoundWord{
			letters: w.Letters,
			view:    WordView{Display: display, Length: n},
		})
	}

	if level < 2 || mode != RevealAlphabetical {
		out := found
		for _, u := range unfound {
			out = append(out, u.view)
		}
		return out
	}

	// Alphabetical insertion: unfound words (already in collation
	// order from the word table) slot in before the first found word
	// that collates after them; found words keep discovery order.
	out := make([]WordView, 0, len(found)+len(unfound))
	fi := 0
	for _, u := range unfound {
		for fi < len(found) && !alphabet.Less(u.letters, found[fi].Display) {
			out = append(out, found[fi])
			fi++
		}
		out = append(out, u.view)
	}
	out = append(out, found[fi:]...)
	return out
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
