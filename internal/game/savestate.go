// internal/game/savestate.go
//
// Compact resume snapshot for a single session:
//
//	<misses hex>.<hints used 0|1>.<found-word bitmap hex>
//
// The bitmap is little-endian over 32-bit chunks: bit i set means the
// word at table index i has been found. All chunks before the last
// are zero-padded to 8 hex digits; the last is printed minimally.
// This is the only cross-session state the core carries; the hosting
// layer decides where to store the string.

package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// SaveState serializes the session's durable bits.
func (s *Session) SaveState() string {
	var chunks []uint32
	for _, idx := range s.found {
		pos := idx / 32
		for len(chunks) <= pos {
			chunks = append(chunks, 0)
		}
		chunks[pos] |= 1 << (idx % 32)
	}

	hintsUsed := 0
	if s.maxLevel > 0 {
		hintsUsed = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%x.%d.", s.misses, hintsUsed)

	// Trim trailing zero chunks, print the last one minimally.
	last := len(chunks) - 1
	for last >= 0 && chunks[last] == 0 {
		last--
	}
	if last < 0 {
		b.WriteByte('0')
	} else {
		for _, c := range chunks[:last] {
			fmt.Fprintf(&b, "%08x", c)
		}
		fmt.Fprintf(&b, "%x", chunks[last])
	}
	return b.String()
}

// RestoreState applies a SaveState string to a fresh session,
// replaying found words in table-index order and recomputing the
// score. Discovery order is not preserved across a resume.
func (s *Session) RestoreState(state string) error {
	parts := strings.Split(state, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: bad save state", ErrInvalidAction)
	}

	misses, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return fmt.Errorf("%w: bad miss count", ErrInvalidAction)
	}
	hintsUsed := parts[1]
	if hintsUsed != "0" && hintsUsed != "1" {
		return fmt.Errorf("%w: bad hints flag", ErrInvalidAction)
	}

	indices, err := parseBitmap(parts[2])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	for _, idx := range indices {
		if idx >= len(s.Puzzle.Words) {
			return fmt.Errorf("%w: word index %d out of range", ErrInvalidAction, idx)
		}
	}

	// Reset and replay.
	s.phase = PhasePlaying
	s.found = nil
	s.foundSet = make(map[int]bool)
	s.score = 0
	s.bonusFound = 0
	s.misses = int(misses)
	if hintsUsed == "1" && s.maxLevel == 0 {
		s.maxLevel = 1
	}

	for _, idx := range indices {
		s.foundSet[idx] = true
		s.found = append(s.found, idx)
		switch w := s.Puzzle.Words[idx]; w.Class {
		case puzzle.Normal:
			s.score += s.scores.PointsFor(runeLen(w.Letters))
		case puzzle.Bonus:
			s.bonusFound++
		}
	}
	s.checkFinished()
	return nil
}

// parseBitmap decodes the little-endian chunked hex form back to a
// sorted list of set bit positions.
func parseBitmap(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty bitmap")
	}

	var chunks []uint32
	for len(s) > 8 {
		v, err := strconv.ParseUint(s[:8], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad bitmap chunk %q", s[:8])
		}
		chunks = append(chunks, uint32(v))
		s = s[8:]
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad bitmap chunk %q", s)
	}
	chunks = append(chunks, uint32(v))

	var out []int
	for pos, c := range chunks {
		for bit := 0; bit < 32; bit++ {
			if c&(1<<bit) != 0 {
				out = append(out, pos*32+bit)
			}
		}
	}
	return out, nil
}
