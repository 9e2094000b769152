// internal/game/session.go
//
// Gameplay state machine for one puzzle session.
// Responsibilities:
//   - Build a candidate path interactively (begin/extend/end trace)
//     under the same adjacency/no-repeat rules the compiler used.
//   - Commit a trace against the puzzle's own word table (never a live
//     dictionary — the puzzle is self-contained).
//   - Track found words, misses, hint level, and the derived score.
//
// All operations are synchronous in-memory mutations with no I/O.
// A Session is owned by whatever hosts one puzzle play-through; the
// hosting layer must serialize events before they reach it. Multiple
// sessions over one shared immutable Puzzle are fine.

package game

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/wordhexgame/wordhex/internal/hexgrid"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// Session is the mutable game state over a shared read-only Puzzle.
type Session struct {
	ID       string
	PuzzleID int
	Puzzle   *puzzle.Puzzle

	phase      Phase
	found      []int // word indices in discovery order
	foundSet   map[int]bool
	trace      []hexgrid.Coord
	tracing    bool
	hintLevel  int
	maxLevel   int // high-water mark; disclosure is monotonic
	revealMode RevealMode
	misses     int
	score      int
	bonusFound int

	scores ScoreTable
}

// NewSession starts play over p. puzzleID is the catalog id (0 for
// ad-hoc codes).
func NewSession(puzzleID int, p *puzzle.Puzzle) *Session {
	return &Session{
		ID:         randomID(),
		PuzzleID:   puzzleID,
		Puzzle:     p,
		phase:      PhasePlaying,
		foundSet:   make(map[int]bool),
		revealMode: RevealAlphabetical,
		scores:     DefaultScoreTable(),
	}
}

// SetScoreTable replaces the scoring schedule. Only sensible before
// any word has been found.
func (s *Session) SetScoreTable(t ScoreTable) { s.scores = t }

// Phase returns the coarse session state.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the derived primary score. It is never stored
// independently of the found-set.
func (s *Session) Score() int { return s.score }

// BonusFound returns the secondary bonus tally.
func (s *Session) BonusFound() int { return s.bonusFound }

// Misses counts committed traces that matched nothing.
func (s *Session) Misses() int { return s.misses }

// HintLevel returns the currently displayed hint level.
func (s *Session) HintLevel() int { return s.hintLevel }

// HintsUsed reports whether the session ever raised the hint level.
func (s *Session) HintsUsed() bool { return s.maxLevel > 0 }

// WordsFound counts found non-excluded words.
func (s *Session) WordsFound() int {
	n := 0
	for _, i := range s.found {
		if s.Puzzle.Words[i].Class != puzzle.Excluded {
			n++
		}
	}
	return n
}

// ----------------------------- tracing -------------------------------

// BeginTrace starts a new candidate path at cell c, discarding any
// trace in progress. The cell must hold a letter.
func (s *Session) BeginTrace(c hexgrid.Coord) error {
	if s.phase != PhasePlaying || !s.Puzzle.Grid.Present(c) {
		return ErrInvalidAction
	}
	s.trace = s.trace[:0]
	s.trace = append(s.trace, c)
	s.tracing = true
	return nil
}

// ExtendTrace appends cell c to the trace. c must hold a letter, be
// adjacent to the trace head, and not already be part of the trace;
// otherwise the action is rejected and the state unchanged.
func (s *Session) ExtendTrace(c hexgrid.Coord) error {
	if s.phase != PhasePlaying || !s.tracing || !s.Puzzle.Grid.Present(c) {
		return ErrInvalidAction
	}
	head := s.trace[len(s.trace)-1]
	if !s.Puzzle.Grid.Adjacent(head, c) {
		return ErrInvalidAction
	}
	for _, used := range s.trace {
		if used == c {
			return ErrInvalidAction
		}
	}
	s.trace = append(s.trace, c)
	return nil
}

// EndTrace commits the trace against the word table and discards it
// regardless of outcome.
func (s *Session) EndTrace() TraceResult {
	cells := s.trace
	s.trace = nil
	tracing := s.tracing
	s.tracing = false

	if !tracing || len(cells) == 0 {
		return TraceResult{Outcome: OutcomeNone}
	}
	if len(cells) < puzzle.MinWordLength {
		return TraceResult{Outcome: OutcomeTooShort}
	}

	// Trace construction enforced the same adjacency/no-repeat rules,
	// so the conversion cannot fail.
	path, _ := hexgrid.PathFromCells(s.Puzzle.Grid, cells)
	word, _ := path.Letters(s.Puzzle.Grid)

	idx, ok := s.Puzzle.Lookup(word)
	if !ok {
		s.misses++
		return TraceResult{Outcome: OutcomeMiss}
	}
	if s.foundSet[idx] {
		return TraceResult{Outcome: OutcomeAlreadyFound, Word: word}
	}

	s.foundSet[idx] = true
	s.found = append(s.found, idx)

	w := s.Puzzle.Words[idx]
	switch w.Class {
	case puzzle.Excluded:
		// One-shot notice; no effect on score or the visible counts.
		return TraceResult{Outcome: OutcomeExcluded, Word: word}
	case puzzle.Bonus:
		s.bonusFound++
		return TraceResult{Outcome: OutcomeBonus, Word: word}
	default:
		points := s.scores.PointsFor(runeLen(word))
		s.score += points
		finished := s.checkFinished()
		return TraceResult{Outcome: OutcomeFound, Word: word, Points: points, Finished: finished}
	}
}

// checkFinished flips the session to Finished once every normal word
// has been found. Bonus/excluded discovery never gates completion.
func (s *Session) checkFinished() bool {
	foundNormal := 0
	for _, i := range s.found {
		if s.Puzzle.Words[i].Class == puzzle.Normal {
			foundNormal++
		}
	}
	if foundNormal == s.Puzzle.NumNormal() {
		s.phase = PhaseFinished
		return true
	}
	return false
}

// ------------------------------ hints --------------------------------

// SetHintLevel moves the displayed hint level to n (0..2). Raising is
// always legal; lowering is cosmetic and never re-hides information
// already used (the high-water mark is kept).
func (s *Session) SetHintLevel(n int) error {
	if n < 0 || n > 2 {
		return ErrInvalidAction
	}
	s.hintLevel = n
	if n > s.maxLevel {
		s.maxLevel = n
	}
	return nil
}

// SetRevealMode switches the level-2 presentation between
// alphabetical insertion and partial reveal.
func (s *Session) SetRevealMode(m RevealMode) error {
	if m != RevealAlphabetical && m != RevealPartial {
		return ErrInvalidAction
	}
	s.revealMode = m
	return nil
}

// SuggestedHintLevel derives a level from progress: the fraction of
// normal-word letters found, spread over the three levels.
func (s *Session) SuggestedHintLevel() int {
	total := s.Puzzle.NormalLetters()
	if total == 0 {
		return 0
	}
	lettersFound := 0
	for _, i := range s.found {
		if w := s.Puzzle.Words[i]; w.Class == puzzle.Normal {
			lettersFound += runeLen(w.Letters)
		}
	}
	level := lettersFound * 3 / total
	if level > 2 {
		level = 2
	}
	return level
}

// ----------------------------- snapshot ------------------------------

// Snapshot renders the read-only view for the display layer, redacted
// to the current hint level.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		Width:      s.Puzzle.Grid.Width(),
		Height:     s.Puzzle.Grid.Height(),
		GridRows:   s.Puzzle.Grid.Rows(),
		Score:      s.score,
		BonusFound: s.bonusFound,
		WordsFound: s.WordsFound(),
		WordsTotal: s.Puzzle.NumVisible(),
		Misses:     s.misses,
		HintLevel:  s.hintLevel,
		RevealMode: s.revealMode,
		Trace:      append([]hexgrid.Coord(nil), s.trace...),
		Words:      wordViews(s.Puzzle, s.found, s.hintLevel, s.revealMode),
	}
	if s.hintLevel >= 1 {
		snap.Counts = puzzle.CountsFor(s.Puzzle, func(i int) bool {
			return !s.foundSet[i]
		}).Cells()
	}
	return snap
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
