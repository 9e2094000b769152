// internal/game/types.go
//
// Core type definitions for the gameplay state machine.
// Defines:
//   - Phase: SelectingPuzzle → Playing → Finished (terminal).
//   - Outcome: result of committing a trace.
//   - RevealMode: the player's level-2 hint presentation choice.
//   - Snapshot/WordView: read-only views for the display layer.

package game

import (
	"errors"

	"github.com/wordhexgame/wordhex/internal/hexgrid"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

// ErrInvalidAction marks a rejected player action (non-adjacent or
// already-used trace cell, out-of-range hint level). The session state
// is unchanged; callers may ignore it.
var ErrInvalidAction = errors.New("invalid action")

// Phase is the coarse session state.
type Phase string

const (
	// PhaseSelecting is the pre-session state owned by the hosting
	// layer: no puzzle loaded yet. A Session is born Playing.
	PhaseSelecting Phase = "selecting"
	PhasePlaying   Phase = "playing"
	PhaseFinished  Phase = "finished"
)

// Outcome classifies the result of EndTrace.
type Outcome string

const (
	// OutcomeNone: EndTrace without an active trace.
	OutcomeNone Outcome = "none"
	// OutcomeTooShort: fewer than the minimum word length.
	OutcomeTooShort Outcome = "too_short"
	// OutcomeMiss: the letters are not in the puzzle's word table.
	OutcomeMiss Outcome = "miss"
	// OutcomeAlreadyFound: a repeat of any previously found word.
	OutcomeAlreadyFound Outcome = "already_found"
	// OutcomeFound: a new normal word; score increased.
	OutcomeFound Outcome = "found"
	// OutcomeBonus: a new bonus word; secondary tally increased.
	OutcomeBonus Outcome = "bonus"
	// OutcomeExcluded: a one-shot notice for an excluded word; no
	// effect on score or counts.
	OutcomeExcluded Outcome = "excluded"
)

// TraceResult is what EndTrace reports to the display layer.
type TraceResult struct {
	Outcome Outcome `json:"outcome"`
	Word    string  `json:"word,omitempty"`
	Points  int     `json:"points,omitempty"`
	// Finished is set on the trace that completes the puzzle.
	Finished bool `json:"finished,omitempty"`
}

// RevealMode selects the level-2 hint presentation.
type RevealMode string

const (
	// RevealAlphabetical merges unfound words into the list in
	// collation order.
	RevealAlphabetical RevealMode = "alphabetical"
	// RevealPartial exposes leading/trailing letters of unfound words.
	RevealPartial RevealMode = "partial"
)

// WordView is one row of the displayed word list, redacted according
// to the current hint level.
type WordView struct {
	Display string `json:"display"`
	Length  int    `json:"length"`
	Found   bool   `json:"found"`
	// Class is only revealed for found words.
	Class string `json:"class,omitempty"`
}

// Snapshot is the read-only view the state machine exposes to the
// display boundary. Everything in it is derived; nothing leaks puzzle
// internals beyond what the hint level allows.
type Snapshot struct {
	Phase      Phase           `json:"phase"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	GridRows   []string        `json:"gridRows"`
	Score      int             `json:"score"`
	BonusFound int             `json:"bonusFound"`
	WordsFound int             `json:"wordsFound"`
	WordsTotal int             `json:"wordsTotal"`
	Misses     int             `json:"misses"`
	HintLevel  int             `json:"hintLevel"`
	RevealMode RevealMode      `json:"revealMode"`
	Trace      []hexgrid.Coord `json:"trace"`
	// Counts is populated from hint level 1 upward.
	Counts []puzzle.CellCounts `json:"counts,omitempty"`
	Words  []WordView          `json:"words"`
}
