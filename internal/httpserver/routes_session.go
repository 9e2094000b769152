// internal/httpserver/routes_session.go
//
// Session + trace endpoints. The handlers translate HTTP into the
// state machine's action set and hand back read-only snapshots; all
// game rules live in internal/game. Completed sessions are persisted
// to the results table (best effort, non-fatal).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/wordhexgame/wordhex/internal/game"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
	"github.com/wordhexgame/wordhex/internal/puzzle"
	"github.com/wordhexgame/wordhex/internal/store"
)

// newSessionReq/Res payloads for POST /sessions.
type newSessionReq struct {
	PuzzleID int `json:"puzzleId"`
	// Code lets clients play an ad-hoc puzzle outside the catalog
	// (e.g. authoring previews). Either PuzzleID or Code, not both.
	Code string `json:"code,omitempty"`
	// State resumes from a save-state string.
	State string `json:"state,omitempty"`
}
type newSessionRes struct {
	SessionID string        `json:"sessionId"`
	Snapshot  game.Snapshot `json:"snapshot"`
}

// handleNewSession decodes or looks up the puzzle and opens a session.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var (
		p        *puzzle.Puzzle
		puzzleID int
	)
	switch {
	case req.Code != "" && req.PuzzleID != 0:
		http.Error(w, `{"error":"puzzleId_and_code"}`, http.StatusBadRequest)
		return
	case req.Code != "":
		decoded, err := puzzle.Load(req.Code)
		if err != nil {
			http.Error(w, `{"error":"malformed_code"}`, http.StatusBadRequest)
			return
		}
		p = decoded
	default:
		entry, ok := s.catalog.Get(req.PuzzleID)
		if !ok {
			http.Error(w, `{"error":"unknown_puzzle"}`, http.StatusNotFound)
			return
		}
		p, puzzleID = entry.Puzzle, entry.ID
	}

	sess := game.NewSession(puzzleID, p)
	if req.State != "" {
		if err := sess.RestoreState(req.State); err != nil {
			http.Error(w, `{"error":"bad_state"}`, http.StatusBadRequest)
			return
		}
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Snapshot: sess.Snapshot()})
}

// withSession loads the session, serializes access, and runs fn.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*game.Session)) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"store_error"}`, http.StatusInternalServerError)
		return
	}

	mu := s.sessionLock(id)
	mu.Lock()
	defer mu.Unlock()
	fn(sess)
}

// handleGetSession returns the current snapshot.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *game.Session) {
		_ = json.NewEncoder(w).Encode(sess.Snapshot())
	})
}

// cellReq is the body for trace begin/extend: one grid coordinate.
type cellReq struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// traceRes reports whether the action was accepted plus the live trace.
type traceRes struct {
	OK    bool            `json:"ok"`
	Trace []hexgrid.Coord `json:"trace"`
}

// handleTraceBegin starts a candidate path.
func (s *Server) handleTraceBegin(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.withSession(w, r, func(sess *game.Session) {
		err := sess.BeginTrace(hexgrid.Coord{X: req.X, Y: req.Y})
		_ = json.NewEncoder(w).Encode(traceRes{OK: err == nil, Trace: sess.Snapshot().Trace})
	})
}

// handleTraceExtend appends a cell to the path. Invalid extensions are
// reported as ok=false with the state unchanged — the display layer is
// expected to only offer legal cells, so nothing stronger is needed.
func (s *Server) handleTraceExtend(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.withSession(w, r, func(sess *game.Session) {
		err := sess.ExtendTrace(hexgrid.Coord{X: req.X, Y: req.Y})
		_ = json.NewEncoder(w).Encode(traceRes{OK: err == nil, Trace: sess.Snapshot().Trace})
	})
}

// endTraceRes bundles the outcome with a fresh snapshot.
type endTraceRes struct {
	Result   game.TraceResult `json:"result"`
	Snapshot game.Snapshot    `json:"snapshot"`
}

// handleTraceEnd commits the trace and, when it finishes the puzzle,
// persists the result row and bumps player stats.
func (s *Server) handleTraceEnd(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *game.Session) {
		result := sess.EndTrace()

		if result.Finished {
			s.persistResult(w, r, sess)
		}
		_ = json.NewEncoder(w).Encode(endTraceRes{Result: result, Snapshot: sess.Snapshot()})
	})
}

// hintsReq is the body for POST /sessions/{id}/hints.
type hintsReq struct {
	Level int             `json:"level"`
	Mode  game.RevealMode `json:"mode,omitempty"`
}

// handleHints sets the hint level and optional reveal toggle.
func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	var req hintsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.withSession(w, r, func(sess *game.Session) {
		if err := sess.SetHintLevel(req.Level); err != nil {
			http.Error(w, `{"error":"bad_level"}`, http.StatusBadRequest)
			return
		}
		if req.Mode != "" {
			if err := sess.SetRevealMode(req.Mode); err != nil {
				http.Error(w, `{"error":"bad_mode"}`, http.StatusBadRequest)
				return
			}
		}
		_ = json.NewEncoder(w).Encode(sess.Snapshot())
	})
}

// handleSaveState returns the compact resume string.
func (s *Server) handleSaveState(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *game.Session) {
		_ = json.NewEncoder(w).Encode(map[string]string{"state": sess.SaveState()})
	})
}

// restoreReq is the body for POST /sessions/{id}/restore.
type restoreReq struct {
	State string `json:"state"`
}

// handleRestore applies a save-state string to an existing session.
func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	var req restoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.withSession(w, r, func(sess *game.Session) {
		if err := sess.RestoreState(req.State); err != nil {
			http.Error(w, `{"error":"bad_state"}`, http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(sess.Snapshot())
	})
}

// persistResult writes the completed session to the results table and
// updates stats for signed-in players. Best effort: failures are
// logged, never surfaced to the player.
func (s *Server) persistResult(w http.ResponseWriter, r *http.Request, sess *game.Session) {
	if s.db == nil {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)

	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	hintsUsed := 0
	if sess.HintsUsed() {
		hintsUsed = 1
	}

	tx, err := s.db.Begin()
	if err != nil {
		log.Warn().Err(err).Msg("begin result tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if me != nil {
		_, err = tx.Exec(`INSERT OR IGNORE INTO results
			(session_id, user_id, puzzle_id, score, bonus_words, misses, hints_used, finished_at)
			VALUES (?,?,?,?,?,?,?,?)`,
			sess.ID, me.ID, sess.PuzzleID, sess.Score(), sess.BonusFound(), sess.Misses(), hintsUsed, now)
		if err == nil {
			err = s.bumpStats(tx, me.ID)
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err = tx.Exec(`INSERT OR IGNORE INTO results
			(session_id, anonymous_id, puzzle_id, score, bonus_words, misses, hints_used, finished_at)
			VALUES (?,?,?,?,?,?,?,?)`,
			sess.ID, anon, sess.PuzzleID, sess.Score(), sess.BonusFound(), sess.Misses(), hintsUsed, now)
	}
	if err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("persist result")
		return
	}
	_ = tx.Commit()
}
