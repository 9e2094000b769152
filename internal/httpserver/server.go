// internal/httpserver/server.go
//
// HTTP server wiring for the WordHex runtime.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", puzzle catalog listing.
//   - Session endpoints (optional auth): create/resume sessions, trace
//     begin/extend/end, hint level, snapshots, save-state.
//   - Auth + profile/stat endpoints (require auth): /auth/*, /stats/me,
//     /results/mine.
//   - Database persistence for completed results and player stats.
//
// Notes:
//   - The gameplay state machine itself does no I/O; this layer owns the
//     session store, serializes events per session, and persists results.
//   - CORS is origin-aware and credentials-enabled (so cookies work).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wordhexgame/wordhex/internal/puzzle"
	"github.com/wordhexgame/wordhex/internal/store"
)

// Server bundles router, catalog, in-memory session store, and DB handle.
type Server struct {
	r       *chi.Mux
	store   store.Store
	db      *sql.DB
	catalog *puzzle.Catalog

	// Player events for one session must reach the state machine
	// serially; a per-session mutex does the serializing.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(cat *puzzle.Catalog, st store.Store, db *sql.DB) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		db:      db,
		catalog: cat,
		locks:   make(map[string]*sync.Mutex),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordhex","endpoints":["/health","/puzzles","POST /sessions","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Catalog — public.
	s.r.Get("/puzzles", s.handleListPuzzles)

	// Sessions — OPTIONAL AUTH (guests can play).
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/sessions", s.handleNewSession)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Post("/sessions/{id}/trace/begin", s.handleTraceBegin)
		r.Post("/sessions/{id}/trace/extend", s.handleTraceExtend)
		r.Post("/sessions/{id}/trace/end", s.handleTraceEnd)
		r.Post("/sessions/{id}/hints", s.handleHints)
		r.Get("/sessions/{id}/state", s.handleSaveState)
		r.Post("/sessions/{id}/restore", s.handleRestore)
	})

	// Auth + profile/stats (require auth where noted).
	s.mountAuthRoutes()

	// JSON 404 for easier debugging.
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// sessionLock returns the mutex serializing events for one session.
func (s *Server) sessionLock(id string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	return mu
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ catalog ------------------------------------

// puzzleInfo is the catalog listing row. Word counts cover only the
// visible words; excluded ones stay hidden.
type puzzleInfo struct {
	ID        int `json:"id"`
	Width     int `json:"width"`
	Height    int `json:"height"`
	WordCount int `json:"wordCount"`
}

// handleListPuzzles lists the loaded catalog.
func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	out := make([]puzzleInfo, 0, s.catalog.Len())
	for _, e := range s.catalog.Entries() {
		out = append(out, puzzleInfo{
			ID:        e.ID,
			Width:     e.Puzzle.Grid.Width(),
			Height:    e.Puzzle.Grid.Height(),
			WordCount: e.Puzzle.NumVisible(),
		})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
