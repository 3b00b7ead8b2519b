// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle mode.
// Exposes four endpoints under /daily:
//   - GET  /daily/today       → today's puzzle (shape + pieces, no solution)
//   - POST /daily/new         → start a daily session (creates or reuses it)
//   - POST /daily/place       → place or re-place a piece in today's session
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can complete the daily once per day (enforced by DB + in-memory
// session). Sessions are held in memory for active play and persisted to DB
// on completion. Deterministic puzzle selection is based on date + salt.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/emriedel/grid-games-sub002/internal/game"
	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/puzzle"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *puzzle.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	Game     *game.Game
	UserID   string
	Date     string
	PuzzleID string
	Start    time.Time
	Moves    int
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    puzzle.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/today", dd.handleToday)
		r.Post("/new", dd.handleNew)
		r.Post("/place", dd.handlePlace)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// puzzleForNow returns today's date key and deterministic pool puzzle.
func (d *dailyServer) puzzleForNow() (date string, p *puzzle.Puzzle, err error) {
	now := time.Now().UTC()
	date = puzzle.DateKey(now)
	idx := puzzle.DailyIndex(now, d.salt, puzzle.Count())
	p, err = puzzle.ByIndex(idx)
	return date, p, err
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// -----------------------------------------------------------------------------
// /daily/today

// todayRes is returned by GET /daily/today. The solution never leaves the
// server.
type todayRes struct {
	Date     string         `json:"date"`
	PuzzleID string         `json:"puzzleId"`
	Rows     int            `json:"rows"`
	Cols     int            `json:"cols"`
	Shape    []string       `json:"shape"`
	Pieces   []pentomino.ID `json:"pieces"`
}

// handleToday returns the shape and piece list of today's puzzle.
func (d *dailyServer) handleToday(w http.ResponseWriter, r *http.Request) {
	date, p, err := d.puzzleForNow()
	if err != nil {
		http.Error(w, `{"error":"no_puzzle"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(todayRes{
		Date: date, PuzzleID: p.ID, Rows: p.Rows, Cols: p.Cols,
		Shape: p.Shape, Pieces: p.Pieces,
	})
}

// -----------------------------------------------------------------------------
// /daily/new

// newRes is returned by /daily/new.
type newRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	date, p, err := d.puzzleForNow()
	if err != nil {
		http.Error(w, `{"error":"no_puzzle"}`, http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(newRes{GameID: "", Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(newRes{GameID: sess.Game.ID, Date: date, Played: false})
		return
	}
	g, err := game.New(p.ID, p.Shape, p.Pieces)
	if err != nil {
		d.mu.Unlock()
		http.Error(w, `{"error":"bad_puzzle"}`, http.StatusInternalServerError)
		return
	}
	sess := &dailySession{
		Game:     g,
		UserID:   uid,
		Date:     date,
		PuzzleID: p.ID,
		Start:    time.Now(),
	}
	d.sessions[key] = sess
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(newRes{GameID: g.ID, Date: date, Played: false})
}

// -----------------------------------------------------------------------------
// /daily/place

// dailyPlaceReq is the request payload for /daily/place.
type dailyPlaceReq struct {
	GameID   string             `json:"gameId"`
	Piece    pentomino.ID       `json:"piece"`
	Row      int                `json:"row"`
	Col      int                `json:"col"`
	Rotation pentomino.Rotation `json:"rotation"`
	Unplace  bool               `json:"unplace"` // true = take the piece back instead
}

// dailyPlaceRes is the response payload for /daily/place.
type dailyPlaceRes struct {
	State      string `json:"state"` // playing | won | locked
	EmptyCells int    `json:"emptyCells"`
	Moves      int    `json:"moves"`
}

// handlePlace validates and applies a move for today's daily session.
// - Ensures valid GameID and an active session.
// - Applies the placement (or take-back) through the game engine, which
//   runs the same placement checks the solver uses.
// - Persists the result to DB on completion.
func (d *dailyServer) handlePlace(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailyPlaceReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if p.GameID == "" || !pentomino.Valid(p.Piece) {
		http.Error(w, "invalid", http.StatusBadRequest)
		return
	}

	date := puzzle.DateKey(time.Now())

	// Find session.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.Game.ID != p.GameID {
		http.Error(w, "no session", http.StatusConflict)
		return
	}
	if sess.Game.Finished {
		_ = json.NewEncoder(w).Encode(dailyPlaceRes{State: "locked", Moves: sess.Moves})
		return
	}

	// Apply move through the engine.
	var (
		state string
		err   error
	)
	if p.Unplace {
		state, err = sess.Game.Unplace(p.Piece)
	} else {
		state, err = sess.Game.Apply(solver.Placement{Piece: p.Piece, Row: p.Row, Col: p.Col, Rotation: p.Rotation})
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d.mu.Lock()
	sess.Moves++
	won := state == "won"
	d.mu.Unlock()

	// Persist and return.
	if won {
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), puzzle.Result{
			UserID: uid, Date: date, PuzzleID: sess.PuzzleID, Moves: sess.Moves, ElapsedMs: elapsed,
		})
		_ = json.NewEncoder(w).Encode(dailyPlaceRes{State: "won", EmptyCells: 0, Moves: sess.Moves})
		return
	}
	_ = json.NewEncoder(w).Encode(dailyPlaceRes{
		State: state, EmptyCells: sess.Game.Board().EmptyCount(), Moves: sess.Moves,
	})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string         `json:"date"`
	Top  []puzzle.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = puzzle.DateKey(time.Now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
