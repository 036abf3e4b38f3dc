package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tahcohcat/cluequest/internal/auth"
	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/logger"
	"github.com/tahcohcat/cluequest/internal/services"
	"github.com/tahcohcat/cluequest/internal/suspects"
	"github.com/tahcohcat/cluequest/internal/websocket"
)

var ErrSessionNotFound = errors.New("game session not found")

var validate = validator.New()

// Publisher receives session events, normally the websocket hub.
type Publisher interface {
	Publish(e websocket.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(websocket.Event) {}

type GameSession struct {
	ID        string
	Game      *game.Session
	StartedAt time.Time
	Moves     int
}

type GameHandler struct {
	mu       sync.Mutex
	sessions map[string]*GameSession // Store game sessions by ID
	engine   *game.Engine
	verdicts *services.VerdictService
	events   Publisher
	logger   *logger.Log
}

func NewGameHandler(engine *game.Engine, verdicts *services.VerdictService, events Publisher) *GameHandler {
	if events == nil {
		events = nopPublisher{}
	}
	return &GameHandler{
		sessions: make(map[string]*GameSession),
		engine:   engine,
		verdicts: verdicts,
		events:   events,
		logger:   logger.New(),
	}
}

type CaseSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Intro    string   `json:"intro"`
	Suspects []string `json:"suspects"`
}

type StartRequest struct {
	CaseID string `json:"case_id" validate:"required"`
}

type MoveRequest struct {
	Move string `json:"move"`
}

type AccuseRequest struct {
	Suspect string `json:"suspect"`
}

type StateResponse struct {
	SessionID  string        `json:"session_id"`
	CaseID     string        `json:"case_id"`
	Title      string        `json:"title"`
	Room       game.RoomView `json:"room"`
	LegalMoves []string      `json:"legal_moves"`
	Clues      []string      `json:"clues"`
	Explored   bool          `json:"explored"`
	Closed     bool          `json:"closed"`
	Ruling     *game.Ruling  `json:"ruling,omitempty"`
}

type MoveResponse struct {
	Accepted bool          `json:"accepted"`
	Move     string        `json:"move"`
	NewClue  bool          `json:"new_clue"`
	Message  string        `json:"message,omitempty"`
	State    StateResponse `json:"state"`
}

type AccuseResponse struct {
	Rendered   bool         `json:"verdict_rendered"`
	Ruling     *game.Ruling `json:"ruling,omitempty"`
	Suggestion string       `json:"suggestion,omitempty"`
	Message    string       `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (gh *GameHandler) state(gs *GameSession) StateResponse {
	s := gs.Game
	moves := []string{}
	for _, m := range s.LegalMoves() {
		moves = append(moves, m.String())
	}
	resp := StateResponse{
		SessionID:  gs.ID,
		CaseID:     s.Case.ID,
		Title:      s.Case.Title,
		Room:       s.View(),
		LegalMoves: moves,
		Clues:      s.Clues(),
		Explored:   s.Explored(),
		Closed:     s.Closed(),
	}
	if ruling, ok := s.Ruling(); ok {
		resp.Ruling = &ruling
	}
	return resp
}

func (gh *GameHandler) lookup(id string) (*GameSession, error) {
	gs, ok := gh.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return gs, nil
}

func (gh *GameHandler) publishEntry(gs *GameSession, out game.Outcome) {
	room := gs.Game.Map.Name(out.Room)
	gh.events.Publish(websocket.Event{Type: websocket.EventRoomEntered, SessionID: gs.ID, Room: room})
	if out.NewClue {
		gh.events.Publish(websocket.Event{Type: websocket.EventClueFound, SessionID: gs.ID, Room: room, Clue: out.Clue})
	}
}

// GET /api/v1/cases - List available cases
func (gh *GameHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases := []CaseSummary{}
	for _, c := range gh.engine.Cases() {
		cases = append(cases, CaseSummary{
			ID:       c.ID,
			Title:    c.Title,
			Intro:    c.Intro,
			Suspects: suspects.FromBindings(1, c.Evidence).Suspects(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cases": cases,
	})
}

// POST /api/v1/game/start - Start a new game on a case
func (gh *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "case_id is required", http.StatusBadRequest)
		return
	}

	s, err := gh.engine.Start(req.CaseID)
	if errors.Is(err, game.ErrCaseNotFound) {
		http.Error(w, "Case not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to start case: "+err.Error(), http.StatusInternalServerError)
		return
	}

	gs := &GameSession{
		ID:        uuid.NewString(),
		Game:      s,
		StartedAt: time.Now(),
	}

	gh.mu.Lock()
	gh.sessions[gs.ID] = gs
	resp := gh.state(gs)
	gh.mu.Unlock()

	if err := auth.RememberGame(w, r, gs.ID); err != nil {
		gh.logger.WithError(err).Warn("failed to remember game in cookie")
	}
	gh.publishEntry(gs, s.Entrance())

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"intro": s.Case.Intro,
		"state": resp,
	})
}

// GET /api/v1/game/current - State of the game remembered by the cookie
func (gh *GameHandler) CurrentGame(w http.ResponseWriter, r *http.Request) {
	id := auth.CurrentGame(r)
	if id == "" {
		http.Error(w, "No game in progress", http.StatusNotFound)
		return
	}
	gh.writeState(w, id)
}

// GET /api/v1/game/{session} - Current state of a game
func (gh *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	gh.writeState(w, mux.Vars(r)["session"])
}

func (gh *GameHandler) writeState(w http.ResponseWriter, id string) {
	gh.mu.Lock()
	defer gh.mu.Unlock()

	gs, err := gh.lookup(id)
	if err != nil {
		http.Error(w, "Game session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, gh.state(gs))
}

// GET /api/v1/game/{session}/clues - Collected clues in order
func (gh *GameHandler) GetClues(w http.ResponseWriter, r *http.Request) {
	gh.mu.Lock()
	defer gh.mu.Unlock()

	gs, err := gh.lookup(mux.Vars(r)["session"])
	if err != nil {
		http.Error(w, "Game session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clues": gs.Game.Clues(),
	})
}

// POST /api/v1/game/{session}/move - Walk left, right, or end exploration
func (gh *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	gh.mu.Lock()
	defer gh.mu.Unlock()

	gs, err := gh.lookup(mux.Vars(r)["session"])
	if err != nil {
		http.Error(w, "Game session not found", http.StatusNotFound)
		return
	}

	move := game.ParseMove(req.Move)
	out := gs.Game.Move(move)
	resp := MoveResponse{Accepted: out.Accepted, Move: move.String(), NewClue: out.NewClue}

	switch {
	case !out.Accepted && out.Ended:
		resp.Message = "Exploration is over."
	case !out.Accepted:
		resp.Message = "Invalid option or no such path. Try again."
	case out.Ended:
		gs.Moves++
		resp.Message = "Exploration finished. Take your clues to the judgement."
		gh.events.Publish(websocket.Event{Type: websocket.EventExplored, SessionID: gs.ID, Count: len(gs.Game.Clues())})
	default:
		gs.Moves++
		gh.publishEntry(gs, out)
	}

	resp.State = gh.state(gs)
	writeJSON(w, http.StatusOK, resp)
}

// POST /api/v1/game/{session}/accuse - Make an accusation
func (gh *GameHandler) Accuse(w http.ResponseWriter, r *http.Request) {
	var req AccuseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	gh.mu.Lock()
	defer gh.mu.Unlock()

	gs, err := gh.lookup(mux.Vars(r)["session"])
	if err != nil {
		http.Error(w, "Game session not found", http.StatusNotFound)
		return
	}

	ruling, rendered, err := gs.Game.Accuse(req.Suspect)
	if errors.Is(err, game.ErrExplorationInProgress) || errors.Is(err, game.ErrSessionClosed) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !rendered {
		writeJSON(w, http.StatusOK, AccuseResponse{Message: "No suspect named. Closing without a verdict."})
		return
	}

	resp := AccuseResponse{Rendered: true, Ruling: &ruling}
	if ruling.Guilty() {
		resp.Message = fmt.Sprintf("There is enough evidence! %s is found guilty.", ruling.Accused)
	} else {
		resp.Message = fmt.Sprintf("Insufficient evidence. %s cannot be found guilty.", ruling.Accused)
	}
	if ruling.Count == 0 {
		resp.Suggestion = gs.Game.Suggest(ruling.Accused)
	}

	if gh.verdicts != nil {
		if _, err := gh.verdicts.Record(gs.ID, gs.Game.Case.ID, ruling, len(gs.Game.Clues())); err != nil {
			gh.logger.WithError(err).Warn("failed to record verdict")
		}
	}
	gh.events.Publish(websocket.Event{
		Type:      websocket.EventVerdict,
		SessionID: gs.ID,
		Accused:   ruling.Accused,
		Count:     ruling.Count,
		Verdict:   string(ruling.Verdict),
	})
	gh.logger.Case(gs.Game.Case.Title, fmt.Sprintf("%s accused with %d clue(s): %s", ruling.Accused, ruling.Count, ruling.Verdict))

	writeJSON(w, http.StatusOK, resp)
}

// GET /api/v1/verdicts - Rulings rendered since the server started
func (gh *GameHandler) ListVerdicts(w http.ResponseWriter, r *http.Request) {
	if gh.verdicts == nil {
		http.Error(w, "Verdict ledger disabled", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := gh.verdicts.Recent(limit)
	if err != nil {
		http.Error(w, "Failed to get verdicts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"verdicts": records,
	})
}

// GET /api/v1/cases/{case}/verdicts - Accusation totals per suspect
func (gh *GameHandler) CaseVerdicts(w http.ResponseWriter, r *http.Request) {
	if gh.verdicts == nil {
		http.Error(w, "Verdict ledger disabled", http.StatusServiceUnavailable)
		return
	}

	caseID := mux.Vars(r)["case"]
	if _, err := gh.engine.Case(caseID); err != nil {
		http.Error(w, "Case not found", http.StatusNotFound)
		return
	}

	summary, err := gh.verdicts.Summary(caseID)
	if err != nil {
		http.Error(w, "Failed to summarise verdicts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"case_id": caseID,
		"summary": summary,
	})
}

func RegisterRoutes(r *mux.Router, engine *game.Engine, verdicts *services.VerdictService, events Publisher) *GameHandler {
	gh := NewGameHandler(engine, verdicts, events)

	r.HandleFunc("/cases", gh.ListCases).Methods("GET")
	r.HandleFunc("/cases/{case}/verdicts", gh.CaseVerdicts).Methods("GET")
	r.HandleFunc("/game/start", gh.StartGame).Methods("POST")
	r.HandleFunc("/game/current", gh.CurrentGame).Methods("GET")
	r.HandleFunc("/game/{session}", gh.GetState).Methods("GET")
	r.HandleFunc("/game/{session}/clues", gh.GetClues).Methods("GET")
	r.HandleFunc("/game/{session}/move", gh.Move).Methods("POST")
	r.HandleFunc("/game/{session}/accuse", gh.Accuse).Methods("POST")
	r.HandleFunc("/verdicts", gh.ListVerdicts).Methods("GET")

	return gh
}
