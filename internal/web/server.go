package web

import (
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	stdlog "log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/peterkuimelis/spirex/internal/game"
	"github.com/peterkuimelis/spirex/internal/log"
)

//go:embed static
var staticFiles embed.FS

// Server hosts combats over HTTP: a small JSON API for driving them and a
// WebSocket stream of their event logs.
type Server struct {
	deckFile      string // optional decks YAML; empty means starter deck only
	encounterFile string // optional encounters YAML

	mux     sync.Mutex
	combats map[string]*combatSession

	handler *http.ServeMux
}

// combatSession serializes access to one combat. The engine itself does no
// locking; every API call on a combat goes through this mutex.
type combatSession struct {
	mu     sync.Mutex
	combat *game.Combat
	logger *log.MemoryLogger
	subs   map[chan log.GameEvent]struct{}
}

// NewServer creates a web server. Both file paths are optional.
func NewServer(deckFile, encounterFile string) *Server {
	s := &Server{
		deckFile:      deckFile,
		encounterFile: encounterFile,
		combats:       make(map[string]*combatSession),
		handler:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.handler.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})
	s.handler.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.handler.HandleFunc("GET /api/cards", s.handleCards)
	s.handler.HandleFunc("POST /api/combat", s.handleNewCombat)
	s.handler.HandleFunc("GET /api/combat/{id}/state", s.handleState)
	s.handler.HandleFunc("POST /api/combat/{id}/play", s.handlePlay)
	s.handler.HandleFunc("POST /api/combat/{id}/end-turn", s.handleEndTurn)
	s.handler.HandleFunc("GET /ws/{id}", s.handleWebSocket)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.handler)
}

// --- JSON shapes ---

// CardInfo is the JSON representation of a card for /api/cards.
type CardInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Cost        int    `json:"cost"` // -1 means "X"
}

// EventView is a game event as sent to clients.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Actor   string `json:"actor,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

func eventView(e log.GameEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Phase:   e.Phase,
		Actor:   e.Actor,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

func eventViews(events []log.GameEvent) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, eventView(e))
	}
	return out
}

// NewCombatRequest is the body of POST /api/combat. All fields are optional:
// the zero request starts the starter deck against a single Cultist.
type NewCombatRequest struct {
	Deck      string `json:"deck,omitempty"`      // named deck from the decks file
	Encounter string `json:"encounter,omitempty"` // named roster from the encounters file
	Seed      int64  `json:"seed,omitempty"`
}

// NewCombatResponse returns the combat's ID and opening state.
type NewCombatResponse struct {
	ID    string        `json:"id"`
	State game.Snapshot `json:"state"`
}

// PlayRequest is the body of POST /api/combat/{id}/play.
type PlayRequest struct {
	HandIndex   int `json:"hand_index"`
	TargetIndex int `json:"target_index"`
}

// ActionResponse is returned by play and end-turn calls.
type ActionResponse struct {
	Events []EventView   `json:"events"`
	State  game.Snapshot `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// --- Handlers ---

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for name, ctor := range game.CardRegistry {
		c := ctor()
		cards = append(cards, CardInfo{
			Name:        name,
			Description: c.Description,
			Type:        c.Type.String(),
			Rarity:      c.Rarity.String(),
			Cost:        c.Cost,
		})
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleNewCombat(w http.ResponseWriter, r *http.Request) {
	var req NewCombatRequest
	if r.Body != nil {
		// An empty body is fine; only malformed JSON is rejected.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
			return
		}
	}

	player := game.PlayerConfig{}
	if req.Deck != "" {
		if s.deckFile == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "server has no decks file"})
			return
		}
		cards, err := game.DeckByName(s.deckFile, req.Deck)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		player.Cards = cards
	}

	enemies := []game.EnemyConfig{{Name: "Cultist", MaxHP: 48}}
	if req.Encounter != "" {
		if s.encounterFile == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "server has no encounters file"})
			return
		}
		roster, err := game.EncounterByName(s.encounterFile, req.Encounter)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		enemies = roster
	}

	logger := log.NewMemoryLogger()
	sess := &combatSession{
		logger: logger,
		subs:   make(map[chan log.GameEvent]struct{}),
	}
	sess.combat = game.NewCombat(game.Config{
		Player:  player,
		Enemies: enemies,
		Logger:  logger,
		Seed:    req.Seed,
	})

	id := uuid.NewString()
	s.mux.Lock()
	s.combats[id] = sess
	s.mux.Unlock()

	writeJSON(w, http.StatusCreated, NewCombatResponse{ID: id, State: sess.combat.Snapshot()})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) *combatSession {
	s.mux.Lock()
	sess := s.combats[r.PathValue("id")]
	s.mux.Unlock()
	if sess == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no such combat"})
	}
	return sess
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	snap := sess.combat.Snapshot()
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return
	}

	sess.mu.Lock()
	res, err := sess.combat.PlayCard(req.HandIndex, req.TargetIndex)
	sess.mu.Unlock()
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	sess.broadcast(res.Events)
	writeJSON(w, http.StatusOK, ActionResponse{Events: eventViews(res.Events), State: res.State})
}

func (s *Server) handleEndTurn(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	res, err := sess.combat.EndTurn()
	sess.mu.Unlock()
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	sess.broadcast(res.Events)
	writeJSON(w, http.StatusOK, ActionResponse{Events: eventViews(res.Events), State: res.State})
}

// handleWebSocket streams a combat's event log: the full history so far,
// then every new event as it happens.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow connections from any origin
	})
	if err != nil {
		stdlog.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	ch := make(chan log.GameEvent, 64)
	sess.mu.Lock()
	history := append([]log.GameEvent(nil), sess.logger.Events()...)
	sess.subs[ch] = struct{}{}
	sess.mu.Unlock()
	defer func() {
		sess.mu.Lock()
		delete(sess.subs, ch)
		sess.mu.Unlock()
	}()

	send := func(e log.GameEvent) error {
		data, err := json.Marshal(eventView(e))
		if err != nil {
			return err
		}
		return wsConn.Write(ctx, websocket.MessageText, data)
	}

	for _, e := range history {
		if err := send(e); err != nil {
			return
		}
	}
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-ch:
			if err := send(e); err != nil {
				return
			}
		}
	}
}

// broadcast fans events out to websocket subscribers. Slow subscribers drop
// events rather than stall the API.
func (cs *combatSession) broadcast(events []log.GameEvent) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for ch := range cs.subs {
		for _, e := range events {
			select {
			case ch <- e:
			default:
			}
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrUnknownCard),
		errors.Is(err, game.ErrInvalidTarget):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrInsufficientEnergy),
		errors.Is(err, game.ErrCombatOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
