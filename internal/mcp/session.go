package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/spirex/internal/game"
	"github.com/peterkuimelis/spirex/internal/log"
)

// CombatSession is one MCP-driven combat. The engine is synchronous, so a
// session is just the combat plus a mutex serializing tool calls.
type CombatSession struct {
	ID string

	mu     sync.Mutex
	combat *game.Combat
	logger *log.MemoryLogger
}

// sessionRegistry tracks live sessions by ID. One stdio process can run
// several combats side by side.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*CombatSession
}

var registry = &sessionRegistry{sessions: make(map[string]*CombatSession)}

func (r *sessionRegistry) add(s *CombatSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *sessionRegistry) get(id string) (*CombatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no combat with id %q; use new_combat first", id)
	}
	return s, nil
}

// NewCombatSession starts a combat from the configured deck and encounter
// files. Empty deck/encounter names fall back to the starter deck and a
// single default enemy.
func NewCombatSession(deckName, encounterName string, seed int64) (*CombatSession, error) {
	player := game.PlayerConfig{}
	if deckName != "" {
		if deckFile == "" {
			return nil, fmt.Errorf("no decks file configured")
		}
		cards, err := game.DeckByName(deckFile, deckName)
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
		player.Cards = cards
	}

	enemies := []game.EnemyConfig{{Name: "Cultist", MaxHP: 48}}
	if encounterName != "" {
		if encounterFile == "" {
			return nil, fmt.Errorf("no encounters file configured")
		}
		roster, err := game.EncounterByName(encounterFile, encounterName)
		if err != nil {
			return nil, fmt.Errorf("load encounter: %w", err)
		}
		enemies = roster
	}

	logger := log.NewMemoryLogger()
	sess := &CombatSession{
		ID:     uuid.NewString(),
		logger: logger,
	}
	sess.combat = game.NewCombat(game.Config{
		Player:  player,
		Enemies: enemies,
		Logger:  logger,
		Seed:    seed,
	})
	registry.add(sess)
	return sess, nil
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	CombatID string        `json:"combat_id"`
	Events   []EventView   `json:"events"`
	State    game.Snapshot `json:"state"`
}

// EventView is a game event as presented in tool responses.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

func eventViews(events []log.GameEvent) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, EventView{
			Turn:    e.Turn,
			Phase:   e.Phase,
			Type:    e.Type.String(),
			Details: e.Details,
		})
	}
	return out
}

func (s *CombatSession) response(events []log.GameEvent, state game.Snapshot) *ToolResponse {
	return &ToolResponse{
		CombatID: s.ID,
		Events:   eventViews(events),
		State:    state,
	}
}

// PlayCard plays a hand card under the session lock.
func (s *CombatSession) PlayCard(handIndex, targetIndex int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.combat.PlayCard(handIndex, targetIndex)
	if err != nil {
		return nil, err
	}
	return s.response(res.Events, res.State), nil
}

// EndTurn ends the player turn under the session lock.
func (s *CombatSession) EndTurn() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.combat.EndTurn()
	if err != nil {
		return nil, err
	}
	return s.response(res.Events, res.State), nil
}

// State returns a snapshot with no events. Read-only.
func (s *CombatSession) State() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(nil, s.combat.Snapshot())
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	if resp.Events == nil {
		resp.Events = []EventView{}
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
