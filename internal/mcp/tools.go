package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// deckFile is the path to the decks YAML file, set by main.
var deckFile string

// encounterFile is the path to the encounters YAML file, set by main.
var encounterFile string

// SetDeckFile sets the path to the decks YAML file.
func SetDeckFile(path string) {
	deckFile = path
}

// SetEncounterFile sets the path to the encounters YAML file.
func SetEncounterFile(path string) {
	encounterFile = path
}

// RegisterTools adds all combat tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(newCombatTool(), handleNewCombat)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(getStateTool(), handleGetState)
}

// --- Tool definitions ---

func newCombatTool() mcp.Tool {
	return mcp.NewTool("new_combat",
		mcp.WithDescription("Start a new combat and return its ID, opening hand, and enemy intents. "+
			"Multiple combats can run side by side; every other tool takes the combat_id returned here."),
		mcp.WithString("deck", mcp.Description("Named deck from the decks YAML file (default: starter deck)")),
		mcp.WithString("encounter", mcp.Description("Named enemy roster from the encounters YAML file (default: one Cultist)")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for a reproducible combat (default: random)")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from the hand. Single-target attacks need target_index; "+
			"cards that hit all enemies or only affect the player ignore it. "+
			"Returns the events the play resolved and the resulting state."),
		mcp.WithString("combat_id", mcp.Required(), mcp.Description("Combat ID from new_combat")),
		mcp.WithNumber("hand_index", mcp.Required(), mcp.Description("0-based index of the card in the hand")),
		mcp.WithNumber("target_index", mcp.Description("0-based index of the enemy to target")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End the player turn: end-of-turn effects fire, the hand is discarded, "+
			"every enemy executes its telegraphed intent, and the next turn begins."),
		mcp.WithString("combat_id", mcp.Required(), mcp.Description("Combat ID from new_combat")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current combat state without acting. Read-only."),
		mcp.WithString("combat_id", mcp.Required(), mcp.Description("Combat ID from new_combat")),
	)
}

// --- Tool handlers ---

func handleNewCombat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck := request.GetString("deck", "")
	encounter := request.GetString("encounter", "")
	seed := int64(request.GetInt("seed", 0))

	sess, err := NewCombatSession(deck, encounter, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start combat: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(sess.State())), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := registry.get(request.GetString("combat_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	handIndex := request.GetInt("hand_index", -1)
	targetIndex := request.GetInt("target_index", -1)

	resp, err := sess.PlayCard(handIndex, targetIndex)
	if err != nil {
		return mcp.NewToolResultErrorf("Play failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := registry.get(request.GetString("combat_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := sess.EndTurn()
	if err != nil {
		return mcp.NewToolResultErrorf("End turn failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := registry.get(request.GetString("combat_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.State())), nil
}
