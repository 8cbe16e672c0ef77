package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/boardgamehub/quoridor/game/engine"
	"github.com/boardgamehub/quoridor/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Quoridor Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Quoridor Game Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Race your pawn to the opposite edge of the board before your opponents
reach theirs. On each turn you either step your pawn or place a wall
segment that slows the opposition down. Walls may never seal a player
off from their goal edge entirely.

AVAILABLE TOOLS:
- game_state: Get current game state with a board diagram
- legal_moves: List every square the current player may step to
- move: Step the current player's pawn to a destination square
- place_wall: Place a wall segment for the current player
- preview_wall: Check whether a wall placement would be accepted
- reset_game: Reset a session to its starting position
- move_history: View past moves with pagination
- create_session: Create a new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available board presets
- game_rules: Get the full rules reference

Coordinates are 0-based (row, col) with row 0 at the top of the board.
Wall coordinates name the wall's top-left anchor; each wall spans two
squares. Always check legal_moves before stepping - jumps over adjacent
pawns change the reachable set.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset identifier to use, e.g. classic or blitz (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state with a board diagram",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List every square the current player may step to this turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Step the current player's pawn to a destination square. Use legal_moves first - jumps over adjacent pawns are included there.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Destination row (0-based, row 0 at the top)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Destination column (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the plan behind this move (rubber duck debugging)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place_wall",
		Description: "Place a wall segment for the current player. Rejected placements report an error code and leave the game unchanged.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the wall's top-left anchor (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the wall's top-left anchor (0-based)",
				},
				"orientation": map[string]interface{}{
					"type":        "string",
					"description": "Wall orientation: horizontal or vertical",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the plan behind this wall (rubber duck debugging)",
				},
			},
			Required: []string{"session_id", "row", "col", "orientation"},
		},
	}, c.handlePlaceWall)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "preview_wall",
		Description: "Check whether a wall placement would be accepted without placing it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the wall's top-left anchor (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the wall's top-left anchor (0-based)",
				},
				"orientation": map[string]interface{}{
					"type":        "string",
					"description": "Wall orientation: horizontal or vertical",
				},
			},
			Required: []string{"session_id", "row", "col", "orientation"},
		},
	}, c.handlePreviewWall)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset a session to its starting position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "View past moves of a session with pagination",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number (1-based, optional)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Moves per page (optional)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"description": "Sort order: asc or desc (optional, default asc)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the full rules reference for the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sessions []service.SessionInfo

	err := c.apiCall("GET", "/api/sessions", nil, &sessions)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", len(sessions))
	for _, s := range sessions {
		status := "in progress"
		if s.GameState != nil && s.GameState.GameOver {
			status = fmt.Sprintf("won by player %d", s.GameState.Winner)
		}
		result += fmt.Sprintf("- %s (Config: %s, %s, Created: %s)\n",
			s.ID, s.ConfigName, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Moves []engine.Position `json:"moves"`
	}
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/legal-moves", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(response.Moves) == 0 {
		return mcp.NewToolResultText("No legal moves: the game is over."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Legal moves (%d):\n", len(response.Moves))
	for _, m := range response.Moves {
		fmt.Fprintf(&b, "- (%d,%d)\n", m.Row, m.Col)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"row": row,
		"col": col,
	}

	var result service.TurnResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnResult("Move", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePlaceWall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))
	orientation, _ := args["orientation"].(string)
	intent, _ := args["intent"].(string)

	_ = intent

	body := map[string]interface{}{
		"row":         row,
		"col":         col,
		"orientation": orientation,
	}

	var result service.TurnResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/walls", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnResult("Wall", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePreviewWall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))
	orientation, _ := args["orientation"].(string)

	var preview service.WallPreview
	path := fmt.Sprintf("/api/sessions/%s/walls/preview?row=%d&col=%d&orientation=%s",
		sessionID, row, col, orientation)
	err := c.apiCall("GET", path, nil, &preview)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if preview.Legal {
		return mcp.NewToolResultText(fmt.Sprintf("Legal: %s wall at (%d,%d) would be accepted.", orientation, row, col)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Illegal: %s wall at (%d,%d) rejected (%s).", orientation, row, col, preview.Reason)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Game reset to starting position.\n\n%s", formatGameState(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params += fmt.Sprintf("order=%s&", order)
	}
	params = strings.TrimSuffix(params, "&")
	params = strings.TrimSuffix(params, "?")

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo

	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available Presets (%d):\n\n", len(configs))
	for _, cfg := range configs {
		fmt.Fprintf(&b, "- %s: %s (%d players, %dx%d board", cfg.ConfigID, cfg.Name,
			cfg.NumPlayers, cfg.BoardSize, cfg.BoardSize)
		if cfg.PresetWalls > 0 {
			fmt.Fprintf(&b, ", %d preset walls", cfg.PresetWalls)
		}
		b.WriteString(")\n")
		if cfg.Description != "" {
			fmt.Fprintf(&b, "  %s\n", cfg.Description)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := `QUORIDOR RULES REFERENCE

BOARD:
The board is an odd-sized square grid of walkable squares (classic play
uses 9x9). Coordinates are 0-based (row, col) with row 0 at the top.
Each player controls one pawn and must reach the edge opposite their
starting edge: touching ANY square on that edge wins immediately.

STARTING LAYOUT:
- Player 0 starts at the middle of the bottom edge, goal row 0
- Player 1 starts at the middle of the top edge, goal the bottom row
- In 4-player games, player 2 starts mid-left (goal right column) and
  player 3 starts mid-right (goal left column)

TURNS:
On your turn you do exactly one of:
1. Step your pawn to a legal square (use legal_moves to see them)
2. Place one wall segment from your remaining stock

PAWN MOVEMENT:
- One square orthogonally (up/down/left/right) onto an empty square,
  as long as no wall lies between the squares
- If the adjacent square holds a pawn and the square directly behind it
  is on the board, empty, and not walled off, you jump straight over
- If the straight jump would land off the board, you may instead step
  to either square diagonally beside the blocking pawn (when open)
- A wall behind the blocking pawn does NOT grant diagonal moves; the
  blocked direction simply yields nothing

WALLS:
- A wall segment spans two squares and sits in a groove between rows
  (horizontal) or between columns (vertical)
- The (row, col) you give is the wall's top-left anchor; a horizontal
  wall at (r,c) blocks vertical steps between rows r and r+1 at columns
  c and c+1; a vertical wall at (r,c) blocks horizontal steps between
  columns c and c+1 at rows r and r+1
- Walls may not overlap another wall's span, may not cross a
  perpendicular wall at the same anchor, and may NEVER cut any player's
  last remaining path to their goal edge
- Rejected placements leave the game unchanged and do not consume a
  wall or the turn
- When you run out of wall segments you can only move your pawn

STRATEGY NOTES:
- Walls are a finite resource: spent early they are unavailable for the
  endgame race
- preview_wall lets you test placements without committing
- Watch for jump opportunities: an adjacent opposing pawn can shorten
  your path by a full move
- A wall that lengthens the opponent's path by more squares than yours
  is almost always worth placing

Good luck!`

	return mcp.NewToolResultText(rules), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

// formatGameState renders the board as text. Pawns appear as their
// player index; wall units appear as --- between rows and | between
// columns, mirroring the physical grooves of the board.
func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder
	n := state.BoardSize
	walls := state.WallSet()

	fmt.Fprintf(&result, "Turn: player %d | Moves played: %d\n", state.CurrentPlayer, state.TotalMoves)
	for i, p := range state.Players {
		marker := " "
		if i == state.CurrentPlayer && !state.GameOver {
			marker = "*"
		}
		fmt.Fprintf(&result, "%s Player %d at (%d,%d), %d walls left, goal %s %d\n",
			marker, i, p.Position.Row, p.Position.Col, p.WallsRemaining, p.GoalAxis, p.GoalIndex)
	}
	result.WriteString("\n")

	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			cell := "."
			for i, p := range state.Players {
				if p.Position.Row == r && p.Position.Col == col {
					cell = fmt.Sprintf("%d", i)
					break
				}
			}
			result.WriteString(" " + cell + " ")
			if col < n-1 {
				if walls.HasVertical(r, col) {
					result.WriteString("|")
				} else {
					result.WriteString(" ")
				}
			}
		}
		result.WriteString("\n")
		if r < n-1 {
			for col := 0; col < n; col++ {
				if walls.HasHorizontal(r, col) {
					result.WriteString("---")
				} else {
					result.WriteString("   ")
				}
				if col < n-1 {
					result.WriteString(" ")
				}
			}
			result.WriteString("\n")
		}
	}

	if state.GameOver {
		fmt.Fprintf(&result, "\nGAME OVER - player %d wins!", state.Winner)
	}

	return result.String()
}

func formatTurnResult(action string, result *service.TurnResult) string {
	var b strings.Builder

	if result.Success {
		fmt.Fprintf(&b, "%s accepted\n", action)
	} else {
		fmt.Fprintf(&b, "%s rejected: %s\n", action, result.ErrorCode)
	}

	for _, event := range result.Events {
		switch event.Type {
		case "move":
			if event.Position != nil {
				fmt.Fprintf(&b, "Event: player %d moved to (%d,%d)\n",
					event.Player, event.Position.Row, event.Position.Col)
			}
		case "wall":
			if event.Wall != nil {
				fmt.Fprintf(&b, "Event: player %d placed %s wall at (%d,%d)\n",
					event.Player, event.Wall.Orientation, event.Wall.Row, event.Wall.Col)
			}
		case "game_over":
			fmt.Fprintf(&b, "Event: player %d reached their goal\n", event.Player)
		default:
			fmt.Fprintf(&b, "Event: %s (player %d)\n", event.Type, event.Player)
		}
	}

	if result.Success && !result.GameOver && len(result.LegalMoves) > 0 {
		b.WriteString("Next player's legal moves:")
		for _, m := range result.LegalMoves {
			fmt.Fprintf(&b, " (%d,%d)", m.Row, m.Col)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Move History (page %d of %d, %d total moves):\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, rec := range history.Moves {
		switch rec.Kind {
		case engine.KindMove:
			fmt.Fprintf(&b, "%3d. player %d: pawn (%d,%d) -> (%d,%d)\n",
				rec.Number, rec.Player, rec.From.Row, rec.From.Col, rec.To.Row, rec.To.Col)
		case engine.KindWall:
			if rec.Wall != nil {
				fmt.Fprintf(&b, "%3d. player %d: %s wall at (%d,%d)\n",
					rec.Number, rec.Player, rec.Wall.Orientation, rec.Wall.Row, rec.Wall.Col)
			}
		default:
			fmt.Fprintf(&b, "%3d. player %d: %s\n", rec.Number, rec.Player, rec.Kind)
		}
	}

	if history.HasNext {
		b.WriteString("\n(more moves on the next page)")
	}

	return b.String()
}
