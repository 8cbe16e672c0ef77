// Package mcp provides a Model Context Protocol surface for the Quoridor server.
//
// The package implements a thin MCP client that proxies every tool call to
// the REST API rather than holding game state of its own. This keeps the
// HTTP server the single authority: AI agents and browser clients always
// observe the same sessions.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with a text board diagram
//   - legal_moves: List the squares the current player may step to
//   - move: Step the current player's pawn
//   - place_wall: Place a wall segment
//   - preview_wall: Test a wall placement without committing it
//   - reset_game: Reset a session to its starting position
//   - move_history: Retrieve move history with pagination
//   - create_session: Create a new game session with preset selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available board presets
//   - game_rules: Get the full rules reference
//
// Transport Modes:
//
// The underlying MCP server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: an /mcp endpoint mounted on the REST server for remote use
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
