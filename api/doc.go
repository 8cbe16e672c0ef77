// Package api provides the HTTP REST surface of the Quoridor engine.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Preset listing, inspection and creation
//   - WebSocket upgrade handling for live board updates
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id in body)
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - GET /api/sessions/{id}/legal-moves - Legal destinations for the active player
//   - POST /api/sessions/{id}/move - Move the active pawn: {"row": r, "col": c}
//   - POST /api/sessions/{id}/walls - Place a wall: {"row": r, "col": c, "orientation": "horizontal|vertical"}
//   - GET /api/sessions/{id}/walls/preview?row=r&col=c&orientation=o - Hover feedback
//   - POST /api/sessions/{id}/reset - Reset to the starting layout
//   - GET /api/sessions/{id}/history - Move history with pagination
//
// Presets:
//   - GET /api/configs - List available presets
//   - GET /api/configs/{name} - Get a preset
//   - POST /api/configs - Save a preset: {"name": "...", "config": {...}}
//
// WebSocket:
//   - GET /ws?session={id} - Push-only state_update stream for one session
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Rule rejections (illegal move,
// overlapping wall, a wall that would seal off a pawn) are HTTP 200 responses
// whose body carries success=false and an error_code such as "illegal_move" or
// "blocks_all_paths" plus the unchanged game state; HTTP error status codes
// are reserved for unknown sessions and malformed requests.
package api
