package service

import (
	"time"

	"github.com/boardgamehub/quoridor/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// TurnResult contains the result of a move or wall-placement attempt.
// Engine rule rejections are reported through Success and ErrorCode, not as
// transport errors: the state snapshot is then the unchanged pre-call state.
type TurnResult struct {
	Success    bool              `json:"success"`
	ErrorCode  string            `json:"error_code,omitempty"` // machine-friendly engine error kind
	GameState  *engine.GameState `json:"game_state"`
	Events     []GameEvent       `json:"events,omitempty"`
	LegalMoves []engine.Position `json:"legal_moves,omitempty"` // for the player now to act
	GameOver   bool              `json:"game_over"`
	Winner     int               `json:"winner"` // engine.NoWinner while in progress
}

// WallPreview reports whether a hovered wall placement would be accepted
type WallPreview struct {
	Legal  bool   `json:"legal"`
	Reason string `json:"reason,omitempty"` // error code when not legal
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string              `json:"type"` // "move", "wall", "game_over", "reset"
	Player    int                 `json:"player"`
	Position  *engine.Position    `json:"position,omitempty"`
	Wall      *engine.WallSegment `json:"wall,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveRecord `json:"moves"`
	TotalMoves  int                 `json:"total_moves"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
	TotalPages  int                 `json:"total_pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}

// ConfigInfo provides information about a game preset
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	NumPlayers  int    `json:"num_players"`
	BoardSize   int    `json:"board_size"`
	PresetWalls int    `json:"preset_walls"`
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
