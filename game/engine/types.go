package engine

// Orientation represents the two possible wall orientations
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// GoalAxis represents which axis a player's goal predicate is fixed on
type GoalAxis string

const (
	GoalRow GoalAxis = "row"
	GoalCol GoalAxis = "col"
)

const (
	// Validation constants
	MinBoardSize     = 5
	MaxBoardSize     = 25
	DefaultBoardSize = 9
	MinPlayers       = 2
	MaxPlayers       = 4

	// NoWinner is the Winner value while the game is still in progress
	NoWinner = -1
)

// DefaultWallCounts holds the starting wall inventory per seat. Seats 0 and 1
// always get 10 walls; seats 2 and 3 (4-player games only) get 5.
var DefaultWallCounts = []int{10, 10, 5, 5}

// Position represents row,col cell coordinates (0-indexed, row 0 at the top)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WallSegment is a two-unit wall anchored at the intersection (Row, Col).
// A horizontal segment blocks vertical movement between rows Row and Row+1 at
// columns Col and Col+1. A vertical segment blocks horizontal movement between
// columns Col and Col+1 at rows Row and Row+1.
type WallSegment struct {
	Orientation Orientation `json:"orientation"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
}

// Player represents one seat in the game
type Player struct {
	Position       Position      `json:"position"`
	GoalAxis       GoalAxis      `json:"goal_axis"`
	GoalIndex      int           `json:"goal_index"`
	WallsRemaining int           `json:"walls_remaining"`
	Walls          []WallSegment `json:"walls"` // walls this player placed, in placement order
}

// AtGoal reports whether the player's current cell satisfies its goal predicate
func (p *Player) AtGoal() bool {
	if p.GoalAxis == GoalRow {
		return p.Position.Row == p.GoalIndex
	}
	return p.Position.Col == p.GoalIndex
}

// MoveKind distinguishes history entries
type MoveKind string

const (
	KindMove MoveKind = "move"
	KindWall MoveKind = "wall"
)

// MoveRecord represents a single committed transition in the game history
type MoveRecord struct {
	Kind      MoveKind     `json:"kind"`
	Player    int          `json:"player"`
	From      Position     `json:"from,omitempty"`
	To        Position     `json:"to,omitempty"`
	Wall      *WallSegment `json:"wall,omitempty"`
	Number    int          `json:"number"`
	Timestamp int64        `json:"timestamp"`
}

// GameConfig represents a game preset loaded from JSON
type GameConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	NumPlayers  int           `json:"num_players"`
	BoardSize   int           `json:"board_size"`
	WallCounts  []int         `json:"wall_counts,omitempty"` // per seat; defaults applied when empty
	PresetWalls []WallSegment `json:"preset_walls,omitempty"`
}

// GameState represents the complete engine state. It serializes to the natural
// save format: board size, players (position, goal axis, goal index, walls
// remaining, placed walls), the ordered global wall list, current player index,
// terminal flag and winner.
type GameState struct {
	BoardSize     int           `json:"board_size"`
	Players       []Player      `json:"players"`
	Walls         []WallSegment `json:"walls"` // every wall on the board, in placement order (presets first)
	CurrentPlayer int           `json:"current_player"`
	GameOver      bool          `json:"game_over"`
	Winner        int           `json:"winner"` // NoWinner until GameOver
	History       []MoveRecord  `json:"history,omitempty"`
	TotalMoves    int           `json:"total_moves"`

	// Derived blocker-unit index over Walls. Rebuilt lazily after JSON loads.
	wallSet *WallSet
}

// WallSet returns the blocker-unit index for the state's walls, rebuilding it
// from the ordered wall list when the state came from deserialization.
func (gs *GameState) WallSet() *WallSet {
	if gs.wallSet == nil {
		ws := NewWallSet()
		for _, seg := range gs.Walls {
			// The list was produced by validated placements; re-adding
			// cannot collide unless the save file was tampered with.
			ws.Insert(seg)
		}
		gs.wallSet = ws
	}
	return gs.wallSet
}

// InBounds reports whether (row, col) addresses a cell on the board
func (gs *GameState) InBounds(row, col int) bool {
	return row >= 0 && row < gs.BoardSize && col >= 0 && col < gs.BoardSize
}

// PlayerAt returns the index of the player occupying the cell, or -1
func (gs *GameState) PlayerAt(pos Position) int {
	for i := range gs.Players {
		if gs.Players[i].Position == pos {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state, safe to hand out as a snapshot
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.wallSet = nil
	c.Players = make([]Player, len(gs.Players))
	copy(c.Players, gs.Players)
	for i := range c.Players {
		c.Players[i].Walls = append([]WallSegment(nil), gs.Players[i].Walls...)
	}
	c.Walls = append([]WallSegment(nil), gs.Walls...)
	c.History = append([]MoveRecord(nil), gs.History...)
	return &c
}

// addRecord appends a history entry for a committed transition
func (gs *GameState) addRecord(rec MoveRecord) {
	gs.TotalMoves++
	rec.Number = gs.TotalMoves
	gs.History = append(gs.History, rec)
}
