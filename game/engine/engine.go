package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Snapshot() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	Winner() (int, bool)
	CurrentPlayer() int

	// Rule queries
	LegalMoves() []Position
	CheckWall(seg WallSegment) error

	// State transitions
	ApplyMove(to Position) error
	ApplyWall(seg WallSegment) error

	// Configuration
	GetConfig() *GameConfig

	// History
	History() []MoveRecord
}

// GameEngine implements the Engine interface. It is synchronous and holds no
// locks; callers embedding it in a multi-client context must serialize all
// mutating calls per match.
type GameEngine struct {
	state  *GameState
	config *GameConfig
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the default preset
func NewEngineWithDefaults() *GameEngine {
	return &GameEngine{
		config: DefaultConfig(),
		state:  InitGameStateFromConfig(nil),
	}
}

// GetState returns the live game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// Snapshot returns an independent deep copy of the current state
func (e *GameEngine) Snapshot() *GameState {
	return e.state.Clone()
}

// SetState replaces the game state (used for persistence loading). The wall
// index is rebuilt from the ordered wall list on first use.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.BoardSize < MinBoardSize || state.BoardSize > MaxBoardSize {
		return fmt.Errorf("state board size %d out of range", state.BoardSize)
	}
	if len(state.Players) < MinPlayers || len(state.Players) > MaxPlayers {
		return fmt.Errorf("state has %d players, want %d-%d", len(state.Players), MinPlayers, MaxPlayers)
	}
	e.state = state
	return nil
}

// Reset reinitializes to the starting layout: starting cells and goal
// assignments, full wall inventories, empty wall set (preset walls reapplied),
// player 0 to act.
func (e *GameEngine) Reset() *GameState {
	e.state = InitGameStateFromConfig(e.config)
	return e.state
}

// IsGameOver returns whether a winner has been determined
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// Winner returns the winning player index; ok is false while in progress
func (e *GameEngine) Winner() (int, bool) {
	if !e.state.GameOver {
		return NoWinner, false
	}
	return e.state.Winner, true
}

// CurrentPlayer returns the index of the player to act
func (e *GameEngine) CurrentPlayer() int {
	return e.state.CurrentPlayer
}

// LegalMoves returns the legal destination cells for the active player
func (e *GameEngine) LegalMoves() []Position {
	return LegalMoves(e.state)
}

// CheckWall reports whether the active player could legally place the wall,
// without mutating anything. Intended for hover and preview feedback.
func (e *GameEngine) CheckWall(seg WallSegment) error {
	return CheckWall(e.state, seg)
}

// ApplyMove moves the active player to the destination cell. It validates
// fully before mutating: on error the state is unchanged. Reaching the goal
// cell ends the game with the mover as winner; otherwise the turn advances.
func (e *GameEngine) ApplyMove(to Position) error {
	if e.state.GameOver {
		return ErrGameOver
	}
	if !e.state.InBounds(to.Row, to.Col) {
		return ErrOutOfBounds
	}

	legal := false
	for _, pos := range LegalMoves(e.state) {
		if pos == to {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalMove
	}

	idx := e.state.CurrentPlayer
	player := &e.state.Players[idx]
	from := player.Position
	player.Position = to

	e.state.addRecord(MoveRecord{
		Kind:      KindMove,
		Player:    idx,
		From:      from,
		To:        to,
		Timestamp: time.Now().Unix(),
	})

	if player.AtGoal() {
		e.state.GameOver = true
		e.state.Winner = idx
		return nil
	}

	e.advanceTurn()
	return nil
}

// ApplyWall places a wall for the active player. Validation order: game over,
// wall inventory, then the structural and reachability checks of CheckWall.
// On success the segment is committed, the inventory decremented, ownership
// recorded and the turn advanced.
func (e *GameEngine) ApplyWall(seg WallSegment) error {
	if e.state.GameOver {
		return ErrGameOver
	}

	idx := e.state.CurrentPlayer
	player := &e.state.Players[idx]
	if player.WallsRemaining <= 0 {
		return ErrNoWallsRemaining
	}
	if err := CheckWall(e.state, seg); err != nil {
		return err
	}

	if err := e.state.WallSet().Insert(seg); err != nil {
		// CheckWall already ruled out overlaps
		return err
	}
	e.state.Walls = append(e.state.Walls, seg)
	player.Walls = append(player.Walls, seg)
	player.WallsRemaining--

	wall := seg
	e.state.addRecord(MoveRecord{
		Kind:      KindWall,
		Player:    idx,
		Wall:      &wall,
		Timestamp: time.Now().Unix(),
	})

	e.advanceTurn()
	return nil
}

// GetConfig returns the engine's configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// History returns the committed transition history
func (e *GameEngine) History() []MoveRecord {
	return e.state.History
}

func (e *GameEngine) advanceTurn() {
	e.state.CurrentPlayer = (e.state.CurrentPlayer + 1) % len(e.state.Players)
}
