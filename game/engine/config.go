package engine

import "fmt"

// DefaultConfig returns the classic two-player preset: 9x9 board, 10 walls
// per player, no preset walls.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:        "Classic",
		Description: "Standard two-player game on a 9x9 board",
		NumPlayers:  2,
		BoardSize:   DefaultBoardSize,
		WallCounts:  []int{10, 10},
	}
}

// ValidateGameConfig checks a preset for structural validity: player count,
// board size, wall inventories and preset walls (which must themselves form a
// legal sequence of placements from the starting layout).
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config name is required")
	}
	if config.NumPlayers != 2 && config.NumPlayers != 4 {
		return fmt.Errorf("num_players must be 2 or 4, got %d", config.NumPlayers)
	}
	if config.BoardSize < MinBoardSize || config.BoardSize > MaxBoardSize {
		return fmt.Errorf("board_size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.BoardSize)
	}
	if config.BoardSize%2 == 0 {
		return fmt.Errorf("board_size must be odd so starting cells are centered, got %d", config.BoardSize)
	}
	if len(config.WallCounts) != 0 && len(config.WallCounts) != config.NumPlayers {
		return fmt.Errorf("wall_counts must have %d entries, got %d", config.NumPlayers, len(config.WallCounts))
	}
	for i, count := range config.WallCounts {
		if count < 0 {
			return fmt.Errorf("wall_counts[%d] must be non-negative, got %d", i, count)
		}
	}
	if err := validatePresetWalls(config); err != nil {
		return err
	}
	return nil
}

// validatePresetWalls replays the preset walls against the starting layout,
// applying the same legality rules as live placement.
func validatePresetWalls(config *GameConfig) error {
	if len(config.PresetWalls) == 0 {
		return nil
	}

	state := newStartingState(config, nil)
	for i, seg := range config.PresetWalls {
		if err := CheckWall(state, seg); err != nil {
			return fmt.Errorf("preset wall %d (%s at %d,%d): %w", i, seg.Orientation, seg.Row, seg.Col, err)
		}
		state.WallSet().Insert(seg)
		state.Walls = append(state.Walls, seg)
	}
	return nil
}

// startingPlayers returns the initial seats for a board of side n: player 0 at
// the bottom racing to row 0, player 1 at the top racing to row n-1, and in
// 4-player games player 2 on the left racing to the last column and player 3
// on the right racing to column 0.
func startingPlayers(numPlayers, n int, wallCounts []int) []Player {
	seats := []Player{
		{Position: Position{Row: n - 1, Col: n / 2}, GoalAxis: GoalRow, GoalIndex: 0},
		{Position: Position{Row: 0, Col: n / 2}, GoalAxis: GoalRow, GoalIndex: n - 1},
		{Position: Position{Row: n / 2, Col: 0}, GoalAxis: GoalCol, GoalIndex: n - 1},
		{Position: Position{Row: n / 2, Col: n - 1}, GoalAxis: GoalCol, GoalIndex: 0},
	}[:numPlayers]

	for i := range seats {
		if len(wallCounts) == numPlayers {
			seats[i].WallsRemaining = wallCounts[i]
		} else {
			seats[i].WallsRemaining = DefaultWallCounts[i]
		}
		seats[i].Walls = []WallSegment{}
	}
	return seats
}

// newStartingState builds the initial state for a config without preset walls
// applied; presetWalls, when non-nil, are inserted without legality checks
// (the config validator has already replayed them).
func newStartingState(config *GameConfig, presetWalls []WallSegment) *GameState {
	state := &GameState{
		BoardSize:     config.BoardSize,
		Players:       startingPlayers(config.NumPlayers, config.BoardSize, config.WallCounts),
		Walls:         []WallSegment{},
		CurrentPlayer: 0,
		Winner:        NoWinner,
	}
	for _, seg := range presetWalls {
		state.WallSet().Insert(seg)
		state.Walls = append(state.Walls, seg)
	}
	return state
}

// InitGameStateFromConfig creates the starting game state for a config,
// falling back to the default preset when config is nil.
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultConfig()
	}
	return newStartingState(config, config.PresetWalls)
}
