package engine

import "errors"

// Engine error kinds. Every mutator validates fully before mutating; on any
// of these errors the state is unchanged. The engine never formats user-facing
// text; transports translate error kinds for display.
var (
	// ErrOutOfBounds means a coordinate is outside the valid range for the
	// attempted operation (cell or wall anchor).
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrIllegalMove means the destination is not in the active player's
	// legal-move set.
	ErrIllegalMove = errors.New("destination is not a legal move")

	// ErrNoWallsRemaining means the active player has no walls left to place.
	ErrNoWallsRemaining = errors.New("no walls remaining")

	// ErrWallOverlaps means the candidate wall shares a blocker unit with an
	// existing wall of the same orientation.
	ErrWallOverlaps = errors.New("wall overlaps an existing wall")

	// ErrWallCrosses means the candidate wall would cross a perpendicular
	// wall at the same intersection.
	ErrWallCrosses = errors.New("wall crosses an existing wall")

	// ErrWallBlocksAllPaths means the candidate wall would leave some
	// non-winning player with no path to their goal.
	ErrWallBlocksAllPaths = errors.New("wall would block a player's only path to goal")

	// ErrGameOver means a mutating call was attempted after a winner was
	// determined.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidOrientation means a wall orientation other than horizontal
	// or vertical was supplied.
	ErrInvalidOrientation = errors.New("invalid wall orientation")

	// ErrAlreadyOccupied means a blocker unit being inserted is already
	// present in the wall set.
	ErrAlreadyOccupied = errors.New("blocker unit already occupied")
)
