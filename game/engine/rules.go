package engine

// CheckWall validates a candidate wall segment against the current state and
// returns nil when placing it would be legal. Checks run cheapest first:
// orientation and anchor bounds, overlap, crossing, then the BFS-backed
// no-path-blocked invariant against a trial wall set. Adding one wall can cut
// off several players at once, so every non-winning player is re-checked.
func CheckWall(state *GameState, seg WallSegment) error {
	if seg.Orientation != Horizontal && seg.Orientation != Vertical {
		return ErrInvalidOrientation
	}
	if seg.Row < 0 || seg.Row >= state.BoardSize-1 || seg.Col < 0 || seg.Col >= state.BoardSize-1 {
		return ErrOutOfBounds
	}

	walls := state.WallSet()
	if walls.WouldOverlap(seg) {
		return ErrWallOverlaps
	}
	if walls.WouldCross(seg) {
		return ErrWallCrosses
	}

	trial := walls.Clone()
	trial.Insert(seg)

	for i := range state.Players {
		if state.Players[i].AtGoal() {
			continue
		}
		if !CanReachGoal(state, i, trial) {
			return ErrWallBlocksAllPaths
		}
	}

	return nil
}
