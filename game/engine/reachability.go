package engine

// directions enumerates the four orthogonal steps: up, down, left, right
var directions = [4]Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// CanReachGoal runs a breadth-first search from the player's current cell over
// the 4-neighborhood, pruned by the trial wall set, and reports whether any
// reachable cell satisfies the player's goal predicate. A nil trial means the
// walls already on the board. Only reachability matters, not path length, so
// no tie-breaking is needed.
func CanReachGoal(state *GameState, playerIdx int, trial *WallSet) bool {
	player := &state.Players[playerIdx]
	n := state.BoardSize

	if trial == nil {
		trial = state.WallSet()
	}

	atGoal := func(pos Position) bool {
		if player.GoalAxis == GoalRow {
			return pos.Row == player.GoalIndex
		}
		return pos.Col == player.GoalIndex
	}

	visited := make([]bool, n*n)
	queue := []Position{player.Position}
	visited[player.Position.Row*n+player.Position.Col] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if atGoal(curr) {
			return true
		}

		for _, d := range directions {
			next := Position{Row: curr.Row + d.Row, Col: curr.Col + d.Col}
			if !state.InBounds(next.Row, next.Col) {
				continue
			}
			if visited[next.Row*n+next.Col] {
				continue
			}
			if trial.BlocksStep(curr, next) {
				continue
			}
			visited[next.Row*n+next.Col] = true
			queue = append(queue, next)
		}
	}

	return false
}
