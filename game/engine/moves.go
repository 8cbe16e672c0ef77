package engine

import "sort"

// LegalMoves computes the set of legal destination cells for the active
// player. For each unblocked orthogonal direction: an empty neighbor is a
// destination; an occupied neighbor allows a straight jump two cells further
// when that landing is on the board, unblocked and empty. When the straight
// jump would land off the board, the two diagonal side-jumps perpendicular to
// the original direction are tried instead, each checked for bounds, the wall
// on its half-step from the occupied neighbor, and an empty landing. A straight
// jump that is on the board but wall-blocked gets no diagonal fallback.
//
// The result is sorted by row then column, so repeated calls on an unchanged
// state yield identical slices.
func LegalMoves(state *GameState) []Position {
	if state.GameOver {
		return nil
	}

	walls := state.WallSet()
	from := state.Players[state.CurrentPlayer].Position
	found := make(map[Position]bool)

	for _, d := range directions {
		next := Position{Row: from.Row + d.Row, Col: from.Col + d.Col}
		if !state.InBounds(next.Row, next.Col) {
			continue
		}
		if walls.BlocksStep(from, next) {
			continue
		}

		if state.PlayerAt(next) < 0 {
			found[next] = true
			continue
		}

		// Neighbor occupied, try jumping over
		jump := Position{Row: next.Row + d.Row, Col: next.Col + d.Col}
		if !state.InBounds(jump.Row, jump.Col) {
			// Jump would leave the board, try the diagonal side-jumps
			for _, s := range perpendicular(d) {
				diag := Position{Row: next.Row + s.Row, Col: next.Col + s.Col}
				if !state.InBounds(diag.Row, diag.Col) {
					continue
				}
				if walls.BlocksStep(next, diag) {
					continue
				}
				if state.PlayerAt(diag) >= 0 {
					continue
				}
				found[diag] = true
			}
			continue
		}
		if walls.BlocksStep(next, jump) {
			continue
		}
		if state.PlayerAt(jump) >= 0 {
			continue
		}
		found[jump] = true
	}

	moves := make([]Position, 0, len(found))
	for pos := range found {
		moves = append(moves, pos)
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Row != moves[j].Row {
			return moves[i].Row < moves[j].Row
		}
		return moves[i].Col < moves[j].Col
	})
	return moves
}

// perpendicular returns the two directions orthogonal to d
func perpendicular(d Position) [2]Position {
	if d.Row != 0 {
		return [2]Position{{Col: -1}, {Col: 1}}
	}
	return [2]Position{{Row: -1}, {Row: 1}}
}
