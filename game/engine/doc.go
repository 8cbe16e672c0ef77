// Package engine implements the rules of Quoridor: a grid-based pursuit and
// blocking game for 2 or 4 players, each racing a pawn to an assigned goal
// edge while placing blocking walls.
//
// The engine package implements the game mechanics including:
//   - Board geometry and coordinate validation
//   - Wall placement with overlap, crossing and path-blocking rules
//   - Legal-move generation, including jump-over and diagonal side-jumps
//   - BFS reachability guaranteeing every player keeps a path to their goal
//   - Turn progression, win detection and save/restore of engine state
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines a game preset (player count, board size, wall
// inventories, optional preset walls) loaded from JSON files.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	moves := gameEngine.LegalMoves()
//	err = gameEngine.ApplyMove(moves[0])
//	err = gameEngine.ApplyWall(engine.WallSegment{
//		Orientation: engine.Horizontal, Row: 4, Col: 3,
//	})
//
// Game Rules:
//
// Each turn the active player either steps their pawn to an adjacent cell
// (jumping over an adjacent opponent when possible) or places a wall. A wall
// occupies two blocker units between cells and may never overlap or cross an
// existing wall, nor cut off any player's last path to their goal edge. The
// first pawn to reach its goal edge wins.
//
// The engine is synchronous and single-threaded: every operation is
// a pure read or an all-or-nothing transition, with O(N^2) worst-case cost
// dominated by the reachability search. It holds no locks; callers embedding
// it behind concurrent transports must serialize mutating calls per match.
package engine
