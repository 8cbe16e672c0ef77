// Command analyze prints quick, human-readable heuristics about preset
// files in the project's configs directory. It summarizes board dimensions,
// wall budgets, and preset walls, and compares each player's shortest goal
// distance to flag lopsided handicap setups.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boardgamehub/quoridor/game/engine"
)

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeConfig(file)
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}
	if config.BoardSize == 0 {
		config.BoardSize = engine.DefaultBoardSize
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d\n", config.BoardSize, config.BoardSize)
	fmt.Printf("Players: %d\n", config.NumPlayers)
	fmt.Printf("Preset Walls: %d\n", len(config.PresetWalls))

	if err := engine.ValidateGameConfig(&config); err != nil {
		fmt.Printf("⚠️  INVALID: %v\n", err)
		return
	}

	state := engine.InitGameStateFromConfig(&config)

	distances := make([]int, len(state.Players))
	minDist, maxDist := -1, -1
	for i, p := range state.Players {
		d := goalDistance(state, i)
		distances[i] = d
		fmt.Printf("Player %d: start (%d,%d), %d walls, goal %d squares away\n",
			i, p.Position.Row, p.Position.Col, p.WallsRemaining, d)
		if d < 0 {
			continue
		}
		if minDist < 0 || d < minDist {
			minDist = d
		}
		if d > maxDist {
			maxDist = d
		}
	}

	sealed := 0
	for _, d := range distances {
		if d < 0 {
			sealed++
		}
	}
	if sealed > 0 {
		fmt.Printf("⚠️  CRITICAL: %d players cannot reach their goal under the preset walls!\n", sealed)
		return
	}

	if spread := maxDist - minDist; spread > 0 {
		fmt.Printf("⚠️  Handicap: shortest goal paths differ by %d squares (%d vs %d)\n",
			spread, minDist, maxDist)
	} else {
		fmt.Printf("✅ Balanced: all players start %d squares from their goal\n", minDist)
	}
}

// goalDistance runs a BFS from the player's starting square over the preset
// walls and returns the step count to the nearest goal-edge square, or -1
// when the player is sealed off. Pawns are ignored.
func goalDistance(state *engine.GameState, playerIdx int) int {
	n := state.BoardSize
	player := state.Players[playerIdx]
	walls := state.WallSet()

	atGoal := func(pos engine.Position) bool {
		if player.GoalAxis == engine.GoalRow {
			return pos.Row == player.GoalIndex
		}
		return pos.Col == player.GoalIndex
	}

	type node struct {
		pos  engine.Position
		dist int
	}
	visited := make([]bool, n*n)
	queue := []node{{pos: player.Position}}
	visited[player.Position.Row*n+player.Position.Col] = true

	directions := []engine.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if atGoal(cur.pos) {
			return cur.dist
		}

		for _, d := range directions {
			next := engine.Position{Row: cur.pos.Row + d.Row, Col: cur.pos.Col + d.Col}
			if !state.InBounds(next.Row, next.Col) || visited[next.Row*n+next.Col] {
				continue
			}
			if walls.BlocksStep(cur.pos, next) {
				continue
			}
			visited[next.Row*n+next.Col] = true
			queue = append(queue, node{pos: next, dist: cur.dist + 1})
		}
	}

	return -1
}
