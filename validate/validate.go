// Command validate provides a small CLI that validates game preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Player count, board size, and wall budget constraints
//   - Preset walls: bounds, overlaps, crossings
//   - Reachability: every player can still reach their goal edge under
//     the preset walls, with the shortest path length reported
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boardgamehub/quoridor/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single preset JSON file. It performs
// structural checks through the engine's validator and then runs a
// reachability analysis for every player under the preset walls.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.BoardSize == 0 {
		config.BoardSize = engine.DefaultBoardSize
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid config: %v", err))
		return result
	}

	state := engine.InitGameStateFromConfig(&config)

	// Goal reachability with shortest distances
	unreachable := 0
	distances := make([]int, len(state.Players))
	for i := range state.Players {
		if !engine.CanReachGoal(state, i, nil) {
			unreachable++
			distances[i] = -1
			result.Errors = append(result.Errors, fmt.Sprintf("Player %d cannot reach their goal edge", i))
			continue
		}
		distances[i] = shortestGoalDistance(state, i)
	}
	if unreachable > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Reachability failure: %d/%d players sealed off by preset walls", unreachable, len(state.Players)))
		return result
	}

	// Informational data
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d", config.BoardSize, config.BoardSize))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d", config.NumPlayers))
	for i, p := range state.Players {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Player %d: start (%d,%d), %d walls, goal %d squares away",
			i, p.Position.Row, p.Position.Col, p.WallsRemaining, distances[i]))
	}
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Preset walls: %d", len(config.PresetWalls)))

	return result
}

// shortestGoalDistance runs a BFS from the player's starting square and
// returns the number of steps to the nearest goal-edge square. Opposing
// pawns are ignored: preset analysis measures the open-board distance.
func shortestGoalDistance(state *engine.GameState, playerIdx int) int {
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
			if !state.InBounds(next.Row, next.Col) {
				continue
			}
			if visited[next.Row*n+next.Col] {
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

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
