package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Classic",
		"description": "Standard two-player board",
		"num_players": 2,
		"board_size": 9,
		"wall_counts": [10, 10]
	}`

	result := validateConfig(writeConfig(t, validConfig))
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Board: 9x9") {
		t.Errorf("Expected board info in report, got: %s", joined)
	}
	if !strings.Contains(joined, "goal 8 squares away") {
		t.Errorf("Expected shortest distance 8 on an open board, got: %s", joined)
	}
}

func TestValidateConfig_DefaultBoardSize(t *testing.T) {
	config := `{
		"name": "No Size",
		"num_players": 2,
		"wall_counts": [10, 10]
	}`

	result := validateConfig(writeConfig(t, config))
	if !result.Valid {
		t.Errorf("Expected board size to default, got errors: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	result := validateConfig(writeConfig(t, "{not valid json"))
	if result.Valid {
		t.Error("Expected invalid result for malformed JSON")
	}
}

func TestValidateConfig_BadPlayerCount(t *testing.T) {
	config := `{
		"name": "Three Players",
		"num_players": 3,
		"board_size": 9,
		"wall_counts": [10, 10, 10]
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid result for 3-player config")
	}
}

func TestValidateConfig_OverlappingPresetWalls(t *testing.T) {
	config := `{
		"name": "Overlap",
		"num_players": 2,
		"board_size": 9,
		"wall_counts": [10, 10],
		"preset_walls": [
			{"orientation": "horizontal", "row": 4, "col": 2},
			{"orientation": "horizontal", "row": 4, "col": 3}
		]
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid result for overlapping preset walls")
	}
}

func TestValidateConfig_PresetWallDistances(t *testing.T) {
	// A single wall in front of player 1's start lengthens their path.
	config := `{
		"name": "Handicap",
		"num_players": 2,
		"board_size": 9,
		"wall_counts": [10, 10],
		"preset_walls": [
			{"orientation": "horizontal", "row": 0, "col": 3}
		]
	}`

	result := validateConfig(writeConfig(t, config))
	if !result.Valid {
		t.Fatalf("Expected valid config, got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Player 1: start (0,4), 10 walls, goal 9 squares away") {
		t.Errorf("Expected lengthened path for player 1, got: %s", joined)
	}
	if !strings.Contains(joined, "Preset walls: 1") {
		t.Errorf("Expected preset wall count in report, got: %s", joined)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/nonexistent/config.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}
