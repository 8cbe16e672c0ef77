package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestDefaultSessionsDir(t *testing.T) {
	dir := defaultSessionsDir()
	if dir == "" {
		t.Fatal("Expected a default sessions directory")
	}
	if filepath.Base(dir) != "sessions" {
		t.Errorf("Expected sessions directory, got %s", dir)
	}
}

func TestInitializeServices(t *testing.T) {
	configDir := t.TempDir()
	preset := `{
		"name": "Classic",
		"num_players": 2,
		"board_size": 9,
		"wall_counts": [10, 10]
	}`
	if err := os.WriteFile(filepath.Join(configDir, "classic.json"), []byte(preset), 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}

	gameService, sessionManager, err := initializeServices(configDir, t.TempDir())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
	if sessionManager == nil {
		t.Fatal("Expected session manager to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	if _, _, err := initializeServices("/non/existent/path", t.TempDir()); err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

// main(), runServer(), and runStdioMCP() start servers and block; they are
// exercised by integration tests against a running process rather than here.
