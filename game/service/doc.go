// Package service defines the business logic layer between transports and the
// rules engine.
//
// The service package provides:
//   - GameService: the main interface for all game operations
//   - Session and preset management abstractions (SessionManager, ConfigManager)
//   - Result types shared by the REST, WebSocket and MCP transports
//
// Engine rule rejections (illegal move, illegal wall, game over) are not
// transport errors: they come back as TurnResult values with Success=false and
// a machine-friendly ErrorCode, alongside the unchanged game state. Transport
// errors are reserved for infrastructure failures such as unknown sessions.
//
// The service serializes all mutating calls through its own lock, providing
// the single-writer discipline the synchronous engine requires when it is
// shared between concurrent clients.
//
// Architecture:
//
//	Transports (REST API, WebSocket, MCP)
//	    |
//	GameService (this package)
//	    |
//	SessionManager + ConfigManager
//	    |
//	engine.GameEngine
package service
