// Package websocket implements the push channel for live board updates.
//
// A Hub groups connected clients by session ID and fans out a state_update
// message, carrying the full game state and the events that produced it, after
// every committed transition. Connections are push-only: incoming frames are
// read solely to keep the connection alive, and all moves flow through the
// REST API or MCP transport.
package websocket
