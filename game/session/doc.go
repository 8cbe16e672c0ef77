// Package session manages game session lifecycle and persistence.
//
// Manager keeps live sessions in memory behind a read-write mutex, with
// case-insensitive 4-character hex IDs. When constructed with a
// SessionPersistence implementation it autosaves sessions on creation and on
// demand, transparently reloads sessions that have fallen out of memory, and
// can bulk load or save everything on startup and shutdown.
//
// FilePersistence stores one JSON file per session containing the complete
// engine state, so an in-progress match survives a server restart.
package session
