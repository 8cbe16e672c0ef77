// Package config loads and caches game presets from JSON files.
//
// A preset file names a game variant: player count, board size, per-seat wall
// inventories and optional preset walls for handicap or teaching setups. The
// manager caches parsed presets, validates them through the engine's config
// validator, and falls back to the built-in classic two-player game when the
// directory holds no usable preset.
package config
