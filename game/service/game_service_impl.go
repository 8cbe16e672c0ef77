package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/boardgamehub/quoridor/game/engine"
)

// Engine error kinds as machine-friendly codes. Transports and clients match
// on these; the engine itself never formats user-facing text.
const (
	CodeOutOfBounds      = "out_of_bounds"
	CodeIllegalMove      = "illegal_move"
	CodeNoWallsRemaining = "no_walls_remaining"
	CodeWallOverlaps     = "wall_overlaps"
	CodeWallCrosses      = "wall_crosses"
	CodeBlocksAllPaths   = "blocks_all_paths"
	CodeGameOver         = "game_over"
	CodeBadOrientation   = "invalid_orientation"
)

// ErrorCode maps an engine error to its wire code, or "" for nil
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, engine.ErrOutOfBounds):
		return CodeOutOfBounds
	case errors.Is(err, engine.ErrIllegalMove):
		return CodeIllegalMove
	case errors.Is(err, engine.ErrNoWallsRemaining):
		return CodeNoWallsRemaining
	case errors.Is(err, engine.ErrWallOverlaps):
		return CodeWallOverlaps
	case errors.Is(err, engine.ErrWallCrosses):
		return CodeWallCrosses
	case errors.Is(err, engine.ErrWallBlocksAllPaths):
		return CodeBlocksAllPaths
	case errors.Is(err, engine.ErrGameOver):
		return CodeGameOver
	case errors.Is(err, engine.ErrInvalidOrientation):
		return CodeBadOrientation
	}
	return "internal"
}

// gameServiceImpl implements the GameService interface. Its mutex enforces the
// single-writer discipline the engine requires: one state transition in flight
// at a time per service.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	log      *logrus.Entry
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		log:      logrus.WithField("component", "service"),
	}
}

// CreateSession creates a new game session from a named preset (or the
// default preset when configName is empty).
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if availableConfigs, listErr := s.configs.ListConfigs(); listErr == nil && len(availableConfigs) > 0 {
				var configIDs []string
				for _, cfg := range availableConfigs {
					configIDs = append(configIDs, cfg.ConfigID)
				}
				return nil, fmt.Errorf("config %q not found, available configs: %s", configName, strings.Join(configIDs, ", "))
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"session": session.ID,
		"config":  config.Name,
		"players": config.NumPlayers,
	}).Info("session created")

	return s.sessionInfo(session, configName), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session, ""), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, ""))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move applies a pawn move for the session's active player
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, to engine.Position) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	mover := sess.Engine.CurrentPlayer()
	if err := sess.Engine.ApplyMove(to); err != nil {
		return s.rejection(sess, err), nil
	}

	events := []GameEvent{{
		Type:      "move",
		Player:    mover,
		Position:  &to,
		Timestamp: time.Now(),
	}}
	if sess.Engine.IsGameOver() {
		winner, _ := sess.Engine.Winner()
		events = append(events, GameEvent{Type: "game_over", Player: winner, Timestamp: time.Now()})
		s.log.WithFields(logrus.Fields{"session": sess.ID, "winner": winner}).Info("game over")
	}

	s.persist(sess)
	return s.turnResult(sess, events), nil
}

// PlaceWall places a wall for the session's active player
func (s *gameServiceImpl) PlaceWall(ctx context.Context, sessionID string, seg engine.WallSegment) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	placer := sess.Engine.CurrentPlayer()
	if err := sess.Engine.ApplyWall(seg); err != nil {
		return s.rejection(sess, err), nil
	}

	wall := seg
	events := []GameEvent{{
		Type:      "wall",
		Player:    placer,
		Wall:      &wall,
		Timestamp: time.Now(),
	}}

	s.persist(sess)
	return s.turnResult(sess, events), nil
}

// PreviewWall reports wall legality without mutating, for hover feedback
func (s *gameServiceImpl) PreviewWall(ctx context.Context, sessionID string, seg engine.WallSegment) (*WallPreview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	if err := sess.Engine.CheckWall(seg); err != nil {
		return &WallPreview{Legal: false, Reason: ErrorCode(err)}, nil
	}
	return &WallPreview{Legal: true}, nil
}

// LegalMoves returns the legal destinations for the session's active player
func (s *gameServiceImpl) LegalMoves(ctx context.Context, sessionID string) ([]engine.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return sess.Engine.LegalMoves(), nil
}

// Reset reinitializes the session's game to the starting layout
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	sess.Engine.Reset()
	s.persist(sess)
	s.log.WithField("session", sess.ID).Info("game reset")
	return sess.Engine.Snapshot(), nil
}

// GetGameState returns the current game state for a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return sess.Engine.Snapshot(), nil
}

// GetMoveHistory returns paginated history for a session
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.History()
	total := len(history)

	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}

	ordered := make([]engine.MoveRecord, total)
	copy(ordered, history)
	if opts.Order == "desc" {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	return &HistoryResponse{
		Moves:       ordered[start:end],
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns information about all available presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a preset by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a preset
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// sessionInfo assembles the wire representation of a session
func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	if configID == "" {
		configID = s.getConfigID(sess.Config.Name)
	}
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.Snapshot(),
		GameConfig:     sess.Config,
	}
}

// getConfigID returns the config_id for a given display name
func (s *gameServiceImpl) getConfigID(configName string) string {
	if availableConfigs, err := s.configs.ListConfigs(); err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// rejection builds the result for an engine-rejected transition. The state is
// the unchanged pre-call state.
func (s *gameServiceImpl) rejection(sess *Session, err error) *TurnResult {
	winner, _ := sess.Engine.Winner()
	return &TurnResult{
		Success:   false,
		ErrorCode: ErrorCode(err),
		GameState: sess.Engine.Snapshot(),
		GameOver:  sess.Engine.IsGameOver(),
		Winner:    winner,
	}
}

// turnResult builds the result for a committed transition. The snapshot keeps
// transports from encoding the live state after the service lock is released.
func (s *gameServiceImpl) turnResult(sess *Session, events []GameEvent) *TurnResult {
	winner, _ := sess.Engine.Winner()
	return &TurnResult{
		Success:    true,
		GameState:  sess.Engine.Snapshot(),
		Events:     events,
		LegalMoves: sess.Engine.LegalMoves(),
		GameOver:   sess.Engine.IsGameOver(),
		Winner:     winner,
	}
}

// persist autosaves the session after a committed transition
func (s *gameServiceImpl) persist(sess *Session) {
	if err := s.sessions.Save(sess.ID); err != nil {
		s.log.WithError(err).WithField("session", sess.ID).Warn("failed to persist session")
	}
}
