package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/boardgamehub/quoridor/game/engine"
	"github.com/boardgamehub/quoridor/game/service"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	// Session Management
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	// Game Operations
	MoveFunc        func(ctx context.Context, sessionID string, to engine.Position) (*service.TurnResult, error)
	PlaceWallFunc   func(ctx context.Context, sessionID string, seg engine.WallSegment) (*service.TurnResult, error)
	PreviewWallFunc func(ctx context.Context, sessionID string, seg engine.WallSegment) (*service.WallPreview, error)
	LegalMovesFunc  func(ctx context.Context, sessionID string) ([]engine.Position, error)
	ResetFunc       func(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameStateFunc   func(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)

	// Configuration
	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.GameConfig) error
}

func testState() *engine.GameState {
	return engine.InitGameStateFromConfig(engine.DefaultConfig())
}

func (m *MockGameService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "test-session",
		ConfigName: configName,
		CreatedAt:  time.Now(),
		GameState:  testState(),
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "classic",
		CreatedAt:  time.Now(),
		GameState:  testState(),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockGameService) Move(ctx context.Context, sessionID string, to engine.Position) (*service.TurnResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, to)
	}
	return &service.TurnResult{Success: true, GameState: testState(), Winner: engine.NoWinner}, nil
}

func (m *MockGameService) PlaceWall(ctx context.Context, sessionID string, seg engine.WallSegment) (*service.TurnResult, error) {
	if m.PlaceWallFunc != nil {
		return m.PlaceWallFunc(ctx, sessionID, seg)
	}
	return &service.TurnResult{Success: true, GameState: testState(), Winner: engine.NoWinner}, nil
}

func (m *MockGameService) PreviewWall(ctx context.Context, sessionID string, seg engine.WallSegment) (*service.WallPreview, error) {
	if m.PreviewWallFunc != nil {
		return m.PreviewWallFunc(ctx, sessionID, seg)
	}
	return &service.WallPreview{Legal: true}, nil
}

func (m *MockGameService) LegalMoves(ctx context.Context, sessionID string) ([]engine.Position, error) {
	if m.LegalMovesFunc != nil {
		return m.LegalMovesFunc(ctx, sessionID)
	}
	return []engine.Position{{Row: 7, Col: 4}}, nil
}

func (m *MockGameService) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	return testState(), nil
}

func (m *MockGameService) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.GetGameStateFunc != nil {
		return m.GetGameStateFunc(ctx, sessionID)
	}
	return testState(), nil
}

func (m *MockGameService) GetMoveHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetMoveHistoryFunc != nil {
		return m.GetMoveHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{Page: 1, TotalPages: 1}, nil
}

func (m *MockGameService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{
		{ConfigID: "classic", Name: "Classic", NumPlayers: 2, BoardSize: 9},
	}, nil
}

func (m *MockGameService) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return engine.DefaultConfig(), nil
}

func (m *MockGameService) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

func newTestServer(mock *MockGameService) *Server {
	return NewServer(mock, nil)
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServer_CreateSession(t *testing.T) {
	s := newTestServer(&MockGameService{})

	rec := doRequest(t, s, "POST", "/api/sessions", map[string]string{"config_id": "classic"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var info service.SessionInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if info.ID != "test-session" {
		t.Errorf("Unexpected session info: %+v", info)
	}
}

func TestServer_CreateSession_UnknownConfig(t *testing.T) {
	s := newTestServer(&MockGameService{
		CreateSessionFunc: func(ctx context.Context, configName string) (*service.SessionInfo, error) {
			return nil, fmt.Errorf("config %q not found", configName)
		},
	})

	rec := doRequest(t, s, "POST", "/api/sessions", map[string]string{"config_id": "bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestServer_GetSession_NotFound(t *testing.T) {
	s := newTestServer(&MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, errors.New("session not found")
		},
	})

	rec := doRequest(t, s, "GET", "/api/sessions/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}

	var errResp map[string]string
	json.NewDecoder(rec.Body).Decode(&errResp)
	if errResp["error"] == "" {
		t.Error("Expected error message in response body")
	}
}

func TestServer_Move(t *testing.T) {
	var gotTo engine.Position
	s := newTestServer(&MockGameService{
		MoveFunc: func(ctx context.Context, sessionID string, to engine.Position) (*service.TurnResult, error) {
			gotTo = to
			return &service.TurnResult{Success: true, GameState: testState(), Winner: engine.NoWinner}, nil
		},
	})

	rec := doRequest(t, s, "POST", "/api/sessions/abcd/move", map[string]int{"row": 7, "col": 4})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotTo != (engine.Position{Row: 7, Col: 4}) {
		t.Errorf("Expected destination (7,4), got %+v", gotTo)
	}
}

func TestServer_Move_RejectionIs200(t *testing.T) {
	s := newTestServer(&MockGameService{
		MoveFunc: func(ctx context.Context, sessionID string, to engine.Position) (*service.TurnResult, error) {
			return &service.TurnResult{
				Success:   false,
				ErrorCode: service.CodeIllegalMove,
				GameState: testState(),
				Winner:    engine.NoWinner,
			}, nil
		},
	})

	rec := doRequest(t, s, "POST", "/api/sessions/abcd/move", map[string]int{"row": 0, "col": 0})
	if rec.Code != http.StatusOK {
		t.Fatalf("Rule rejections ride a 200, got %d", rec.Code)
	}

	var result service.TurnResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Success || result.ErrorCode != service.CodeIllegalMove {
		t.Errorf("Unexpected result: %+v", result)
	}
}

func TestServer_Move_BadBody(t *testing.T) {
	s := newTestServer(&MockGameService{})

	req := httptest.NewRequest("POST", "/api/sessions/abcd/move", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestServer_PlaceWall(t *testing.T) {
	var gotSeg engine.WallSegment
	s := newTestServer(&MockGameService{
		PlaceWallFunc: func(ctx context.Context, sessionID string, seg engine.WallSegment) (*service.TurnResult, error) {
			gotSeg = seg
			return &service.TurnResult{Success: true, GameState: testState(), Winner: engine.NoWinner}, nil
		},
	})

	rec := doRequest(t, s, "POST", "/api/sessions/abcd/walls", map[string]interface{}{
		"row": 4, "col": 3, "orientation": "vertical",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := engine.WallSegment{Orientation: engine.Vertical, Row: 4, Col: 3}
	if gotSeg != want {
		t.Errorf("Expected segment %+v, got %+v", want, gotSeg)
	}
}

func TestServer_PreviewWall(t *testing.T) {
	var gotSeg engine.WallSegment
	s := newTestServer(&MockGameService{
		PreviewWallFunc: func(ctx context.Context, sessionID string, seg engine.WallSegment) (*service.WallPreview, error) {
			gotSeg = seg
			return &service.WallPreview{Legal: false, Reason: service.CodeWallCrosses}, nil
		},
	})

	rec := doRequest(t, s, "GET", "/api/sessions/abcd/walls/preview?row=2&col=5&orientation=horizontal", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	want := engine.WallSegment{Orientation: engine.Horizontal, Row: 2, Col: 5}
	if gotSeg != want {
		t.Errorf("Expected segment %+v, got %+v", want, gotSeg)
	}

	var preview service.WallPreview
	json.NewDecoder(rec.Body).Decode(&preview)
	if preview.Legal || preview.Reason != service.CodeWallCrosses {
		t.Errorf("Unexpected preview: %+v", preview)
	}
}

func TestServer_PreviewWall_MissingParams(t *testing.T) {
	s := newTestServer(&MockGameService{})

	rec := doRequest(t, s, "GET", "/api/sessions/abcd/walls/preview?orientation=horizontal", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without row/col, got %d", rec.Code)
	}
}

func TestServer_LegalMoves(t *testing.T) {
	s := newTestServer(&MockGameService{})

	rec := doRequest(t, s, "GET", "/api/sessions/abcd/legal-moves", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var response struct {
		Moves []engine.Position `json:"moves"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Moves) != 1 || response.Moves[0] != (engine.Position{Row: 7, Col: 4}) {
		t.Errorf("Unexpected moves: %+v", response.Moves)
	}
}

func TestServer_History_QueryParams(t *testing.T) {
	var gotOpts service.HistoryOptions
	s := newTestServer(&MockGameService{
		GetMoveHistoryFunc: func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
			gotOpts = opts
			return &service.HistoryResponse{Page: opts.Page}, nil
		},
	})

	rec := doRequest(t, s, "GET", "/api/sessions/abcd/history?page=3&limit=10&order=desc", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotOpts.Page != 3 || gotOpts.Limit != 10 || gotOpts.Order != "desc" {
		t.Errorf("Unexpected options: %+v", gotOpts)
	}
}

func TestServer_Reset(t *testing.T) {
	s := newTestServer(&MockGameService{})

	rec := doRequest(t, s, "POST", "/api/sessions/abcd/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var state engine.GameState
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("Failed to decode state: %v", err)
	}
	if state.BoardSize != 9 {
		t.Errorf("Unexpected state: board size %d", state.BoardSize)
	}
}

func TestServer_DeleteSession(t *testing.T) {
	deleted := ""
	s := newTestServer(&MockGameService{
		DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	})

	rec := doRequest(t, s, "DELETE", "/api/sessions/abcd", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if deleted != "abcd" {
		t.Errorf("Expected abcd deleted, got %q", deleted)
	}
}

func TestServer_ListConfigs(t *testing.T) {
	s := newTestServer(&MockGameService{})

	rec := doRequest(t, s, "GET", "/api/configs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var configs []*service.ConfigInfo
	if err := json.NewDecoder(rec.Body).Decode(&configs); err != nil {
		t.Fatalf("Failed to decode configs: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Unexpected configs: %+v", configs)
	}
}

func TestServer_CreateConfig(t *testing.T) {
	var savedName string
	var savedConfig *engine.GameConfig
	s := newTestServer(&MockGameService{
		SaveConfigFunc: func(ctx context.Context, configName string, config *engine.GameConfig) error {
			savedName = configName
			savedConfig = config
			return nil
		},
	})

	body := map[string]interface{}{
		"name": "custom",
		"config": map[string]interface{}{
			"name":       "Custom",
			"num_players": 2,
			"board_size": 11,
		},
	}
	rec := doRequest(t, s, "POST", "/api/configs", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if savedName != "custom" || savedConfig == nil || savedConfig.BoardSize != 11 {
		t.Errorf("Unexpected save: name=%q config=%+v", savedName, savedConfig)
	}
}
