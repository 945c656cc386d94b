package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/room"
	"github.com/mcdev12/mindmeld/go/internal/rounds"
)

// stubCoordinator returns canned results so handler behavior can be tested in
// isolation.
type stubCoordinator struct {
	createResult *room.CreateGameResult
	joinResult   *room.JoinGameResult
	round        *models.Round
	snapshot     *room.Snapshot
	err          error
}

func (s *stubCoordinator) CreateGame(ctx context.Context, name string) (*room.CreateGameResult, error) {
	return s.createResult, s.err
}

func (s *stubCoordinator) JoinGame(ctx context.Context, roomCode, name string) (*room.JoinGameResult, error) {
	return s.joinResult, s.err
}

func (s *stubCoordinator) SubmitChoice(ctx context.Context, gameID, playerID uuid.UUID, choice string) (*models.Round, error) {
	return s.round, s.err
}

func (s *stubCoordinator) Snapshot(ctx context.Context, gameID uuid.UUID) (*room.Snapshot, error) {
	return s.snapshot, s.err
}

func doRequest(t *testing.T, stub *stubCoordinator, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	NewService(stub).Routes().ServeHTTP(rec, req)
	return rec
}

func TestCreateGameHandler(t *testing.T) {
	stub := &stubCoordinator{
		createResult: &room.CreateGameResult{
			GameID:   uuid.New(),
			RoomCode: "AB12CD",
			PlayerID: uuid.New(),
		},
	}

	rec := doRequest(t, stub, http.MethodPost, "/api/games", CreateGameRequest{Name: "ana"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, expected 201", rec.Code)
	}

	var res room.CreateGameResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.RoomCode != "AB12CD" {
		t.Errorf("room code = %q", res.RoomCode)
	}
}

func TestCreateGameHandlerRequiresName(t *testing.T) {
	rec := doRequest(t, &stubCoordinator{}, http.MethodPost, "/api/games", CreateGameRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestJoinGameHandlerRequiresFields(t *testing.T) {
	rec := doRequest(t, &stubCoordinator{}, http.MethodPost, "/api/join", JoinGameRequest{RoomCode: "AB12CD"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestSubmitChoiceHandlerRejectsBadGameID(t *testing.T) {
	rec := doRequest(t, &stubCoordinator{}, http.MethodPost, "/api/games/not-a-uuid/choices",
		SubmitChoiceRequest{PlayerID: uuid.New(), Choice: "Walk"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{room.ErrGameNotFound, http.StatusNotFound},
		{room.ErrPlayerNotFound, http.StatusNotFound},
		{room.ErrRoomFull, http.StatusConflict},
		{room.ErrGameNotActive, http.StatusConflict},
		{rounds.ErrRoundResolved, http.StatusConflict},
		{room.ErrInvalidChoice, http.StatusBadRequest},
		{room.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("kaboom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		stub := &stubCoordinator{err: tc.err}
		path := fmt.Sprintf("/api/games/%s/choices", uuid.New())
		rec := doRequest(t, stub, http.MethodPost, path,
			SubmitChoiceRequest{PlayerID: uuid.New(), Choice: "Walk"})
		if rec.Code != tc.code {
			t.Errorf("%v mapped to %d, expected %d", tc.err, rec.Code, tc.code)
		}
	}
}

func TestGetGameHandler(t *testing.T) {
	gameID := uuid.New()
	stub := &stubCoordinator{
		snapshot: &room.Snapshot{
			Game: &models.Game{ID: gameID, RoomCode: "AB12CD", Status: models.GameStatusWaiting},
			Players: []models.Player{
				{ID: uuid.New(), GameID: gameID, PlayerNumber: models.SeatOne, Name: "ana"},
			},
		},
	}

	rec := doRequest(t, stub, http.MethodGet, "/api/games/"+gameID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var snap room.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Game.ID != gameID || len(snap.Players) != 1 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}
