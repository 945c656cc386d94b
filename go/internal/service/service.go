package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/room"
	"github.com/mcdev12/mindmeld/go/internal/rounds"
	"github.com/rs/zerolog/log"
)

// Coordinator defines what the service layer needs from the room coordinator
type Coordinator interface {
	CreateGame(ctx context.Context, name string) (*room.CreateGameResult, error)
	JoinGame(ctx context.Context, roomCode, name string) (*room.JoinGameResult, error)
	SubmitChoice(ctx context.Context, gameID, playerID uuid.UUID, choice string) (*models.Round, error)
	Snapshot(ctx context.Context, gameID uuid.UUID) (*room.Snapshot, error)
}

// Service exposes the game API over HTTP/JSON.
type Service struct {
	coordinator Coordinator
}

// NewService creates the HTTP service.
func NewService(coordinator Coordinator) *Service {
	return &Service{coordinator: coordinator}
}

// Routes returns the API router.
func (s *Service) Routes() *httprouter.Router {
	router := httprouter.New()
	// Join lives outside /api/games: the router cannot mix a static segment
	// with the :id wildcard at the same position.
	router.POST("/api/games", s.CreateGame)
	router.POST("/api/join", s.JoinGame)
	router.POST("/api/games/:id/choices", s.SubmitChoice)
	router.GET("/api/games/:id", s.GetGame)
	return router
}

// CreateGameRequest is the body of POST /api/games.
type CreateGameRequest struct {
	Name string `json:"name"`
}

// CreateGame creates a game and seats player 1.
func (s *Service) CreateGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	result, err := s.coordinator.CreateGame(r.Context(), req.Name)
	if err != nil {
		writeCoordinatorError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// JoinGameRequest is the body of POST /api/join.
type JoinGameRequest struct {
	RoomCode string `json:"room_code"`
	Name     string `json:"name"`
}

// JoinGame seats player 2 by room code.
func (s *Service) JoinGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RoomCode == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "room_code and name are required")
		return
	}

	result, err := s.coordinator.JoinGame(r.Context(), req.RoomCode, req.Name)
	if err != nil {
		writeCoordinatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SubmitChoiceRequest is the body of POST /api/games/:id/choices.
type SubmitChoiceRequest struct {
	PlayerID uuid.UUID `json:"player_id"`
	Choice   string    `json:"choice"`
}

// SubmitChoiceResponse carries the round state after the submission.
type SubmitChoiceResponse struct {
	Round *models.Round `json:"round"`
}

// SubmitChoice records a choice for the game's current round.
func (s *Service) SubmitChoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID, err := uuid.Parse(ps.ByName("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	var req SubmitChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlayerID == uuid.Nil || req.Choice == "" {
		writeError(w, http.StatusBadRequest, "player_id and choice are required")
		return
	}

	round, err := s.coordinator.SubmitChoice(r.Context(), gameID, req.PlayerID, req.Choice)
	if err != nil {
		writeCoordinatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmitChoiceResponse{Round: round})
}

// GetGame returns the full snapshot of a game for initial load or reconnect.
func (s *Service) GetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID, err := uuid.Parse(ps.ByName("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	snapshot, err := s.coordinator.Snapshot(r.Context(), gameID)
	if err != nil {
		writeCoordinatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// writeCoordinatorError maps the coordinator error taxonomy onto HTTP codes.
func writeCoordinatorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, room.ErrGameNotFound), errors.Is(err, room.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, room.ErrRoomFull),
		errors.Is(err, room.ErrGameNotActive),
		errors.Is(err, rounds.ErrRoundResolved):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, room.ErrInvalidChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, room.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
