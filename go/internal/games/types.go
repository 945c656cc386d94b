package games

import (
	"errors"

	"github.com/google/uuid"
)

// ErrRoomCodeTaken is returned when a game insert collides with an existing
// room code. The coordinator retries with a fresh code.
var ErrRoomCodeTaken = errors.New("room code taken")

// CreateGameRequest represents the data needed to create a new game
type CreateGameRequest struct {
	ID       uuid.UUID `json:"id"`
	RoomCode string    `json:"room_code"`
}
