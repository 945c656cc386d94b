package players

import (
	"errors"

	"github.com/google/uuid"
)

// ErrSeatTaken is returned when a seat claim loses to a concurrent joiner or
// the game already has two players.
var ErrSeatTaken = errors.New("seat taken")

// CreatePlayerRequest represents the data needed to create a new player
type CreatePlayerRequest struct {
	ID           uuid.UUID `json:"id"`
	GameID       uuid.UUID `json:"game_id"`
	PlayerNumber int       `json:"player_number"`
	Name         string    `json:"name"`
}
