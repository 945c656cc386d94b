package models

import (
	"time"

	"github.com/google/uuid"
)

// Player seats within a game. A game has at most two players, numbered 1 and 2.
const (
	SeatOne = 1
	SeatTwo = 2
)

// Player represents one participant in a game.
type Player struct {
	ID           uuid.UUID `json:"id"`
	GameID       uuid.UUID `json:"game_id"`
	PlayerNumber int       `json:"player_number"`
	Name         string    `json:"name"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}
