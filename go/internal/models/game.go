package models

import (
	"time"

	"github.com/google/uuid"
)

// GameStatus defines the lifecycle status of a game.
type GameStatus string

const (
	GameStatusWaiting  GameStatus = "waiting"
	GameStatusPlaying  GameStatus = "playing"
	GameStatusFinished GameStatus = "finished"
)

// Game represents a two-player game room.
// CurrentRound is 0 while the game is waiting for the second player and
// 1-based once play starts; it never decreases.
type Game struct {
	ID           uuid.UUID  `json:"id"`
	RoomCode     string     `json:"room_code"`
	Status       GameStatus `json:"status"`
	CurrentRound int        `json:"current_round"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
