package models

import (
	"time"

	"github.com/google/uuid"
)

// Round represents one scored turn of a game. The choice slots are nil until
// the corresponding player submits. IsMatch is nil until both choices are
// present and the round has been resolved; once set it never changes.
type Round struct {
	ID            uuid.UUID `json:"id"`
	GameID        uuid.UUID `json:"game_id"`
	RoundNumber   int       `json:"round_number"`
	Word          string    `json:"word"`
	Player1Choice *string   `json:"player1_choice,omitempty"`
	Player2Choice *string   `json:"player2_choice,omitempty"`
	IsMatch       *bool     `json:"is_match,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ChoiceFor returns the recorded choice for the given seat, or nil.
func (r *Round) ChoiceFor(seat int) *string {
	if seat == SeatOne {
		return r.Player1Choice
	}
	return r.Player2Choice
}

// Resolved reports whether the round's outcome has been computed.
func (r *Round) Resolved() bool {
	return r.IsMatch != nil
}

// BothSubmitted reports whether both seats have a recorded choice.
func (r *Round) BothSubmitted() bool {
	return r.Player1Choice != nil && r.Player2Choice != nil
}
