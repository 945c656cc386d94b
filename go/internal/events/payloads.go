package events

import (
	"time"
)

// Event type names as stored in the outbox and published on the stream.
const (
	TypePlayerJoined    = "PlayerJoined"
	TypeGameStarted     = "GameStarted"
	TypeRoundStarted    = "RoundStarted"
	TypeChoiceSubmitted = "ChoiceSubmitted"
	TypeRoundResolved   = "RoundResolved"
	TypeGameFinished    = "GameFinished"
)

// Event payload types shared between the store, outbox and gateway packages.

// PlayerJoinedPayload is the payload for a PlayerJoined event
type PlayerJoinedPayload struct {
	PlayerID     string `json:"player_id"`
	PlayerNumber int    `json:"player_number"`
	Name         string `json:"name"`
}

// GameStartedPayload is the payload for a GameStarted event
type GameStartedPayload struct {
	RoomCode     string    `json:"room_code"`
	CurrentRound int       `json:"current_round"`
	StartedAt    time.Time `json:"started_at"`
}

// RoundStartedPayload is the payload for a RoundStarted event. Options are
// included so clients never need their own copy of the word catalog.
type RoundStartedPayload struct {
	RoundID     string   `json:"round_id"`
	RoundNumber int      `json:"round_number"`
	Word        string   `json:"word"`
	Options     []string `json:"options"`
}

// ChoiceSubmittedPayload is the payload for a ChoiceSubmitted event. It
// deliberately carries no choice contents: the other client only learns that
// a seat has locked in, not what was picked.
type ChoiceSubmittedPayload struct {
	RoundNumber  int `json:"round_number"`
	PlayerNumber int `json:"player_number"`
}

// RoundResolvedPayload is the payload for a RoundResolved event
type RoundResolvedPayload struct {
	RoundNumber   int    `json:"round_number"`
	Word          string `json:"word"`
	IsMatch       bool   `json:"is_match"`
	Player1Choice string `json:"player1_choice"`
	Player2Choice string `json:"player2_choice"`
	Player1Score  int    `json:"player1_score"`
	Player2Score  int    `json:"player2_score"`
}

// GameFinishedPayload is the payload for a GameFinished event. Compatibility
// is matches over rounds as a percentage, computed here for display only.
type GameFinishedPayload struct {
	Player1Score  int       `json:"player1_score"`
	Player2Score  int       `json:"player2_score"`
	Matches       int       `json:"matches"`
	Rounds        int       `json:"rounds"`
	Compatibility int       `json:"compatibility"`
	FinishedAt    time.Time `json:"finished_at"`
}

// CompatibilityPercent returns matches over rounds as a whole percentage,
// truncated. Zero rounds yields zero.
func CompatibilityPercent(matches, rounds int) int {
	if rounds <= 0 {
		return 0
	}
	return matches * 100 / rounds
}
