package rounds

import (
	"errors"

	"github.com/google/uuid"
)

// ErrRoundResolved is returned when a choice write targets a round whose
// outcome is already fixed.
var ErrRoundResolved = errors.New("round already resolved")

// CreateRoundRequest represents the data needed to create a new round
type CreateRoundRequest struct {
	ID          uuid.UUID `json:"id"`
	GameID      uuid.UUID `json:"game_id"`
	RoundNumber int       `json:"round_number"`
	Word        string    `json:"word"`
}
