package room

import "errors"

// Coordinator error taxonomy, surfaced to the transport layer as-is.
var (
	// ErrGameNotFound is returned when a room code or game id matches nothing.
	ErrGameNotFound = errors.New("game not found")

	// ErrPlayerNotFound is returned when a player id matches nothing, or the
	// player belongs to a different game.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrRoomFull is returned when a join targets a game that already has two
	// players, including the loser of a simultaneous-join race.
	ErrRoomFull = errors.New("room is full")

	// ErrCreationFailed is returned when an underlying store write failed
	// during game creation. No partial-state rollback is attempted.
	ErrCreationFailed = errors.New("failed to create game")

	// ErrInvalidChoice is returned when a submitted choice is not one of the
	// round's three options.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrGameNotActive is returned when a choice is submitted to a game that
	// is not currently playing.
	ErrGameNotActive = errors.New("game is not active")

	// ErrStoreUnavailable marks connectivity failures, as opposed to ordinary
	// request errors. Wrapped around the driver error.
	ErrStoreUnavailable = errors.New("store unavailable")
)
