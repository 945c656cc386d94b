package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/mindmeld/go/internal/events"
	"github.com/mcdev12/mindmeld/go/internal/games"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/outbox"
	"github.com/mcdev12/mindmeld/go/internal/players"
	"github.com/mcdev12/mindmeld/go/internal/room"
	"github.com/mcdev12/mindmeld/go/internal/rounds"
	"github.com/mcdev12/mindmeld/go/internal/sqlutil"
	"github.com/mcdev12/mindmeld/go/internal/words"
)

// Store is the Postgres implementation of room.Store. Multi-record
// operations run in a single transaction together with their outbox events,
// so every change notification describes a change that actually committed.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateGame inserts a new waiting game. games.ErrRoomCodeTaken passes
// through so the coordinator can retry with a fresh code.
func (s *Store) CreateGame(ctx context.Context, roomCode string) (*models.Game, error) {
	game, err := games.New(s.db).CreateGame(ctx, games.CreateGameRequest{
		ID:       uuid.New(),
		RoomCode: roomCode,
	})
	if err != nil {
		if errors.Is(err, games.ErrRoomCodeTaken) {
			return nil, err
		}
		return nil, classify(err)
	}
	return game, nil
}

// CreateFirstPlayer seats player 1 at game creation.
func (s *Store) CreateFirstPlayer(ctx context.Context, gameID uuid.UUID, name string) (*models.Player, error) {
	player, err := players.New(s.db).CreatePlayer(ctx, players.CreatePlayerRequest{
		ID:           uuid.New(),
		GameID:       gameID,
		PlayerNumber: models.SeatOne,
		Name:         name,
	})
	if err != nil {
		return nil, classify(err)
	}
	return player, nil
}

// GameByID retrieves a game, mapping a missing row to room.ErrGameNotFound.
func (s *Store) GameByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	game, err := games.New(s.db).GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, room.ErrGameNotFound
		}
		return nil, classify(err)
	}
	return game, nil
}

// GameByRoomCode retrieves a game by its normalized room code.
func (s *Store) GameByRoomCode(ctx context.Context, roomCode string) (*models.Game, error) {
	game, err := games.New(s.db).GetGameByRoomCode(ctx, roomCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, room.ErrGameNotFound
		}
		return nil, classify(err)
	}
	return game, nil
}

// PlayerByID retrieves a player, mapping a missing row to
// room.ErrPlayerNotFound.
func (s *Store) PlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := players.New(s.db).GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, room.ErrPlayerNotFound
		}
		return nil, classify(err)
	}
	return player, nil
}

// PlayersForGame lists a game's players ordered by seat.
func (s *Store) PlayersForGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error) {
	list, err := players.New(s.db).ListPlayersByGame(ctx, gameID)
	if err != nil {
		return nil, classify(err)
	}
	return list, nil
}

// RoundByNumber retrieves one round of a game.
func (s *Store) RoundByNumber(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, error) {
	round, err := rounds.New(s.db).GetRound(ctx, gameID, roundNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, room.ErrGameNotFound
		}
		return nil, classify(err)
	}
	return round, nil
}

// JoinSecondSeat claims seat 2, flips the game to playing with round 1
// active, creates round 1, and queues the corresponding events — one
// transaction, so a losing joiner leaves no trace.
func (s *Store) JoinSecondSeat(ctx context.Context, gameID uuid.UUID, name string, first words.Pair) (*models.Player, error) {
	var player *models.Player
	err := sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		p, err := players.New(tx).ClaimSecondSeat(ctx, uuid.New(), gameID, name)
		if err != nil {
			return err
		}

		started, err := games.New(tx).StartGame(ctx, gameID)
		if err != nil {
			return err
		}
		if !started {
			// Two players but the game is past waiting: someone else's join
			// already committed.
			return players.ErrSeatTaken
		}

		round, err := rounds.New(tx).CreateRound(ctx, rounds.CreateRoundRequest{
			ID:          uuid.New(),
			GameID:      gameID,
			RoundNumber: 1,
			Word:        first.Word,
		})
		if err != nil {
			return err
		}

		game, err := games.New(tx).GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		ob := outbox.New(tx)
		if err := ob.Insert(ctx, gameID, events.TypePlayerJoined, events.PlayerJoinedPayload{
			PlayerID:     p.ID.String(),
			PlayerNumber: p.PlayerNumber,
			Name:         p.Name,
		}); err != nil {
			return err
		}
		if err := ob.Insert(ctx, gameID, events.TypeGameStarted, events.GameStartedPayload{
			RoomCode:     game.RoomCode,
			CurrentRound: game.CurrentRound,
			StartedAt:    time.Now().UTC(),
		}); err != nil {
			return err
		}
		if err := ob.Insert(ctx, gameID, events.TypeRoundStarted, events.RoundStartedPayload{
			RoundID:     round.ID.String(),
			RoundNumber: round.RoundNumber,
			Word:        round.Word,
			Options:     first.Options,
		}); err != nil {
			return err
		}

		player = p
		return nil
	})
	if err != nil {
		if errors.Is(err, players.ErrSeatTaken) {
			return nil, err
		}
		return nil, classify(err)
	}
	return player, nil
}

// RecordChoice writes a choice slot and queues the (contents-free)
// ChoiceSubmitted notification in the same transaction.
func (s *Store) RecordChoice(ctx context.Context, gameID uuid.UUID, roundNumber, seat int, choice string) (*models.Round, error) {
	var round *models.Round
	err := sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		r, err := rounds.New(tx).RecordChoice(ctx, gameID, roundNumber, seat, choice)
		if err != nil {
			return err
		}

		if err := outbox.New(tx).Insert(ctx, gameID, events.TypeChoiceSubmitted, events.ChoiceSubmittedPayload{
			RoundNumber:  roundNumber,
			PlayerNumber: seat,
		}); err != nil {
			return err
		}

		round = r
		return nil
	})
	if err != nil {
		if errors.Is(err, rounds.ErrRoundResolved) {
			return nil, err
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, room.ErrGameNotFound
		}
		return nil, classify(err)
	}
	return round, nil
}

// ResolveRound fixes the round outcome with a conditional write and, on a
// match, increments both scores in the same transaction. Losing attempts see
// resolvedNow=false and change nothing.
func (s *Store) ResolveRound(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, bool, error) {
	var (
		round       *models.Round
		resolvedNow bool
	)
	err := sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		r, now, err := rounds.New(tx).ResolveRound(ctx, gameID, roundNumber)
		if err != nil {
			return err
		}
		if !now {
			return nil
		}

		if *r.IsMatch {
			if err := players.New(tx).IncrementScores(ctx, gameID); err != nil {
				return err
			}
		}

		list, err := players.New(tx).ListPlayersByGame(ctx, gameID)
		if err != nil {
			return err
		}
		payload := events.RoundResolvedPayload{
			RoundNumber:   r.RoundNumber,
			Word:          r.Word,
			IsMatch:       *r.IsMatch,
			Player1Choice: *r.Player1Choice,
			Player2Choice: *r.Player2Choice,
		}
		for _, p := range list {
			switch p.PlayerNumber {
			case models.SeatOne:
				payload.Player1Score = p.Score
			case models.SeatTwo:
				payload.Player2Score = p.Score
			}
		}
		if err := outbox.New(tx).Insert(ctx, gameID, events.TypeRoundResolved, payload); err != nil {
			return err
		}

		round = r
		resolvedNow = true
		return nil
	})
	if err != nil {
		return nil, false, classify(err)
	}
	return round, resolvedNow, nil
}

// StartNextRound advances the game to round next and creates it. A no-op
// when the conditional bump fails, meaning another process already moved the
// game on.
func (s *Store) StartNextRound(ctx context.Context, gameID uuid.UUID, next int, pair words.Pair) error {
	err := sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		advanced, err := games.New(tx).AdvanceCurrentRound(ctx, gameID, next)
		if err != nil {
			return err
		}
		if !advanced {
			return nil
		}

		round, err := rounds.New(tx).CreateRound(ctx, rounds.CreateRoundRequest{
			ID:          uuid.New(),
			GameID:      gameID,
			RoundNumber: next,
			Word:        pair.Word,
		})
		if err != nil {
			return err
		}

		return outbox.New(tx).Insert(ctx, gameID, events.TypeRoundStarted, events.RoundStartedPayload{
			RoundID:     round.ID.String(),
			RoundNumber: round.RoundNumber,
			Word:        round.Word,
			Options:     pair.Options,
		})
	})
	return classify(err)
}

// FinishGame marks the game finished and queues the final tally. A no-op if
// the game is already finished.
func (s *Store) FinishGame(ctx context.Context, gameID uuid.UUID, totalRounds int) error {
	err := sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		finished, err := games.New(tx).FinishGame(ctx, gameID)
		if err != nil {
			return err
		}
		if !finished {
			return nil
		}

		list, err := players.New(tx).ListPlayersByGame(ctx, gameID)
		if err != nil {
			return err
		}
		matches, err := rounds.New(tx).CountMatches(ctx, gameID)
		if err != nil {
			return err
		}

		payload := events.GameFinishedPayload{
			Matches:       matches,
			Rounds:        totalRounds,
			Compatibility: events.CompatibilityPercent(matches, totalRounds),
			FinishedAt:    time.Now().UTC(),
		}
		for _, p := range list {
			switch p.PlayerNumber {
			case models.SeatOne:
				payload.Player1Score = p.Score
			case models.SeatTwo:
				payload.Player2Score = p.Score
			}
		}

		return outbox.New(tx).Insert(ctx, gameID, events.TypeGameFinished, payload)
	})
	return classify(err)
}

// classify tags connectivity failures with room.ErrStoreUnavailable so the
// transport layer can distinguish them from ordinary request errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", room.ErrStoreUnavailable, err)
	}
	return err
}
