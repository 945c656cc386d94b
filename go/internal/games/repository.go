package games

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/sqlutil"
)

// Repository implements game data access operations
type Repository struct {
	db sqlutil.DBTX
}

// New creates a games repository bound to db, which may be a *sql.DB or a
// *sql.Tx.
func New(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const gameColumns = "id, room_code, status, current_round, created_at, updated_at"

// CreateGame inserts a new game in the waiting state with no active round.
func (r *Repository) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO games (id, room_code, status, current_round)
		VALUES ($1, $2, $3, 0)
		RETURNING `+gameColumns,
		req.ID, req.RoomCode, models.GameStatusWaiting,
	)

	game, err := scanGame(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrRoomCodeTaken
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// GetGame retrieves a game by ID
func (r *Repository) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+gameColumns+` FROM games WHERE id = $1`, id)

	game, err := scanGame(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// GetGameByRoomCode retrieves a game by its room code. Codes are stored
// uppercase; the caller normalizes before lookup.
func (r *Repository) GetGameByRoomCode(ctx context.Context, roomCode string) (*models.Game, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+gameColumns+` FROM games WHERE room_code = $1`, roomCode)

	game, err := scanGame(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by room code: %w", err)
	}
	return game, nil
}

// StartGame flips a waiting game to playing with round 1 active. Returns
// false if the game was not in the waiting state.
func (r *Repository) StartGame(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET status = $2, current_round = 1, updated_at = now()
		WHERE id = $1 AND status = $3`,
		id, models.GameStatusPlaying, models.GameStatusWaiting,
	)
	if err != nil {
		return false, fmt.Errorf("failed to start game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to start game: %w", err)
	}
	return n == 1, nil
}

// AdvanceCurrentRound bumps current_round to next. The update is conditional
// on the game still playing round next-1, so current_round can never move
// backwards or skip ahead. Returns false when the guard did not hold.
func (r *Repository) AdvanceCurrentRound(ctx context.Context, id uuid.UUID, next int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET current_round = $2, updated_at = now()
		WHERE id = $1 AND status = $3 AND current_round = $2 - 1`,
		id, next, models.GameStatusPlaying,
	)
	if err != nil {
		return false, fmt.Errorf("failed to advance round: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to advance round: %w", err)
	}
	return n == 1, nil
}

// FinishGame marks a playing game finished. Returns false if the game was
// not playing (already finished, or never started).
func (r *Repository) FinishGame(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`,
		id, models.GameStatusFinished, models.GameStatusPlaying,
	)
	if err != nil {
		return false, fmt.Errorf("failed to finish game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to finish game: %w", err)
	}
	return n == 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*models.Game, error) {
	var g models.Game
	var status string
	if err := row.Scan(&g.ID, &g.RoomCode, &status, &g.CurrentRound, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Status = models.GameStatus(status)
	return &g, nil
}
