package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/sqlutil"
)

// Repository implements player data access operations
type Repository struct {
	db sqlutil.DBTX
}

// New creates a players repository bound to db, which may be a *sql.DB or a
// *sql.Tx.
func New(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const playerColumns = "id, game_id, player_number, name, score, created_at"

// CreatePlayer inserts a player with score 0. Used for seat 1 at game
// creation; seat 2 goes through ClaimSecondSeat.
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO players (id, game_id, player_number, name, score)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING `+playerColumns,
		req.ID, req.GameID, req.PlayerNumber, req.Name,
	)

	player, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// ClaimSecondSeat inserts player 2 only if exactly one player currently
// exists for the game. The count guard and the insert are a single statement,
// and UNIQUE(game_id, player_number) backstops it, so two concurrent joiners
// cannot both win: the loser gets ErrSeatTaken.
func (r *Repository) ClaimSecondSeat(ctx context.Context, id uuid.UUID, gameID uuid.UUID, name string) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO players (id, game_id, player_number, name, score)
		SELECT $1, $2, $3, $4, 0
		WHERE (SELECT count(*) FROM players WHERE game_id = $2) = 1
		RETURNING `+playerColumns,
		id, gameID, models.SeatTwo, name,
	)

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatTaken
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrSeatTaken
		}
		return nil, fmt.Errorf("failed to claim second seat: %w", err)
	}
	return player, nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+playerColumns+` FROM players WHERE id = $1`, id)

	player, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// ListPlayersByGame retrieves the players of a game ordered by seat.
func (r *Repository) ListPlayersByGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+playerColumns+` FROM players
		WHERE game_id = $1
		ORDER BY player_number`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var out []models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list players: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return out, nil
}

// IncrementScores adds one point to both players of a game. Only ever called
// from the transaction that won the round resolution.
func (r *Repository) IncrementScores(ctx context.Context, gameID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE players SET score = score + 1 WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("failed to increment scores: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var p models.Player
	if err := row.Scan(&p.ID, &p.GameID, &p.PlayerNumber, &p.Name, &p.Score, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
