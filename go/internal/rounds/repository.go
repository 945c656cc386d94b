package rounds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/sqlutil"
)

// Repository implements round data access operations
type Repository struct {
	db sqlutil.DBTX
}

// New creates a rounds repository bound to db, which may be a *sql.DB or a
// *sql.Tx.
func New(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const roundColumns = "id, game_id, round_number, word, player1_choice, player2_choice, is_match, created_at"

// choiceColumns maps a player seat to its choice slot in the round record.
var choiceColumns = map[int]string{
	models.SeatOne: "player1_choice",
	models.SeatTwo: "player2_choice",
}

// CreateRound inserts a round with empty choice slots.
func (r *Repository) CreateRound(ctx context.Context, req CreateRoundRequest) (*models.Round, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO rounds (id, game_id, round_number, word)
		VALUES ($1, $2, $3, $4)
		RETURNING `+roundColumns,
		req.ID, req.GameID, req.RoundNumber, req.Word,
	)

	round, err := scanRound(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	return round, nil
}

// GetRound retrieves a round by game and round number.
func (r *Repository) GetRound(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+roundColumns+` FROM rounds
		WHERE game_id = $1 AND round_number = $2`,
		gameID, roundNumber)

	round, err := scanRound(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return round, nil
}

// RecordChoice writes choice into the slot for the given seat. A player may
// overwrite their own choice until the round resolves; once is_match is set
// the write is rejected with ErrRoundResolved.
func (r *Repository) RecordChoice(ctx context.Context, gameID uuid.UUID, roundNumber int, seat int, choice string) (*models.Round, error) {
	column, ok := choiceColumns[seat]
	if !ok {
		return nil, fmt.Errorf("invalid seat %d", seat)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE rounds SET `+column+` = $3
		WHERE game_id = $1 AND round_number = $2 AND is_match IS NULL
		RETURNING `+roundColumns,
		gameID, roundNumber, choice,
	)

	round, err := scanRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the round does not exist or it is already resolved.
			if existing, getErr := r.GetRound(ctx, gameID, roundNumber); getErr == nil && existing.Resolved() {
				return nil, ErrRoundResolved
			}
			return nil, fmt.Errorf("failed to record choice: %w", sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to record choice: %w", err)
	}
	return round, nil
}

// ResolveRound computes is_match for a fully-submitted round. The update is
// conditional on is_match still being NULL, so of any number of concurrent
// resolution attempts exactly one returns resolvedNow=true; the rest see zero
// rows and must not touch scores.
func (r *Repository) ResolveRound(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE rounds SET is_match = (player1_choice = player2_choice)
		WHERE game_id = $1 AND round_number = $2
		  AND player1_choice IS NOT NULL
		  AND player2_choice IS NOT NULL
		  AND is_match IS NULL
		RETURNING `+roundColumns,
		gameID, roundNumber,
	)

	round, err := scanRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to resolve round: %w", err)
	}
	return round, true, nil
}

// CountMatches returns how many resolved rounds of a game were matches.
func (r *Repository) CountMatches(ctx context.Context, gameID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM rounds WHERE game_id = $1 AND is_match`, gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return n, nil
}

// ListRoundNumbers returns the round numbers that exist for a game, ordered.
func (r *Repository) ListRoundNumbers(ctx context.Context, gameID uuid.UUID) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT round_number FROM rounds WHERE game_id = $1 ORDER BY round_number`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to list rounds: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (*models.Round, error) {
	var rd models.Round
	var p1, p2 sql.NullString
	var isMatch sql.NullBool
	if err := row.Scan(&rd.ID, &rd.GameID, &rd.RoundNumber, &rd.Word, &p1, &p2, &isMatch, &rd.CreatedAt); err != nil {
		return nil, err
	}
	rd.Player1Choice = sqlutil.FromSqlStringPtr(p1)
	rd.Player2Choice = sqlutil.FromSqlStringPtr(p2)
	rd.IsMatch = sqlutil.FromSqlBoolPtr(isMatch)
	return &rd, nil
}
