package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/mindmeld/go/internal/sqlutil"
)

// Repository implements outbox data access operations
type Repository struct {
	db sqlutil.DBTX
}

// New creates an outbox repository bound to db, which may be a *sql.DB or a
// *sql.Tx. Inserts must run in the same transaction as the row change they
// describe.
func New(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// Insert records an event for later delivery. payload must be json-encodable.
func (r *Repository) Insert(ctx context.Context, gameID uuid.UUID, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO outbox (id, game_id, event_type, payload)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), gameID, eventType, data,
	); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchUnsent locks and returns up to limit unsent events in insertion order.
// SKIP LOCKED keeps concurrent workers from claiming the same batch.
func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_id, event_type, payload, created_at
		FROM outbox
		WHERE sent_at IS NULL
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.GameID, &e.EventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to fetch unsent events: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch unsent events: %w", err)
	}
	return out, nil
}

// MarkSent stamps the given events as delivered.
func (r *Repository) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `
		UPDATE outbox SET sent_at = now() WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to mark events sent: %w", err)
	}
	return nil
}
