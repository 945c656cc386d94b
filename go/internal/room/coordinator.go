package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/mindmeld/go/internal/games"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/players"
	"github.com/mcdev12/mindmeld/go/internal/words"
	"github.com/rs/zerolog/log"
)

// Store defines what the coordinator needs from the storage layer. Methods
// that touch more than one record are atomic: the implementation runs them in
// a single transaction, and the conditional-write semantics documented on the
// repositories make concurrent callers safe.
type Store interface {
	CreateGame(ctx context.Context, roomCode string) (*models.Game, error)
	CreateFirstPlayer(ctx context.Context, gameID uuid.UUID, name string) (*models.Player, error)
	GameByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	GameByRoomCode(ctx context.Context, roomCode string) (*models.Game, error)
	PlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	PlayersForGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error)
	RoundByNumber(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, error)

	// JoinSecondSeat claims seat 2, starts the game and creates round 1 from
	// first, all in one transaction. Returns players.ErrSeatTaken when the
	// seat is gone.
	JoinSecondSeat(ctx context.Context, gameID uuid.UUID, name string, first words.Pair) (*models.Player, error)

	// RecordChoice writes a choice into the seat's slot of the game's round.
	RecordChoice(ctx context.Context, gameID uuid.UUID, roundNumber, seat int, choice string) (*models.Round, error)

	// ResolveRound fixes the round outcome and, on a match, increments both
	// scores in the same transaction. resolvedNow is true for exactly one of
	// any number of concurrent attempts.
	ResolveRound(ctx context.Context, gameID uuid.UUID, roundNumber int) (round *models.Round, resolvedNow bool, err error)

	// StartNextRound bumps current_round to next and creates the round. A
	// no-op if another process already advanced past next-1.
	StartNextRound(ctx context.Context, gameID uuid.UUID, next int, pair words.Pair) error

	// FinishGame marks the game finished and emits the final tally.
	FinishGame(ctx context.Context, gameID uuid.UUID, totalRounds int) error
}

const (
	// maxCodeAttempts bounds room-code regeneration on collision.
	maxCodeAttempts = 5

	// DefaultAdvanceDelay is how long a resolved round stays on screen before
	// the next one starts. A presentation concern, not a correctness one.
	DefaultAdvanceDelay = 3 * time.Second

	advanceTimeout = 10 * time.Second
)

// Coordinator owns the game lifecycle: creation, join, round advancement and
// the finish transition. It is the only component that decides what happens
// next; everything downstream just reacts to store events.
type Coordinator struct {
	store        Store
	catalog      *words.Catalog
	clock        clockwork.Clock
	advanceDelay time.Duration
}

// NewCoordinator creates a coordinator using the real clock.
func NewCoordinator(store Store, catalog *words.Catalog) *Coordinator {
	return NewCoordinatorWithClock(store, catalog, clockwork.NewRealClock(), DefaultAdvanceDelay)
}

// NewCoordinatorWithClock creates a coordinator with an injected clock and
// advance delay. Tests pass a clockwork.FakeClock.
func NewCoordinatorWithClock(store Store, catalog *words.Catalog, clock clockwork.Clock, advanceDelay time.Duration) *Coordinator {
	return &Coordinator{
		store:        store,
		catalog:      catalog,
		clock:        clock,
		advanceDelay: advanceDelay,
	}
}

// CreateGameResult is returned to the creating client.
type CreateGameResult struct {
	GameID   uuid.UUID `json:"game_id"`
	RoomCode string    `json:"room_code"`
	PlayerID uuid.UUID `json:"player_id"`
}

// CreateGame creates a game in the waiting state together with player 1.
// Room codes are regenerated on collision up to maxCodeAttempts. If the
// player insert fails after the game insert, the game row is left orphaned.
func (c *Coordinator) CreateGame(ctx context.Context, name string) (*CreateGameResult, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}

	var game *models.Game
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		g, err := c.store.CreateGame(ctx, NewRoomCode())
		if err != nil {
			if errors.Is(err, games.ErrRoomCodeTaken) {
				continue
			}
			return nil, errors.Join(ErrCreationFailed, err)
		}
		game = g
		break
	}
	if game == nil {
		return nil, ErrCreationFailed
	}

	player, err := c.store.CreateFirstPlayer(ctx, game.ID, name)
	if err != nil {
		return nil, errors.Join(ErrCreationFailed, err)
	}

	log.Info().
		Str("game_id", game.ID.String()).
		Str("room_code", game.RoomCode).
		Str("player", name).
		Msg("game created")

	return &CreateGameResult{
		GameID:   game.ID,
		RoomCode: game.RoomCode,
		PlayerID: player.ID,
	}, nil
}

// JoinGameResult is returned to the joining client.
type JoinGameResult struct {
	GameID   uuid.UUID `json:"game_id"`
	PlayerID uuid.UUID `json:"player_id"`
}

// JoinGame seats the second player. The room code lookup is case-insensitive.
// On success the game transitions to playing and round 1 exists; the loser of
// a simultaneous join gets ErrRoomFull.
func (c *Coordinator) JoinGame(ctx context.Context, roomCode, name string) (*JoinGameResult, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}

	game, err := c.store.GameByRoomCode(ctx, NormalizeRoomCode(roomCode))
	if err != nil {
		return nil, err
	}
	if game.Status != models.GameStatusWaiting {
		return nil, ErrRoomFull
	}

	first, ok := c.catalog.Pair(1)
	if !ok {
		return nil, errors.New("word catalog is empty")
	}

	player, err := c.store.JoinSecondSeat(ctx, game.ID, name, first)
	if err != nil {
		if errors.Is(err, players.ErrSeatTaken) {
			return nil, ErrRoomFull
		}
		return nil, err
	}

	log.Info().
		Str("game_id", game.ID.String()).
		Str("player", name).
		Msg("player joined, game started")

	return &JoinGameResult{GameID: game.ID, PlayerID: player.ID}, nil
}

// SubmitChoice records a player's pick for the game's current round and, when
// it completes the round, resolves it and schedules the next transition. The
// returned round reflects the state after this submission.
func (c *Coordinator) SubmitChoice(ctx context.Context, gameID, playerID uuid.UUID, choice string) (*models.Round, error) {
	player, err := c.store.PlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.GameID != gameID {
		return nil, ErrPlayerNotFound
	}

	game, err := c.store.GameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != models.GameStatusPlaying {
		return nil, ErrGameNotActive
	}

	if !c.catalog.ValidOption(game.CurrentRound, choice) {
		return nil, ErrInvalidChoice
	}

	round, err := c.store.RecordChoice(ctx, gameID, game.CurrentRound, player.PlayerNumber, choice)
	if err != nil {
		return nil, err
	}

	if round.BothSubmitted() && !round.Resolved() {
		resolved, resolvedNow, err := c.store.ResolveRound(ctx, gameID, round.RoundNumber)
		if err != nil {
			return nil, err
		}
		if resolvedNow {
			round = resolved
			log.Info().
				Str("game_id", gameID.String()).
				Int("round", round.RoundNumber).
				Bool("is_match", *round.IsMatch).
				Msg("round resolved")
			c.scheduleAdvance(gameID, round.RoundNumber)
		} else if current, err := c.store.RoundByNumber(ctx, gameID, round.RoundNumber); err == nil {
			// Lost the resolution race; report the settled state.
			round = current
		}
	}

	return round, nil
}

// scheduleAdvance arms the post-resolution display delay, after which the
// game either advances to the next round or finishes.
func (c *Coordinator) scheduleAdvance(gameID uuid.UUID, resolvedRound int) {
	go func() {
		<-c.clock.After(c.advanceDelay)

		ctx, cancel := context.WithTimeout(context.Background(), advanceTimeout)
		defer cancel()

		if err := c.advanceOrFinish(ctx, gameID, resolvedRound); err != nil {
			log.Error().
				Err(err).
				Str("game_id", gameID.String()).
				Int("resolved_round", resolvedRound).
				Msg("round transition failed")
		}
	}()
}

// advanceOrFinish runs the transition after resolvedRound settled: create the
// next round while rounds remain, otherwise finish the game.
func (c *Coordinator) advanceOrFinish(ctx context.Context, gameID uuid.UUID, resolvedRound int) error {
	if resolvedRound < c.catalog.Rounds() {
		next := resolvedRound + 1
		pair, ok := c.catalog.Pair(next)
		if !ok {
			return errors.New("word catalog exhausted")
		}
		return c.store.StartNextRound(ctx, gameID, next, pair)
	}
	return c.store.FinishGame(ctx, gameID, c.catalog.Rounds())
}

// Snapshot is the full client-facing view of one game, used for initial load
// and reconnects. CurrentRound is nil while the game is waiting.
type Snapshot struct {
	Game         *models.Game    `json:"game"`
	Players      []models.Player `json:"players"`
	CurrentRound *models.Round   `json:"current_round,omitempty"`
	Options      []string        `json:"options,omitempty"`
}

// Snapshot assembles the current state of a game from the store.
func (c *Coordinator) Snapshot(ctx context.Context, gameID uuid.UUID) (*Snapshot, error) {
	game, err := c.store.GameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	playersForGame, err := c.store.PlayersForGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Game: game, Players: playersForGame}
	if game.CurrentRound > 0 {
		round, err := c.store.RoundByNumber(ctx, gameID, game.CurrentRound)
		if err != nil {
			return nil, err
		}
		snap.CurrentRound = round
		if pair, ok := c.catalog.Pair(round.RoundNumber); ok {
			snap.Options = pair.Options
		}
	}
	return snap, nil
}
