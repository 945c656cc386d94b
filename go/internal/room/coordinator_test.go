package room

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/mindmeld/go/internal/games"
	"github.com/mcdev12/mindmeld/go/internal/models"
	"github.com/mcdev12/mindmeld/go/internal/players"
	"github.com/mcdev12/mindmeld/go/internal/words"
)

// fakeStore is an in-memory Store with the same conditional-write semantics as
// the Postgres implementation. Transitions (next round, finish) are reported
// on a channel so tests can wait for the async advance goroutine.
type fakeStore struct {
	mu      sync.Mutex
	games   map[uuid.UUID]*models.Game
	byCode  map[string]uuid.UUID
	players map[uuid.UUID]*models.Player
	rounds  map[uuid.UUID]map[int]*models.Round

	// codeCollisions makes the next N CreateGame calls fail as if the
	// generated room code were taken.
	codeCollisions int
	// seatRace makes the next JoinSecondSeat fail as if a concurrent joiner
	// won the seat.
	seatRace bool
	// resolveRace makes the next ResolveRound resolve the round but report
	// that another process got there first.
	resolveRace bool

	transitions chan string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		games:       make(map[uuid.UUID]*models.Game),
		byCode:      make(map[string]uuid.UUID),
		players:     make(map[uuid.UUID]*models.Player),
		rounds:      make(map[uuid.UUID]map[int]*models.Round),
		transitions: make(chan string, 16),
	}
}

func (s *fakeStore) CreateGame(ctx context.Context, roomCode string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codeCollisions > 0 {
		s.codeCollisions--
		return nil, games.ErrRoomCodeTaken
	}
	if _, taken := s.byCode[roomCode]; taken {
		return nil, games.ErrRoomCodeTaken
	}

	g := &models.Game{
		ID:       uuid.New(),
		RoomCode: roomCode,
		Status:   models.GameStatusWaiting,
	}
	s.games[g.ID] = g
	s.byCode[roomCode] = g.ID
	return copyGame(g), nil
}

func (s *fakeStore) CreateFirstPlayer(ctx context.Context, gameID uuid.UUID, name string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Player{ID: uuid.New(), GameID: gameID, PlayerNumber: models.SeatOne, Name: name}
	s.players[p.ID] = p
	return copyPlayer(p), nil
}

func (s *fakeStore) GameByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return copyGame(g), nil
}

func (s *fakeStore) GameByRoomCode(ctx context.Context, roomCode string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byCode[roomCode]
	if !ok {
		return nil, ErrGameNotFound
	}
	return copyGame(s.games[id]), nil
}

func (s *fakeStore) PlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return copyPlayer(p), nil
}

func (s *fakeStore) PlayersForGame(ctx context.Context, gameID uuid.UUID) ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Player
	for _, p := range s.players {
		if p.GameID == gameID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerNumber < out[j].PlayerNumber })
	return out, nil
}

func (s *fakeStore) RoundByNumber(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID][roundNumber]
	if !ok {
		return nil, ErrGameNotFound
	}
	return copyRound(r), nil
}

func (s *fakeStore) JoinSecondSeat(ctx context.Context, gameID uuid.UUID, name string, first words.Pair) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seatRace {
		s.seatRace = false
		return nil, players.ErrSeatTaken
	}

	g, ok := s.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	if g.Status != models.GameStatusWaiting {
		return nil, players.ErrSeatTaken
	}
	for _, p := range s.players {
		if p.GameID == gameID && p.PlayerNumber == models.SeatTwo {
			return nil, players.ErrSeatTaken
		}
	}

	p := &models.Player{ID: uuid.New(), GameID: gameID, PlayerNumber: models.SeatTwo, Name: name}
	s.players[p.ID] = p
	g.Status = models.GameStatusPlaying
	g.CurrentRound = 1
	s.putRoundLocked(gameID, 1, first)
	return copyPlayer(p), nil
}

func (s *fakeStore) RecordChoice(ctx context.Context, gameID uuid.UUID, roundNumber, seat int, choice string) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID][roundNumber]
	if !ok {
		return nil, ErrGameNotFound
	}
	if r.IsMatch != nil {
		return nil, fmt.Errorf("round already resolved")
	}
	c := choice
	if seat == models.SeatOne {
		r.Player1Choice = &c
	} else {
		r.Player2Choice = &c
	}
	return copyRound(r), nil
}

func (s *fakeStore) ResolveRound(ctx context.Context, gameID uuid.UUID, roundNumber int) (*models.Round, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID][roundNumber]
	if !ok {
		return nil, false, ErrGameNotFound
	}
	if r.IsMatch != nil {
		return copyRound(r), false, nil
	}
	if r.Player1Choice == nil || r.Player2Choice == nil {
		return nil, false, nil
	}

	match := *r.Player1Choice == *r.Player2Choice
	r.IsMatch = &match
	if match {
		for _, p := range s.players {
			if p.GameID == gameID {
				p.Score++
			}
		}
	}

	if s.resolveRace {
		s.resolveRace = false
		return copyRound(r), false, nil
	}
	return copyRound(r), true, nil
}

func (s *fakeStore) StartNextRound(ctx context.Context, gameID uuid.UUID, next int, pair words.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return ErrGameNotFound
	}
	if g.Status != models.GameStatusPlaying || g.CurrentRound != next-1 {
		return nil
	}
	g.CurrentRound = next
	s.putRoundLocked(gameID, next, pair)
	s.transitions <- fmt.Sprintf("round:%d", next)
	return nil
}

func (s *fakeStore) FinishGame(ctx context.Context, gameID uuid.UUID, totalRounds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return ErrGameNotFound
	}
	if g.Status != models.GameStatusPlaying {
		return nil
	}
	g.Status = models.GameStatusFinished
	s.transitions <- "finished"
	return nil
}

func (s *fakeStore) putRoundLocked(gameID uuid.UUID, n int, pair words.Pair) {
	if s.rounds[gameID] == nil {
		s.rounds[gameID] = make(map[int]*models.Round)
	}
	s.rounds[gameID][n] = &models.Round{
		ID:          uuid.New(),
		GameID:      gameID,
		RoundNumber: n,
		Word:        pair.Word,
	}
}

func copyGame(g *models.Game) *models.Game {
	cp := *g
	return &cp
}

func copyPlayer(p *models.Player) *models.Player {
	cp := *p
	return &cp
}

func copyRound(r *models.Round) *models.Round {
	cp := *r
	if r.Player1Choice != nil {
		v := *r.Player1Choice
		cp.Player1Choice = &v
	}
	if r.Player2Choice != nil {
		v := *r.Player2Choice
		cp.Player2Choice = &v
	}
	if r.IsMatch != nil {
		v := *r.IsMatch
		cp.IsMatch = &v
	}
	return &cp
}

func waitTransition(t *testing.T, store *fakeStore) string {
	t.Helper()
	select {
	case got := <-store.transitions:
		return got
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a round transition")
		return ""
	}
}

// startPlayingGame creates a game and joins the second player, returning both
// player ids with round 1 underway.
func startPlayingGame(t *testing.T, c *Coordinator) (gameID, p1, p2 uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	joined, err := c.JoinGame(ctx, created.RoomCode, "ben")
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}
	return created.GameID, created.PlayerID, joined.PlayerID
}

func TestCreateGame(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())

	res, err := c.CreateGame(context.Background(), "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if len(res.RoomCode) != codeLength {
		t.Errorf("room code %q has length %d", res.RoomCode, len(res.RoomCode))
	}

	game, err := store.GameByID(context.Background(), res.GameID)
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if game.Status != models.GameStatusWaiting {
		t.Errorf("new game status = %s, expected waiting", game.Status)
	}
	if game.CurrentRound != 0 {
		t.Errorf("new game current round = %d, expected 0", game.CurrentRound)
	}

	player, err := store.PlayerByID(context.Background(), res.PlayerID)
	if err != nil {
		t.Fatalf("PlayerByID: %v", err)
	}
	if player.PlayerNumber != models.SeatOne {
		t.Errorf("creator took seat %d, expected seat 1", player.PlayerNumber)
	}
}

func TestCreateGameEmptyName(t *testing.T) {
	c := NewCoordinator(newFakeStore(), words.Default())
	if _, err := c.CreateGame(context.Background(), ""); err == nil {
		t.Error("expected an error for an empty name")
	}
}

func TestCreateGameRetriesCodeCollisions(t *testing.T) {
	store := newFakeStore()
	store.codeCollisions = maxCodeAttempts - 1
	c := NewCoordinator(store, words.Default())

	if _, err := c.CreateGame(context.Background(), "ana"); err != nil {
		t.Errorf("CreateGame should retry collisions: %v", err)
	}
}

func TestCreateGameGivesUpAfterMaxAttempts(t *testing.T) {
	store := newFakeStore()
	store.codeCollisions = maxCodeAttempts
	c := NewCoordinator(store, words.Default())

	_, err := c.CreateGame(context.Background(), "ana")
	if !errors.Is(err, ErrCreationFailed) {
		t.Errorf("expected ErrCreationFailed, got %v", err)
	}
}

func TestJoinGameStartsRoundOne(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	joined, err := c.JoinGame(ctx, created.RoomCode, "ben")
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}
	if joined.GameID != created.GameID {
		t.Errorf("joined game %s, expected %s", joined.GameID, created.GameID)
	}

	game, _ := store.GameByID(ctx, created.GameID)
	if game.Status != models.GameStatusPlaying {
		t.Errorf("game status = %s, expected playing", game.Status)
	}
	if game.CurrentRound != 1 {
		t.Errorf("current round = %d, expected 1", game.CurrentRound)
	}

	round, err := store.RoundByNumber(ctx, created.GameID, 1)
	if err != nil {
		t.Fatalf("round 1 missing: %v", err)
	}
	if round.Word != "MOON" {
		t.Errorf("round 1 word = %q, expected MOON", round.Word)
	}
}

func TestJoinGameNormalizesRoomCode(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	sloppy := "  " + strings.ToLower(created.RoomCode) + " "
	if _, err := c.JoinGame(ctx, sloppy, "ben"); err != nil {
		t.Errorf("JoinGame should accept %q: %v", sloppy, err)
	}
}

func TestJoinGameUnknownCode(t *testing.T) {
	c := NewCoordinator(newFakeStore(), words.Default())
	_, err := c.JoinGame(context.Background(), "ZZZZZZ", "ben")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestJoinGameFullRoom(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, err := c.JoinGame(ctx, created.RoomCode, "ben"); err != nil {
		t.Fatalf("JoinGame: %v", err)
	}

	_, err = c.JoinGame(ctx, created.RoomCode, "cat")
	if !errors.Is(err, ErrRoomFull) {
		t.Errorf("third joiner got %v, expected ErrRoomFull", err)
	}
}

func TestJoinGameLosesSeatRace(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	// The game still reads as waiting, but the seat insert loses.
	store.seatRace = true
	_, err = c.JoinGame(ctx, created.RoomCode, "ben")
	if !errors.Is(err, ErrRoomFull) {
		t.Errorf("race loser got %v, expected ErrRoomFull", err)
	}
}

func TestSubmitChoiceMatchScoresAndAdvances(t *testing.T) {
	store := newFakeStore()
	clock := clockwork.NewFakeClock()
	c := NewCoordinatorWithClock(store, words.Default(), clock, DefaultAdvanceDelay)
	ctx := context.Background()

	gameID, p1, p2 := startPlayingGame(t, c)

	round, err := c.SubmitChoice(ctx, gameID, p1, "Walk")
	if err != nil {
		t.Fatalf("SubmitChoice p1: %v", err)
	}
	if round.Resolved() {
		t.Error("round resolved after a single choice")
	}

	round, err = c.SubmitChoice(ctx, gameID, p2, "Walk")
	if err != nil {
		t.Fatalf("SubmitChoice p2: %v", err)
	}
	if !round.Resolved() || !*round.IsMatch {
		t.Fatalf("Walk/Walk should resolve as a match, got %+v", round)
	}

	for _, id := range []uuid.UUID{p1, p2} {
		p, _ := store.PlayerByID(ctx, id)
		if p.Score != 1 {
			t.Errorf("player %d score = %d, expected 1", p.PlayerNumber, p.Score)
		}
	}

	// The next round starts only after the display delay.
	clock.BlockUntil(1)
	clock.Advance(DefaultAdvanceDelay)
	if got := waitTransition(t, store); got != "round:2" {
		t.Fatalf("transition = %q, expected round:2", got)
	}

	game, _ := store.GameByID(ctx, gameID)
	if game.CurrentRound != 2 {
		t.Errorf("current round = %d, expected 2", game.CurrentRound)
	}
	next, err := store.RoundByNumber(ctx, gameID, 2)
	if err != nil {
		t.Fatalf("round 2 missing: %v", err)
	}
	if next.Word != "ICE" {
		t.Errorf("round 2 word = %q, expected ICE", next.Word)
	}
}

func TestSubmitChoiceNoMatch(t *testing.T) {
	store := newFakeStore()
	clock := clockwork.NewFakeClock()
	c := NewCoordinatorWithClock(store, words.Default(), clock, DefaultAdvanceDelay)
	ctx := context.Background()

	gameID, p1, p2 := startPlayingGame(t, c)

	if _, err := c.SubmitChoice(ctx, gameID, p1, "Walk"); err != nil {
		t.Fatalf("SubmitChoice p1: %v", err)
	}
	round, err := c.SubmitChoice(ctx, gameID, p2, "Dance")
	if err != nil {
		t.Fatalf("SubmitChoice p2: %v", err)
	}
	if !round.Resolved() || *round.IsMatch {
		t.Fatalf("Walk/Dance should resolve as no match, got %+v", round)
	}

	for _, id := range []uuid.UUID{p1, p2} {
		p, _ := store.PlayerByID(ctx, id)
		if p.Score != 0 {
			t.Errorf("player %d score = %d, expected 0", p.PlayerNumber, p.Score)
		}
	}
}

func TestSubmitChoiceOverwriteBeforeResolve(t *testing.T) {
	store := newFakeStore()
	clock := clockwork.NewFakeClock()
	c := NewCoordinatorWithClock(store, words.Default(), clock, DefaultAdvanceDelay)
	ctx := context.Background()

	gameID, p1, p2 := startPlayingGame(t, c)

	if _, err := c.SubmitChoice(ctx, gameID, p1, "Walk"); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	// Changing your mind is allowed until the round resolves.
	if _, err := c.SubmitChoice(ctx, gameID, p1, "Dance"); err != nil {
		t.Fatalf("SubmitChoice overwrite: %v", err)
	}

	round, err := c.SubmitChoice(ctx, gameID, p2, "Dance")
	if err != nil {
		t.Fatalf("SubmitChoice p2: %v", err)
	}
	if !round.Resolved() || !*round.IsMatch {
		t.Fatalf("Dance/Dance should resolve as a match, got %+v", round)
	}
}

func TestSubmitChoiceInvalidOption(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	gameID, p1, _ := startPlayingGame(t, c)

	_, err := c.SubmitChoice(ctx, gameID, p1, "Cheese")
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("expected ErrInvalidChoice, got %v", err)
	}
	// Options from other rounds are rejected too.
	_, err = c.SubmitChoice(ctx, gameID, p1, "Cube")
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("expected ErrInvalidChoice for another round's option, got %v", err)
	}
}

func TestSubmitChoiceWhileWaiting(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	_, err = c.SubmitChoice(ctx, created.GameID, created.PlayerID, "Walk")
	if !errors.Is(err, ErrGameNotActive) {
		t.Errorf("expected ErrGameNotActive, got %v", err)
	}
}

func TestSubmitChoiceWrongGame(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	gameID, _, _ := startPlayingGame(t, c)
	other, err := c.CreateGame(ctx, "cat")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	_, err = c.SubmitChoice(ctx, gameID, other.PlayerID, "Walk")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}

	_, err = c.SubmitChoice(ctx, gameID, uuid.New(), "Walk")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound for an unknown player, got %v", err)
	}
}

func TestSubmitChoiceLosesResolveRace(t *testing.T) {
	store := newFakeStore()
	clock := clockwork.NewFakeClock()
	c := NewCoordinatorWithClock(store, words.Default(), clock, DefaultAdvanceDelay)
	ctx := context.Background()

	gameID, p1, p2 := startPlayingGame(t, c)

	if _, err := c.SubmitChoice(ctx, gameID, p1, "Walk"); err != nil {
		t.Fatalf("SubmitChoice p1: %v", err)
	}

	store.resolveRace = true
	round, err := c.SubmitChoice(ctx, gameID, p2, "Walk")
	if err != nil {
		t.Fatalf("SubmitChoice p2: %v", err)
	}
	// The loser still sees the settled outcome.
	if !round.Resolved() || !*round.IsMatch {
		t.Fatalf("race loser should see the resolved round, got %+v", round)
	}

	// Scores are incremented once, by whoever won the resolution.
	p, _ := store.PlayerByID(ctx, p1)
	if p.Score != 1 {
		t.Errorf("score = %d, expected 1", p.Score)
	}
}

func TestGameFinishesAfterLastRound(t *testing.T) {
	catalog, err := words.New([]words.Pair{
		{Word: "MOON", Options: []string{"Walk", "Light", "Dance"}},
		{Word: "ICE", Options: []string{"Pack", "Cube", "Water"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	store := newFakeStore()
	clock := clockwork.NewFakeClock()
	c := NewCoordinatorWithClock(store, catalog, clock, DefaultAdvanceDelay)
	ctx := context.Background()

	gameID, p1, p2 := startPlayingGame(t, c)

	// Round 1: match.
	if _, err := c.SubmitChoice(ctx, gameID, p1, "Walk"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitChoice(ctx, gameID, p2, "Walk"); err != nil {
		t.Fatal(err)
	}
	clock.BlockUntil(1)
	clock.Advance(DefaultAdvanceDelay)
	if got := waitTransition(t, store); got != "round:2" {
		t.Fatalf("transition = %q, expected round:2", got)
	}

	// Round 2, the last one: no match.
	if _, err := c.SubmitChoice(ctx, gameID, p1, "Pack"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitChoice(ctx, gameID, p2, "Cube"); err != nil {
		t.Fatal(err)
	}
	clock.BlockUntil(1)
	clock.Advance(DefaultAdvanceDelay)
	if got := waitTransition(t, store); got != "finished" {
		t.Fatalf("transition = %q, expected finished", got)
	}

	game, _ := store.GameByID(ctx, gameID)
	if game.Status != models.GameStatusFinished {
		t.Errorf("game status = %s, expected finished", game.Status)
	}
	if game.CurrentRound != 2 {
		t.Errorf("current round = %d, expected to stay at 2", game.CurrentRound)
	}
	if _, err := store.RoundByNumber(ctx, gameID, 3); err == nil {
		t.Error("no round should exist past the catalog length")
	}

	p, _ := store.PlayerByID(ctx, p1)
	if p.Score != 1 {
		t.Errorf("final score = %d, expected 1", p.Score)
	}
}

func TestSnapshot(t *testing.T) {
	store := newFakeStore()
	c := NewCoordinator(store, words.Default())
	ctx := context.Background()

	created, err := c.CreateGame(ctx, "ana")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	snap, err := c.Snapshot(ctx, created.GameID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.CurrentRound != nil {
		t.Error("waiting game should have no current round")
	}
	if len(snap.Players) != 1 {
		t.Errorf("waiting game has %d players, expected 1", len(snap.Players))
	}

	if _, err := c.JoinGame(ctx, created.RoomCode, "ben"); err != nil {
		t.Fatalf("JoinGame: %v", err)
	}

	snap, err = c.Snapshot(ctx, created.GameID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Players) != 2 {
		t.Errorf("playing game has %d players, expected 2", len(snap.Players))
	}
	if snap.CurrentRound == nil || snap.CurrentRound.Word != "MOON" {
		t.Fatalf("snapshot round = %+v, expected MOON", snap.CurrentRound)
	}
	want := []string{"Walk", "Light", "Dance"}
	if len(snap.Options) != len(want) {
		t.Fatalf("snapshot options = %v, expected %v", snap.Options, want)
	}
	for i := range want {
		if snap.Options[i] != want[i] {
			t.Fatalf("snapshot options = %v, expected %v", snap.Options, want)
		}
	}

	_, err = c.Snapshot(ctx, uuid.New())
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}
