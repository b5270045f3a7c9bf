package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/level"
	"github.com/samdwyer/dungeoncrawl/internal/rules"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ErrPlayerDesync is returned when the grid no longer holds the player where the
// player entity says it is.
var ErrPlayerDesync = errors.New("player position out of sync with grid")

// Turn summarises what happened during one Step.
type Turn struct {
	Outcome       rules.Outcome
	Captured      bool
	MonstersMoved int
	Level         int
	State         State
}

// Session owns the grid and player for one play-through and drives turns.
type Session struct {
	src    level.Source
	runID  attribute.KeyValue
	level  int
	grid   *world.Grid
	player *entity.Player
	state  State
	turns  int
}

// NewSession starts a session on level first of src.
func NewSession(ctx context.Context, src level.Source, first int) (*Session, error) {
	s := &Session{
		src:   src,
		runID: telemetry.NewRunID(),
		state: StatePlaying,
	}
	if err := s.enterLevel(ctx, first); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the current level's grid.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// State returns the game state.
func (s *Session) State() State { return s.state }

// Turns returns how many turns have been played.
func (s *Session) Turns() int { return s.turns }

// RunID returns the session's run identifier.
func (s *Session) RunID() string { return s.runID.Value.AsString() }

// Step plays one turn: the player's move, its consequence, then the monsters.
// Once the game is over, Step changes nothing and reports the final state.
func (s *Session) Step(ctx context.Context, cmd Command) (Turn, error) {
	if s.state.Over() || cmd.Action == ActionNone {
		return Turn{Level: s.level, State: s.state}, nil
	}
	if cmd.Action == ActionQuit {
		s.state = StateQuit
		return Turn{Level: s.level, State: s.state}, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "turn")
	defer span.End()

	s.turns++
	outcome, _ := rules.Resolve(s.grid, s.player, cmd.Target(s.player.Pos()))
	turn := Turn{Outcome: outcome}

	switch outcome {
	case rules.TriggeredAmulet:
		if err := s.grow(ctx); err != nil {
			span.RecordError(err)
			return turn, err
		}
	case rules.LeftRoom:
		err := s.enterLevel(ctx, s.level+1)
		if errors.Is(err, level.ErrNotFound) {
			log.Printf("level %d cleared, no further levels", s.level)
			s.state = StateWon
		} else if err != nil {
			span.RecordError(err)
			return turn, err
		}
	case rules.Escaped:
		s.state = StateWon
	}

	// Monsters only act on a level the player was already on at the start of the turn.
	if s.state == StatePlaying && outcome != rules.LeftRoom {
		turn.MonstersMoved, turn.Captured = rules.AdvanceReport(s.grid, s.player)
		if turn.Captured {
			log.Printf("player captured at %v on level %d", s.player.Pos(), s.level)
			s.state = StateLost
		}
	}

	turn.Level = s.level
	turn.State = s.state

	span.SetAttributes(
		s.runID,
		attribute.Int("turn", s.turns),
		attribute.String("turn.outcome", outcome.String()),
		attribute.Bool("turn.captured", turn.Captured),
		attribute.Int("turn.monsters_moved", turn.MonstersMoved),
		attribute.Int("player.treasure", s.player.Treasure),
		attribute.Int("player.row", s.player.Row),
		attribute.Int("player.col", s.player.Col),
		attribute.Int("level.number", s.level),
		attribute.String("game.state", s.state.String()),
	)

	return turn, nil
}

// Quit ends the session.
func (s *Session) Quit() {
	if !s.state.Over() {
		s.state = StateQuit
	}
}

// Close releases the current grid.
func (s *Session) Close() {
	if s.grid != nil {
		s.grid.Release()
	}
}

// grow doubles the grid after the amulet is triggered.
func (s *Session) grow(ctx context.Context) error {
	grown, err := s.grid.Resize(ctx)
	if err != nil {
		return fmt.Errorf("grow dungeon: %w", err)
	}
	s.grid = grown

	if pos := s.player.Pos(); !s.grid.InBounds(pos) || s.grid.At(pos) != world.TilePlayer {
		return fmt.Errorf("after resize: %w at %v", ErrPlayerDesync, pos)
	}

	log.Printf("dungeon grew to %dx%d on level %d", s.grid.Height(), s.grid.Width(), s.level)
	return nil
}

// enterLevel loads level n, carrying collected treasure over from the previous level.
func (s *Session) enterLevel(ctx context.Context, n int) error {
	lvl, err := s.src.Load(ctx, n)
	if err != nil {
		return err
	}

	if s.player != nil {
		lvl.Player.Treasure = s.player.Treasure
	}
	if s.grid != nil {
		s.grid.Release()
	}

	s.level = lvl.Number
	s.grid = lvl.Grid
	s.player = lvl.Player

	log.Printf("entered level %d (%dx%d)", s.level, s.grid.Height(), s.grid.Width())
	return nil
}
