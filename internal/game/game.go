package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/level"
	"github.com/samdwyer/dungeoncrawl/internal/rules"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Game ties the session to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	source   level.Source
	first    int
	session  *Session
	message  string
}

// New creates a new game instance reading levels from src, starting at level first.
func New(src level.Source, first int) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		source:   src,
		first:    first,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()
	tracer := telemetry.Tracer("game")

	initCtx, initSpan := tracer.Start(ctx, "game.init")
	session, err := NewSession(initCtx, g.source, g.first)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.session = session
	initSpan.SetAttributes(
		g.session.runID,
		attribute.Int("level.number", session.Level()),
		attribute.Int("player.start_row", session.Player().Row),
		attribute.Int("player.start_col", session.Player().Col),
	)
	initSpan.End()

	for !g.session.State().Over() {
		g.render()
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}

	_, endSpan := tracer.Start(ctx, "game.end")
	endSpan.SetAttributes(
		g.session.runID,
		attribute.String("outcome", g.session.State().String()),
		attribute.Int("turns_taken", g.session.Turns()),
		attribute.Int("treasure", g.session.Player().Treasure),
		attribute.Int("level.number", g.session.Level()),
	)
	endSpan.End()

	if g.session.State() == StateQuit {
		return nil
	}

	g.message = finalMessage(g.session.State())
	g.render()
	g.renderer.RenderMessage("Press any key to exit.", g.session.Grid().Height()+3)
	g.waitForKey()
	return nil
}

// render draws the current session.
func (g *Game) render() {
	g.renderer.Render(g.session.Grid(), ui.Status{
		Level:    g.session.Level(),
		Treasure: g.session.Player().Treasure,
		Turns:    g.session.Turns(),
		Message:  g.message,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return g.handleCommand(ctx, CommandFor(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleCommand plays a turn for a translated key press.
func (g *Game) handleCommand(ctx context.Context, cmd Command) error {
	if cmd.Action == ActionNone {
		return nil
	}
	turn, err := g.session.Step(ctx, cmd)
	if err != nil {
		return err
	}
	g.message = turnMessage(turn)
	return nil
}

// waitForKey blocks until a key is pressed.
func (g *Game) waitForKey() {
	for {
		switch g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}

// turnMessage describes a turn on the status line.
func turnMessage(turn Turn) string {
	if turn.Captured {
		return "A monster caught you!"
	}
	if turn.Outcome == rules.LeftRoom && turn.State == StatePlaying {
		return fmt.Sprintf("You pass through the door into level %d.", turn.Level)
	}
	return turn.Outcome.Message()
}

// finalMessage describes how the game ended.
func finalMessage(s State) string {
	switch s {
	case StateWon:
		return "Victory! You made it out of the dungeon."
	case StateLost:
		return "Defeat. The monsters got you."
	default:
		return ""
	}
}
