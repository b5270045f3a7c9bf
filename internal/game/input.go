package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionStay
	ActionQuit
)

// Command is a translated key press.
type Command struct {
	Action Action
	Dir    world.Direction // Only meaningful for ActionMove
}

// Move returns a command stepping in d.
func Move(d world.Direction) Command {
	return Command{Action: ActionMove, Dir: d}
}

// Stay returns a command that spends a turn without moving.
func Stay() Command {
	return Command{Action: ActionStay}
}

// Quit returns a command that ends the game.
func Quit() Command {
	return Command{Action: ActionQuit}
}

// Target returns the cell the command asks to move to from pos.
func (c Command) Target(pos world.Pos) world.Pos {
	if c.Action != ActionMove {
		return pos
	}
	return pos.Step(c.Dir)
}

// CommandFor translates a key event. Arrow keys and w/a/s/d move, e waits,
// q, Escape and Ctrl-C quit. Anything else is ActionNone.
func CommandFor(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit()
	case tcell.KeyUp:
		return Move(world.Up)
	case tcell.KeyDown:
		return Move(world.Down)
	case tcell.KeyLeft:
		return Move(world.Left)
	case tcell.KeyRight:
		return Move(world.Right)
	case tcell.KeyRune:
		return CommandForRune(ev.Rune())
	}
	return Command{}
}

// CommandForRune translates a typed character.
func CommandForRune(r rune) Command {
	switch r {
	case 'w', 'W':
		return Move(world.Up)
	case 's', 'S':
		return Move(world.Down)
	case 'a', 'A':
		return Move(world.Left)
	case 'd', 'D':
		return Move(world.Right)
	case 'e', 'E':
		return Stay()
	case 'q', 'Q':
		return Quit()
	}
	return Command{}
}
