// Package game provides the turn driver, input handling and main game loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state while the player explores.
	StatePlaying State = iota
	// StateWon means the player escaped the dungeon.
	StateWon
	// StateLost means a monster caught the player.
	StateLost
	// StateQuit means the player gave up.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over returns true once the game has ended.
func (s State) Over() bool {
	return s != StatePlaying
}
