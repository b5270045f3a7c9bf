// Package rules resolves player movement and monster advances on a grid.
package rules

// Outcome classifies the result of one movement attempt.
type Outcome int

const (
	// Stayed means the move was rejected and the player did not move.
	Stayed Outcome = iota
	// Moved means the player stepped onto an open cell.
	Moved
	// CollectedTreasure means the player picked up a treasure.
	CollectedTreasure
	// TriggeredAmulet means the player touched the amulet and the dungeon grows.
	TriggeredAmulet
	// LeftRoom means the player walked through a door to the next room.
	LeftRoom
	// Escaped means the player reached the exit holding treasure.
	Escaped
)

// String returns a short outcome name.
func (o Outcome) String() string {
	switch o {
	case Stayed:
		return "stay"
	case Moved:
		return "move"
	case CollectedTreasure:
		return "treasure"
	case TriggeredAmulet:
		return "amulet"
	case LeftRoom:
		return "leave"
	case Escaped:
		return "escape"
	default:
		return "unknown"
	}
}

// Message returns the status line shown to the player for this outcome.
func (o Outcome) Message() string {
	switch o {
	case Stayed:
		return "You can't go that way."
	case CollectedTreasure:
		return "You found treasure!"
	case TriggeredAmulet:
		return "The amulet glows... the dungeon grows!"
	case LeftRoom:
		return "You pass through the door."
	case Escaped:
		return "You escaped the dungeon!"
	default:
		return ""
	}
}
