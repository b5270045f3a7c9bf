// Package world provides the dungeon tile grid and its geometry.
package world

import (
	"errors"
	"fmt"
)

// ErrUnknownTile is returned when a glyph does not map to any tile.
var ErrUnknownTile = errors.New("unknown tile glyph")

// Tile represents the terrain or occupant of a single grid cell.
type Tile uint8

const (
	// TileOpen is an empty, walkable cell.
	TileOpen Tile = iota
	// TilePlayer marks the player's current location.
	TilePlayer
	// TileTreasure is collected when the player steps on it.
	TileTreasure
	// TileAmulet is the hazard that grows the dungeon.
	TileAmulet
	// TileMonster marks a monster's current location.
	TileMonster
	// TilePillar blocks movement and line of sight.
	TilePillar
	// TileDoor leads to the next room.
	TileDoor
	// TileExit leads out of the dungeon once treasure is held.
	TileExit
)

// Tiles lists every tile in declaration order.
var Tiles = []Tile{
	TileOpen, TilePlayer, TileTreasure, TileAmulet,
	TileMonster, TilePillar, TileDoor, TileExit,
}

// Glyph returns the tile's persisted and display character.
func (t Tile) Glyph() rune {
	switch t {
	case TileOpen:
		return '-'
	case TilePlayer:
		return 'o'
	case TileTreasure:
		return '$'
	case TileAmulet:
		return '@'
	case TileMonster:
		return 'M'
	case TilePillar:
		return '+'
	case TileDoor:
		return '?'
	case TileExit:
		return '!'
	default:
		return ' '
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TilePlayer:
		return "player"
	case TileTreasure:
		return "treasure"
	case TileAmulet:
		return "amulet"
	case TileMonster:
		return "monster"
	case TilePillar:
		return "pillar"
	case TileDoor:
		return "door"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// BlocksSight returns true if the tile ends a line-of-sight scan.
func (t Tile) BlocksSight() bool {
	return t == TilePillar
}

// ParseTile converts a glyph back into its tile.
func ParseTile(r rune) (Tile, error) {
	for _, t := range Tiles {
		if t.Glyph() == r {
			return t, nil
		}
	}
	return TileOpen, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}
