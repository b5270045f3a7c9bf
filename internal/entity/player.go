// Package entity provides the player entity.
package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Player is the adventurer exploring the dungeon.
type Player struct {
	Row, Col int // Current position in the grid
	Treasure int // Treasure collected so far, never negative
}

// NewPlayer creates a player at the given position with no treasure.
func NewPlayer(row, col int) *Player {
	return &Player{
		Row: row,
		Col: col,
	}
}

// Pos returns the player's position.
func (p *Player) Pos() world.Pos {
	return world.Pos{Row: p.Row, Col: p.Col}
}

// MoveTo places the player at pos.
func (p *Player) MoveTo(pos world.Pos) {
	p.Row = pos.Row
	p.Col = pos.Col
}

// HasTreasure returns true if at least one treasure has been collected.
func (p *Player) HasTreasure() bool {
	return p.Treasure > 0
}
