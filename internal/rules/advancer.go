package rules

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Advance moves every monster with a clear line of sight to the player one step
// closer and reports whether a monster reached the player's cell.
func Advance(g *world.Grid, p *entity.Player) bool {
	_, captured := AdvanceReport(g, p)
	return captured
}

// AdvanceReport is Advance that also returns how many monsters moved.
//
// Each cardinal ray is scanned outward from the cell next to the player up to
// the grid edge. A pillar ends the ray. Every monster seen steps one cell back
// toward the player and the scan carries on past it, so monsters lined up on
// one ray all advance, nearest first.
func AdvanceReport(g *world.Grid, p *entity.Player) (moved int, captured bool) {
	origin := p.Pos()
	for _, d := range world.Directions {
		moved += advanceAlong(g, origin, d)
	}
	return moved, g.At(origin) == world.TileMonster
}

// advanceAlong processes one ray and returns the number of monsters moved.
func advanceAlong(g *world.Grid, origin world.Pos, d world.Direction) int {
	moved := 0
	toward := d.Opposite()
	for pos := range g.Ray(origin, d) {
		switch g.At(pos) {
		case world.TilePillar:
			return moved
		case world.TileMonster:
			g.Set(pos, world.TileOpen)
			g.Set(pos.Step(toward), world.TileMonster)
			moved++
		}
	}
	return moved
}
