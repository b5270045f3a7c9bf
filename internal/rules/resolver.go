package rules

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Resolve attempts to move the player to target and applies the tile's effect.
// It returns the outcome and the position the player ended on, which is the
// player's current position whenever the move is rejected.
//
// Rejections, in order: target off the grid; target holds a pillar or monster;
// target is the exit and no treasure has been collected.
func Resolve(g *world.Grid, p *entity.Player, target world.Pos) (Outcome, world.Pos) {
	from := p.Pos()

	if !g.InBounds(target) {
		return Stayed, from
	}

	outcome := Moved
	switch g.At(target) {
	case world.TilePillar, world.TileMonster:
		return Stayed, from
	case world.TileExit:
		if !p.HasTreasure() {
			return Stayed, from
		}
		outcome = Escaped
	case world.TileTreasure:
		p.Treasure++
		outcome = CollectedTreasure
	case world.TileAmulet:
		outcome = TriggeredAmulet
	case world.TileDoor:
		outcome = LeftRoom
	case world.TileOpen, world.TilePlayer:
		outcome = Moved
	}

	g.Set(from, world.TileOpen)
	g.Set(target, world.TilePlayer)
	p.MoveTo(target)

	return outcome, target
}
