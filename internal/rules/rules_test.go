package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// setup builds a grid from glyph rows and places the player on its 'o' cell.
func setup(t *testing.T, rows ...string) (*world.Grid, *entity.Player) {
	t.Helper()
	g, err := world.NewGrid(len(rows), len([]rune(rows[0])))
	require.NoError(t, err)

	var player *entity.Player
	for r, line := range rows {
		for c, ch := range []rune(line) {
			tile, err := world.ParseTile(ch)
			require.NoError(t, err)
			g.Set(world.Pos{Row: r, Col: c}, tile)
			if tile == world.TilePlayer {
				player = entity.NewPlayer(r, c)
			}
		}
	}
	require.NotNil(t, player, "grid has no player")
	return g, player
}

// requireSinglePlayer checks the grid holds exactly one player tile at p's position.
func requireSinglePlayer(t *testing.T, g *world.Grid, p *entity.Player) {
	t.Helper()
	require.Equal(t, 1, g.Count(world.TilePlayer))
	require.Equal(t, world.TilePlayer, g.At(p.Pos()))
}
