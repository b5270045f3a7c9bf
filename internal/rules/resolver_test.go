package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestResolve_OutOfBoundsStays(t *testing.T) {
	targets := []world.Pos{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 2, Col: 0},
		{Row: 0, Col: 3},
		{Row: -5, Col: 10},
	}

	for _, target := range targets {
		t.Run(target.String(), func(t *testing.T) {
			g, p := setup(t,
				"o--",
				"---",
			)

			outcome, pos := Resolve(g, p, target)

			assert.Equal(t, Stayed, outcome)
			assert.Equal(t, world.Pos{Row: 0, Col: 0}, pos)
			assert.Equal(t, world.Pos{Row: 0, Col: 0}, p.Pos())
			requireSinglePlayer(t, g, p)
		})
	}
}

func TestResolve_TileEffects(t *testing.T) {
	tests := []struct {
		name         string
		row          string
		treasure     int
		wantOutcome  Outcome
		wantCol      int
		wantTreasure int
	}{
		{name: "open", row: "o-", wantOutcome: Moved, wantCol: 1},
		{name: "pillar", row: "o+", wantOutcome: Stayed, wantCol: 0},
		{name: "monster", row: "oM", wantOutcome: Stayed, wantCol: 0},
		{name: "treasure", row: "o$", wantOutcome: CollectedTreasure, wantCol: 1, wantTreasure: 1},
		{name: "treasure stacks", row: "o$", treasure: 2, wantOutcome: CollectedTreasure, wantCol: 1, wantTreasure: 3},
		{name: "amulet", row: "o@", wantOutcome: TriggeredAmulet, wantCol: 1},
		{name: "door", row: "o?", wantOutcome: LeftRoom, wantCol: 1},
		{name: "exit without treasure", row: "o!", wantOutcome: Stayed, wantCol: 0},
		{name: "exit with treasure", row: "o!", treasure: 1, wantOutcome: Escaped, wantCol: 1, wantTreasure: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, p := setup(t, tt.row)
			p.Treasure = tt.treasure

			outcome, pos := Resolve(g, p, world.Pos{Row: 0, Col: 1})

			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, world.Pos{Row: 0, Col: tt.wantCol}, pos)
			assert.Equal(t, pos, p.Pos())
			assert.Equal(t, tt.wantTreasure, p.Treasure)
			requireSinglePlayer(t, g, p)
		})
	}
}

func TestResolve_RejectedMoveLeavesTargetIntact(t *testing.T) {
	g, p := setup(t, "o+M!")

	for col := 1; col <= 3; col++ {
		outcome, pos := Resolve(g, p, world.Pos{Row: 0, Col: col})
		assert.Equal(t, Stayed, outcome)
		assert.Equal(t, world.Pos{}, pos)
	}

	assert.Equal(t, []string{"o+M!"}, g.Rows())
}

func TestResolve_MoveVacatesPreviousCell(t *testing.T) {
	g, p := setup(t,
		"---",
		"-o-",
		"---",
	)

	outcome, _ := Resolve(g, p, world.Pos{Row: 0, Col: 1})

	require.Equal(t, Moved, outcome)
	assert.Equal(t, []string{
		"-o-",
		"---",
		"---",
	}, g.Rows())
}

func TestResolve_StayInPlaceCountsAsMove(t *testing.T) {
	g, p := setup(t, "-o-")

	outcome, pos := Resolve(g, p, p.Pos())

	assert.Equal(t, Moved, outcome)
	assert.Equal(t, world.Pos{Row: 0, Col: 1}, pos)
	requireSinglePlayer(t, g, p)
}

func TestResolve_ExitNeedsTreasureFirst(t *testing.T) {
	g, p := setup(t,
		"--!",
		"-o$",
		"---",
	)

	outcome, _ := Resolve(g, p, p.Pos().Step(world.Right))
	require.Equal(t, CollectedTreasure, outcome)

	outcome, _ = Resolve(g, p, p.Pos().Step(world.Up))
	assert.Equal(t, Escaped, outcome)
	assert.Equal(t, world.Pos{Row: 0, Col: 2}, p.Pos())
	requireSinglePlayer(t, g, p)
}

func TestResolve_TreasureNeverDecreases(t *testing.T) {
	g, p := setup(t,
		"$$+",
		"o-@",
		"?!M",
	)
	moves := []world.Direction{
		world.Up, world.Right, world.Right, world.Down, world.Down,
		world.Left, world.Left, world.Down, world.Up, world.Right,
	}

	collected := 0
	for _, d := range moves {
		before := p.Treasure
		outcome, _ := Resolve(g, p, p.Pos().Step(d))
		if outcome == CollectedTreasure {
			collected++
			assert.Equal(t, before+1, p.Treasure)
		} else {
			assert.Equal(t, before, p.Treasure)
		}
		requireSinglePlayer(t, g, p)
	}

	assert.Equal(t, collected, p.Treasure)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "stay", Stayed.String())
	assert.Equal(t, "escape", Escaped.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
